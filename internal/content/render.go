package content

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/supafox/supafox/internal/errors"
)

// Renderer turns a document body into safe HTML. It is safe for concurrent
// use.
type Renderer struct {
	markdown    goldmark.Markdown
	policy      *bluemonday.Policy
	highlighter *Highlighter
}

// NewRenderer builds the Markdown pipeline. GFM tables render alignment as an
// align attribute so it survives sanitising; headings get automatic ids; raw
// HTML passes through goldmark and is cleaned by the sanitiser afterwards.
func NewRenderer(highlighter *Highlighter) *Renderer {
	if highlighter == nil {
		highlighter = NewHighlighter(DefaultCodeStyle)
	}
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.NewTable(extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute)),
				extension.Strikethrough,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		policy:      newPolicy(),
		highlighter: highlighter,
	}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+#.-]+$`)).OnElements("code")
	p.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}

// Render converts a Markdown or MDX body. For MDX, top-level import and
// export statements are dropped; JSX elements are treated as raw HTML and
// anything the sanitiser does not know is stripped.
func (r *Renderer) Render(body []byte, mdx bool) (string, error) {
	if mdx {
		stripped, err := stripESM(body)
		if err != nil {
			return "", errors.NewContentError("MDX_SCAN", "failed to scan mdx body", err).
				WithContext("max_line_bytes", maxLineBytes)
		}
		body = stripped
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert(body, &buf); err != nil {
		return "", errors.NewContentError("MARKDOWN_RENDER", "failed to render markdown", err)
	}

	safe := r.policy.SanitizeBytes(buf.Bytes())

	out, err := decorate(safe, r.highlighter)
	if err != nil {
		return "", errors.NewContentError("HTML_TRANSFORM", "failed to post-process document html", err)
	}
	return out, nil
}

// maxLineBytes bounds a single MDX source line.
const maxLineBytes = 1024 * 1024

// stripESM removes import/export lines outside fenced code blocks. A line
// longer than maxLineBytes fails with bufio.ErrTooLong instead of truncating
// the document.
func stripESM(body []byte) ([]byte, error) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	inFence := false
	fenceMarker := ""
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if marker := fenceOf(trimmed); marker != "" {
			switch {
			case !inFence:
				inFence, fenceMarker = true, marker
			case strings.HasPrefix(trimmed, fenceMarker):
				inFence = false
			}
		}

		if !inFence && (strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "export ")) {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func fenceOf(line string) string {
	for _, marker := range []string{"```", "~~~"} {
		if strings.HasPrefix(line, marker) {
			return marker
		}
	}
	return ""
}
