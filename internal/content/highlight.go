package content

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeStyle is the chroma style used for code blocks.
const DefaultCodeStyle = "github-dark"

// Highlighter renders code with CSS classes so the page needs no inline
// styles; the matching stylesheet comes from CSS.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter uses the named chroma style, falling back to chroma's
// default for unknown names.
func NewHighlighter(styleName string) *Highlighter {
	return &Highlighter{
		style: styles.Get(styleName),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithLineNumbers(false),
		),
	}
}

// Highlight returns the highlighted inner HTML of a code block. ok is false
// when no lexer knows language.
func (h *Highlighter) Highlight(language, code string) (html string, ok bool) {
	lexer := lexers.Get(strings.ToLower(language))
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// CSS returns the stylesheet for the highlighter's classes.
func (h *Highlighter) CSS() (string, error) {
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", err
	}
	return buf.String(), nil
}
