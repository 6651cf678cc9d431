package content

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/supafox/supafox/internal/tw"
)

// mdxClasses are the classes the document components add per element.
var mdxClasses = map[atom.Atom]string{
	atom.H1:         "text-heading-48",
	atom.H2:         "text-heading-32 [&:not(:first-child)]:mt-6",
	atom.H3:         "text-heading-24 [&:not(:first-child)]:mt-6",
	atom.H4:         "text-heading-20 [&:not(:first-child)]:mt-6",
	atom.H5:         "text-heading-18 [&:not(:first-child)]:mt-6",
	atom.H6:         "text-heading-16 [&:not(:first-child)]:mt-6",
	atom.A:          "text-copy-16 underline underline-offset-4",
	atom.P:          "text-copy-16 [&:not(:first-child)]:mt-6",
	atom.Ul:         "my-6 ml-6 list-disc",
	atom.Ol:         "my-6 ml-6 list-decimal",
	atom.Li:         "mt-2",
	atom.Blockquote: "mt-6 border-l-2 pl-6 italic [&>*]:text-muted-foreground",
	atom.Img:        "rounded-md border",
	atom.Hr:         "my-4 md:my-8",
	atom.Table:      "w-full",
	atom.Tr:         "border-t even:bg-muted",
	atom.Th:         "border px-4 py-2 text-left font-bold [&[align=center]]:text-center [&[align=right]]:text-right",
	atom.Td:         "border px-4 py-2 text-left [&[align=center]]:text-center [&[align=right]]:text-right",
	atom.Pre:        "mb-4 mt-6 overflow-x-auto rounded-lg border bg-black py-4",
	atom.Code:       "relative rounded border px-[0.3rem] py-[0.2rem] font-mono text-sm",
}

const (
	tableWrapperClass = "my-6 w-full overflow-x-auto"
	anchorClass       = "subheading-anchor"
	anchorLabel       = "Link to section"
)

// decorate parses sanitised HTML, applies the document component classes,
// highlights code blocks and links headings to themselves.
func decorate(src []byte, hl *Highlighter) (string, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(bytes.NewReader(src), container)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	walk(container, hl)

	var out strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&out, c); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

func walk(n *html.Node, hl *Highlighter) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			switch c.DataAtom {
			case atom.Pre:
				decoratePre(c, hl)
				c = next
				continue
			case atom.Table:
				wrapTable(c)
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				prependAnchor(c)
			}
			addClass(c, mdxClasses[c.DataAtom])
			walk(c, hl)
		}
		c = next
	}
}

// decoratePre highlights <pre><code class="language-x"> blocks. Code inside
// pre keeps the block styling and does not get the inline code classes.
func decoratePre(pre *html.Node, hl *Highlighter) {
	addClass(pre, mdxClasses[atom.Pre])

	code := pre.FirstChild
	if code == nil || code.Type != html.ElementNode || code.DataAtom != atom.Code {
		return
	}

	lang := ""
	for _, class := range strings.Fields(attr(code, "class")) {
		if l, ok := strings.CutPrefix(class, "language-"); ok {
			lang = l
			break
		}
	}
	if lang == "" || hl == nil {
		return
	}

	highlighted, ok := hl.Highlight(lang, textContent(code))
	if !ok {
		return
	}

	fragment, err := html.ParseFragment(strings.NewReader(highlighted), code)
	if err != nil {
		return
	}
	for c := code.FirstChild; c != nil; {
		next := c.NextSibling
		code.RemoveChild(c)
		c = next
	}
	for _, n := range fragment {
		code.AppendChild(n)
	}
	addClass(pre, "chroma")
	setAttr(pre, "data-language", lang)
}

func wrapTable(table *html.Node) {
	parent := table.Parent
	if parent == nil {
		return
	}
	wrapper := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "class", Val: tableWrapperClass}},
	}
	parent.InsertBefore(wrapper, table)
	parent.RemoveChild(table)
	wrapper.AppendChild(table)
}

func prependAnchor(heading *html.Node) {
	id := attr(heading, "id")
	if id == "" {
		return
	}
	anchor := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "class", Val: anchorClass},
			{Key: "aria-label", Val: anchorLabel},
			{Key: "href", Val: "#" + id},
		},
	}
	heading.InsertBefore(anchor, heading.FirstChild)
}

func addClass(n *html.Node, class string) {
	if class == "" {
		return
	}
	// Author classes go last so they win conflicts.
	setAttr(n, "class", tw.Merge(class, attr(n, "class")))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}
