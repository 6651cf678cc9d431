package ui

import (
	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/tw"
)

const defaultTextColor = "text-foreground"

// TextProps configures Copy and Header. Size values outside the size tables
// are dropped. Without a Class the text gets the foreground colour.
type TextProps struct {
	Size  tw.Responsive[string]
	Class string
	// As is the heading tag for Header, h1 to h6. Anything else means h1.
	As string
}

// Copy renders a paragraph in the copy type scale (24, 20, 18, 16, 14, 13).
func Copy(p TextProps, children ...templ.Component) templ.Component {
	return Element("p", []Attr{Class(textClass(p, tw.CopySizeClasses))}, children...)
}

// Header renders a heading in the heading type scale (72 down to 14).
func Header(p TextProps, children ...templ.Component) templ.Component {
	return Element(headingTag(p.As), []Attr{Class(textClass(p, tw.HeaderSizeClasses))}, children...)
}

func textClass(p TextProps, table tw.Table[string]) string {
	color := p.Class
	if color == "" {
		color = defaultTextColor
	}
	return tw.Class(tw.Resolve(p.Size, table), color)
}

func headingTag(as string) string {
	switch as {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return as
	default:
		return "h1"
	}
}

// MdxHeader is the title block above a document: heading, optional lead
// text and a rule.
func MdxHeader(heading, text, class string) templ.Component {
	var lead templ.Component
	if text != "" {
		lead = Element("p", []Attr{Class("text-copy-16")}, Text(text))
	}
	return Fragment(
		Element("div", []Attr{Class(tw.Class("space-y-4", class))},
			Element("h1", []Attr{Class("text-heading-48")}, Text(heading)),
			lead,
		),
		Void("hr", Class("my-4")),
	)
}
