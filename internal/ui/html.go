// Package ui holds the layout and typography primitives the pages are built
// from. Every component is a templ.Component and composes its classes with
// tw.Class, so conflicting utilities resolve the same way everywhere.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Attr is an HTML attribute. Attributes with an empty value are skipped;
// set Flag for boolean attributes such as hidden.
type Attr struct {
	Key   string
	Value string
	Flag  bool
}

// Text renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Element renders <tag attrs...>children</tag>.
func Element(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(w, tag, attrs); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders an element without children or closing tag, such as <hr>.
func Void(tag string, attrs ...Attr) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return openTag(w, tag, attrs)
	})
}

// Fragment renders children one after another.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

// Class is shorthand for a class attribute.
func Class(class string) Attr {
	return Attr{Key: "class", Value: class}
}

func openTag(w io.Writer, tag string, attrs []Attr) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, a := range attrs {
		var s string
		switch {
		case a.Key == "":
			continue
		case a.Flag:
			s = " " + a.Key
		case a.Value == "":
			continue
		default:
			s = " " + a.Key + `="` + templ.EscapeString(a.Value) + `"`
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">")
	return err
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
