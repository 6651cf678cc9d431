package ui

import (
	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/tw"
)

const breakoutClass = "relative w-screen left-1/2 right-1/2 -ml-[50vw] -mr-[50vw]"

// StackProps configures Stack. Direction is "row" or "column" and defaults
// to column; a row also centres its items on the cross axis.
type StackProps struct {
	Direction tw.Responsive[string]
	Gap       tw.Responsive[int]
	Class     string
}

// Stack renders a flex container.
func Stack(p StackProps, children ...templ.Component) templ.Component {
	direction := p.Direction
	if direction.IsZero() {
		direction = tw.Value("column")
	}

	var classes []string
	if _, ok := direction.Scalar(); ok {
		classes = append(classes, tw.Resolve(direction, tw.DirectionClasses)...)
		classes = append(classes, tw.Resolve(direction, tw.RowAlignClasses)...)
	} else {
		for _, bp := range tw.Breakpoints {
			v, ok := direction.Get(bp)
			if !ok {
				continue
			}
			single := tw.At(map[tw.Breakpoint]string{bp: v})
			classes = append(classes, tw.Resolve(single, tw.DirectionClasses)...)
			classes = append(classes, tw.Resolve(single, tw.RowAlignClasses)...)
		}
	}

	class := tw.Class("flex", classes, tw.ResolveGap(p.Gap), p.Class)
	return Element("div", []Attr{Class(class)}, children...)
}

// SectionProps configures Section.
type SectionProps struct {
	ID        string
	FullWidth bool
	Hero      bool
	Gap       tw.Responsive[int]
	Class     string
}

// Section renders a page section. With a Gap the children are laid out in a
// column; FullWidth breaks out of the page container to the viewport width.
func Section(p SectionProps, children ...templ.Component) templ.Component {
	padding := "py-12"
	if p.Hero {
		padding = "py-25"
	}
	hasGap := !p.Gap.IsZero()

	body := children
	if hasGap {
		inner := tw.Class("flex flex-col", tw.ResolveGap(p.Gap), p.Class)
		body = []templ.Component{Element("div", []Attr{Class(inner)}, children...)}
	}

	section := Element("section",
		[]Attr{{Key: "id", Value: p.ID}, Class(tw.Class(padding, tw.If(!hasGap, p.Class)))},
		body...)

	if !p.FullWidth {
		return section
	}
	return Element("div", []Attr{Class(tw.Class(breakoutClass, tw.If(hasGap, p.Class)))},
		Element("div", []Attr{Class("container")}, section))
}
