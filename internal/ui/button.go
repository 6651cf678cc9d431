package ui

import (
	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/tw"
)

// Variant is a button style.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantOutline Variant = "outline"
	VariantGhost   Variant = "ghost"
)

// Size is a button size.
type Size string

const (
	SizeDefault Size = "default"
	SizeIcon    Size = "icon"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-button-14 transition-colors focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50"

var buttonVariants = map[Variant]string{
	VariantDefault: "bg-primary text-primary-foreground shadow hover:bg-primary/90",
	VariantOutline: "border border-input bg-background shadow-sm hover:bg-accent hover:text-accent-foreground",
	VariantGhost:   "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizes = map[Size]string{
	SizeDefault: "h-9 px-4 py-2",
	SizeIcon:    "h-9 w-9",
}

// ButtonClass returns the classes for a button-styled element. Unknown
// variants and sizes fall back to the defaults.
func ButtonClass(v Variant, s Size, extra ...string) string {
	variant, ok := buttonVariants[v]
	if !ok {
		variant = buttonVariants[VariantDefault]
	}
	size, ok := buttonSizes[s]
	if !ok {
		size = buttonSizes[SizeDefault]
	}
	return tw.Class(buttonBase, variant, size, extra)
}

// LinkProps configures Link.
type LinkProps struct {
	Href  string
	Class string
	// External opens the link in a new tab without an opener reference.
	External bool
	Label    string // aria-label
}

// Link renders an anchor.
func Link(p LinkProps, children ...templ.Component) templ.Component {
	attrs := []Attr{{Key: "href", Value: p.Href}, Class(p.Class)}
	if p.External {
		attrs = append(attrs, Attr{Key: "target", Value: "_blank"}, Attr{Key: "rel", Value: "noopener noreferrer"})
	}
	if p.Label != "" {
		attrs = append(attrs, Attr{Key: "aria-label", Value: p.Label})
	}
	return Element("a", attrs, children...)
}
