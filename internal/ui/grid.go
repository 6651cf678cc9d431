package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/tw"
)

const (
	gridGuideClass = "border-border border-t border-l"
	cellGuideClass = "border-border border-b border-r p-16"
)

type guidesKey struct{}

// GridProps configures Grid. Columns defaults to a single column.
type GridProps struct {
	Columns    tw.Responsive[int]
	Rows       tw.Responsive[int]
	Gap        tw.Responsive[int]
	ShowGuides bool
	Class      string
}

// Grid renders a CSS grid. With ShowGuides every direct GridCell child
// draws its guide borders too.
func Grid(p GridProps, children ...templ.Component) templ.Component {
	columns := p.Columns
	if columns.IsZero() {
		columns = tw.Value(1)
	}

	class := tw.Class(
		"grid",
		tw.Resolve(columns, tw.GridColsClasses),
		tw.Resolve(p.Rows, tw.GridRowsClasses),
		tw.ResolveGap(p.Gap),
		tw.If(p.ShowGuides, gridGuideClass),
		p.Class,
	)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx = context.WithValue(ctx, guidesKey{}, p.ShowGuides)
		return Element("div", []Attr{Class(class)}, children...).Render(ctx, w)
	})
}

// GridCellProps configures GridCell.
type GridCellProps struct {
	Column     tw.Responsive[int]
	Rows       tw.Responsive[int]
	ShowGuides bool
	Class      string
}

// GridCell is a grid item spanning Column columns and Rows rows.
func GridCell(p GridCellProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		inherited, _ := ctx.Value(guidesKey{}).(bool)
		class := tw.Class(
			tw.Resolve(p.Column, tw.ColSpanClasses),
			tw.Resolve(p.Rows, tw.RowSpanClasses),
			tw.If(p.ShowGuides || inherited, cellGuideClass),
			p.Class,
		)
		// Guides only reach direct cells; nested grids decide for themselves.
		ctx = context.WithValue(ctx, guidesKey{}, false)
		return Element("div", []Attr{Class(class)}, children...).Render(ctx, w)
	})
}
