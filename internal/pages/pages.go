// Package pages holds the page bodies. The server wraps each one in
// layout.Document.
package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/content"
	"github.com/supafox/supafox/internal/site"
	"github.com/supafox/supafox/internal/tw"
	"github.com/supafox/supafox/internal/ui"
	"github.com/supafox/supafox/internal/ui/layout"
)

const (
	deployURL = "https://vercel.com/new/clone?repository-url=https%3A%2F%2Fgithub.com%2Fsupafox%2Fsupafox-starter"
	docsURL   = "https://nextjs.org/docs?utm_source=create-next-app&utm_medium=appdir-template-tw&utm_campaign=create-next-app"

	// LegalTitle and LegalDescription head the legal index.
	LegalTitle       = "Legal"
	LegalDescription = "This section includes legal documents for the app."

	legalContainer = "container mx-auto w-full min-h-screen pt-32 pb-16"
)

// Home is the landing page: a hero and the provider grid.
func Home(s *site.Site) templ.Component {
	hero := ui.Section(ui.SectionProps{ID: "hero", Gap: tw.Value(8), FullWidth: true, Hero: true, Class: "bg-card"},
		ui.Stack(ui.StackProps{Gap: tw.Value(2), Class: "max-w-[900px]"},
			ui.Header(ui.TextProps{As: "h1", Size: tw.Value("56"), Class: "max-w-[900px] text-card-foreground"},
				ui.Text("Kickstart Your Next.js Project")),
			ui.Copy(ui.TextProps{Class: "max-w-[700px] text-card-foreground"},
				ui.Text("Everything you need to build fast, accessible web apps with Next.js. No setup required. Open Source. Developer Approved.")),
		),
		ui.Stack(ui.StackProps{Gap: tw.Value(2), Direction: tw.Value("row")},
			ui.Link(ui.LinkProps{Href: deployURL, Class: ui.ButtonClass(ui.VariantDefault, ui.SizeDefault), External: true},
				ui.Text("Deploy now")),
			ui.Link(ui.LinkProps{Href: docsURL, Class: ui.ButtonClass(ui.VariantOutline, ui.SizeDefault), External: true},
				ui.Text("Read our docs")),
		),
	)

	cells := make([]templ.Component, 0, len(s.Providers))
	for _, p := range s.Providers {
		cells = append(cells, ui.GridCell(ui.GridCellProps{},
			ui.Stack(ui.StackProps{Gap: tw.Value(4), Class: "items-center text-center"},
				providerMark(p),
				ui.Stack(ui.StackProps{},
					ui.Header(ui.TextProps{As: "h2", Size: tw.Value("16")}, ui.Text(p.Name)),
					ui.Link(ui.LinkProps{
						Href:     p.URL,
						Class:    "text-label-14 text-muted-foreground hover:text-primary",
						External: true,
						Label:    "Visit " + p.Name + " website",
					}, ui.Text("Visit website")),
				),
			),
		))
	}

	builtWith := ui.Section(ui.SectionProps{ID: "built-with", Gap: tw.Value(8)},
		ui.Stack(ui.StackProps{Gap: tw.Value(2)},
			ui.Header(ui.TextProps{As: "h2", Size: tw.Value("48"), Class: "max-w-[900px]"}, ui.Text("Built with the Best.")),
			ui.Copy(ui.TextProps{Class: "max-w-[700px]"},
				ui.Text("Supafox gives you the modern stack your project deserves. Preconfigured, performant, production-ready.")),
		),
		ui.Grid(ui.GridProps{Columns: tw.At(map[tw.Breakpoint]int{tw.SM: 1, tw.MD: 3}), ShowGuides: true}, cells...),
	)

	return ui.Fragment(hero, builtWith)
}

func providerMark(p site.Provider) templ.Component {
	initial := ""
	if p.Name != "" {
		initial = strings.ToUpper(p.Name[:1])
	}
	return ui.Element("span", []ui.Attr{
		ui.Class("flex size-6 items-center justify-center rounded-full bg-muted text-label-14"),
		{Key: "aria-hidden", Value: "true"},
		{Key: "data-logo", Value: p.Logo},
	}, ui.Text(initial))
}

// LegalIndex lists the published legal documents as cards.
func LegalIndex(docs []*content.Document) templ.Component {
	var list templ.Component
	if len(docs) == 0 {
		list = ui.Element("p", nil, ui.Text("No legal documents published."))
	} else {
		cards := make([]templ.Component, 0, len(docs))
		for _, d := range docs {
			cards = append(cards, legalCard(d))
		}
		list = ui.Element("div", []ui.Attr{ui.Class("grid gap-4 md:grid-cols-2 md:gap-6")}, cards...)
	}

	return ui.Element("div", []ui.Attr{ui.Class(legalContainer)},
		ui.MdxHeader(LegalTitle, LegalDescription, ""),
		list,
	)
}

func legalCard(d *content.Document) templ.Component {
	var description, date templ.Component
	if d.Description != "" {
		description = ui.Element("p", []ui.Attr{ui.Class("text-muted-foreground")}, ui.Text(d.Description))
	}
	if formatted := site.FormatDate(d.Date); formatted != "" {
		date = ui.Element("p", []ui.Attr{ui.Class("text-sm text-muted-foreground")},
			ui.Element("time", []ui.Attr{{Key: "datetime", Value: d.Date.Format(content.DateLayout)}}, ui.Text(formatted)))
	}

	return ui.Element("article", []ui.Attr{ui.Class("group relative rounded-lg border p-6 shadow-md transition-shadow hover:shadow-lg")},
		ui.Element("div", []ui.Attr{ui.Class("flex flex-col justify-between space-y-4")},
			ui.Element("div", []ui.Attr{ui.Class("space-y-2")},
				ui.Element("h2", []ui.Attr{ui.Class("text-xl font-medium tracking-tight")}, ui.Text(d.Title)),
				description,
			),
			date,
		),
		ui.Link(ui.LinkProps{Href: d.Slug, Class: "absolute inset-0"},
			ui.Element("span", []ui.Attr{ui.Class("sr-only")}, ui.Text("View "+d.Title))),
	)
}

// LegalDocument renders one document. Its HTML was sanitised when the
// document was loaded.
func LegalDocument(d *content.Document) templ.Component {
	return ui.Element("div", []ui.Attr{ui.Class(legalContainer)},
		ui.Element("article", nil,
			ui.MdxHeader(d.Title, d.Description, ""),
			ui.Element("div", []ui.Attr{ui.Class("mdx")}, templ.Raw(d.HTML)),
			ui.Void("hr", ui.Class("my-4")),
			ui.Element("h2", []ui.Attr{ui.Class("text-heading-24")}, ui.Text("Legal Documents")),
			ui.Element("div", []ui.Attr{ui.Class("flex justify-center py-6 lg:py-10")},
				ui.Link(ui.LinkProps{Href: "/legal", Class: ui.ButtonClass(ui.VariantGhost, ui.SizeDefault)},
					layout.ChevronLeftIcon("mr-2 size-4"),
					ui.Text("See all legal docs")),
			),
		),
	)
}

// NotFound is the 404 body.
func NotFound() templ.Component {
	return ui.Section(ui.SectionProps{ID: "not-found", Gap: tw.Value(4), Class: "items-center text-center"},
		ui.Header(ui.TextProps{As: "h1", Size: tw.Value("48")}, ui.Text("Page not found")),
		ui.Copy(ui.TextProps{Class: "text-muted-foreground"},
			ui.Text("The page you are looking for does not exist or has been moved.")),
		ui.Link(ui.LinkProps{Href: "/", Class: ui.ButtonClass(ui.VariantOutline, ui.SizeDefault)}, ui.Text("Back home")),
	)
}
