package layout

import (
	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/site"
	"github.com/supafox/supafox/internal/theme"
	"github.com/supafox/supafox/internal/tw"
	"github.com/supafox/supafox/internal/ui"
)

// Navbar is the fixed site header with the main navigation, the theme
// toggle and a mobile menu that works without JavaScript.
func Navbar(p Page) templ.Component {
	brand := ui.Link(ui.LinkProps{Href: "/", Class: "hover:cursor-pointer hover:text-muted-foreground"},
		ui.Element("div", []ui.Attr{ui.Class("flex space-x-1.5 items-center")},
			LogoIcon("size-6 text-primary"),
			ui.Element("span", []ui.Attr{ui.Class("text-heading-20")}, ui.Text(siteName(p.Site))),
		),
	)

	desktop := ui.Element("nav", []ui.Attr{ui.Class("hidden md:block"), {Key: "aria-label", Value: "Main"}},
		navList(p, "flex space-x-6 text-button-14", "hover:text-muted-foreground transition-colors"))

	mobile := ui.Element("details", []ui.Attr{ui.Class("md:hidden")},
		ui.Element("summary", []ui.Attr{
			ui.Class("list-none cursor-pointer p-2 hover:bg-muted rounded-md transition-colors"),
			{Key: "aria-label", Value: "Toggle mobile menu"},
		}, MenuIcon("size-5")),
		ui.Element("div", []ui.Attr{ui.Class("absolute left-0 right-0 top-16 border-t border-border bg-background")},
			ui.Element("nav", []ui.Attr{ui.Class("container py-4"), {Key: "aria-label", Value: "Mobile"}},
				navList(p, "space-y-2", "block py-3 px-4 rounded-md transition-colors hover:text-muted-foreground")),
		),
	)

	return ui.Element("header", []ui.Attr{ui.Class("fixed top-0 left-0 right-0 z-50 border-b border-border bg-background")},
		ui.Element("div", []ui.Attr{ui.Class("flex justify-between container items-center")},
			ui.Element("div", []ui.Attr{ui.Class("flex space-x-23 h-16 items-center")}, brand, desktop),
			ui.Element("div", []ui.Attr{ui.Class("flex items-center space-x-4")},
				ThemeToggle(p.Theme, p.Path),
				mobile,
			),
		),
	)
}

func siteName(s *site.Site) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func navList(p Page, listClass, linkClass string) templ.Component {
	if p.Site == nil {
		return nil
	}
	items := make([]templ.Component, 0, len(p.Site.MainNav))
	for _, item := range p.Site.MainNav {
		active := item.IsActive(p.Path)
		attrs := []ui.Attr{
			{Key: "href", Value: item.Href},
			ui.Class(tw.Class(linkClass, tw.If(active, "text-primary"))),
		}
		if active {
			attrs = append(attrs, ui.Attr{Key: "aria-current", Value: "page"})
		}
		items = append(items, ui.Element("li", nil, ui.Element("a", attrs, ui.Text(item.Title))))
	}
	return ui.Element("ul", []ui.Attr{ui.Class(listClass)}, items...)
}

// ThemeToggle posts the opposite theme to the theme endpoint. Without
// JavaScript the server redirects back to returnTo.
func ThemeToggle(current theme.Theme, returnTo string) templ.Component {
	if returnTo == "" {
		returnTo = "/"
	}
	return ui.Element("form", []ui.Attr{
		{Key: "method", Value: "post"},
		{Key: "action", Value: theme.Path},
		{Key: "data-theme-toggle", Flag: true},
	},
		ui.Void("input", ui.Attr{Key: "type", Value: "hidden"}, ui.Attr{Key: "name", Value: "theme"}, ui.Attr{Key: "value", Value: string(current.Toggle())}),
		ui.Void("input", ui.Attr{Key: "type", Value: "hidden"}, ui.Attr{Key: "name", Value: "redirect"}, ui.Attr{Key: "value", Value: returnTo}),
		ui.Element("button", []ui.Attr{
			{Key: "type", Value: "submit"},
			ui.Class(ui.ButtonClass(ui.VariantGhost, ui.SizeIcon)),
		},
			SunIcon("h-5 w-5 dark:hidden"),
			MoonIcon("hidden h-5 w-5 dark:block"),
			ui.Element("span", []ui.Attr{ui.Class("sr-only")}, ui.Text("Toggle theme")),
		),
	)
}

type footerLink struct {
	title string
	href  string
	icon  func(class string) templ.Component
}

var footerLinks = []footerLink{
	{"Learn", "https://nextjs.org/learn?utm_source=create-next-app&utm_medium=appdir-template-tw&utm_campaign=create-next-app", FileIcon},
	{"Examples", "https://vercel.com/templates?framework=next.js&utm_source=create-next-app&utm_medium=appdir-template-tw&utm_campaign=create-next-app", WindowIcon},
	{"Go to nextjs.org →", "https://nextjs.org?utm_source=create-next-app&utm_medium=appdir-template-tw&utm_campaign=create-next-app", GlobeIcon},
}

// Footer is the site footer.
func Footer() templ.Component {
	links := make([]templ.Component, 0, len(footerLinks))
	for _, l := range footerLinks {
		links = append(links, ui.Link(ui.LinkProps{
			Href:     l.href,
			Class:    "flex items-center gap-2 hover:underline hover:underline-offset-4",
			External: true,
		}, l.icon("size-4"), ui.Text(l.title)))
	}
	return ui.Element("footer", []ui.Attr{ui.Class("w-full h-16 items-center justify-center flex space-x-4 border-t border-border")}, links...)
}

var indicatorBreakpoints = []struct{ label, class string }{
	{"xs", "block sm:hidden"},
	{"sm", "hidden sm:block md:hidden"},
	{"md", "hidden md:block lg:hidden"},
	{"lg", "hidden lg:block xl:hidden"},
	{"xl", "hidden xl:block 2xl:hidden"},
	{"2xl", "hidden 2xl:block"},
}

// Indicator shows the active Tailwind breakpoint. Document only renders it
// outside production.
func Indicator() templ.Component {
	labels := make([]templ.Component, 0, len(indicatorBreakpoints))
	for _, bp := range indicatorBreakpoints {
		labels = append(labels, ui.Element("div", []ui.Attr{ui.Class(bp.class)}, ui.Text(bp.label)))
	}
	return ui.Element("div", []ui.Attr{
		ui.Class("fixed bottom-1 left-1 z-50 flex h-6 w-6 items-center justify-center rounded-full bg-gray-800 p-3 font-mono text-xs text-white"),
		{Key: "aria-label", Value: "Current screen size indicator for responsive design debugging"},
	}, labels...)
}
