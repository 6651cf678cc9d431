// Package layout renders the document shell around every page: head
// metadata, the theme bootstrap script, navbar, footer and the development
// helpers.
package layout

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/livereload"
	"github.com/supafox/supafox/internal/security"
	"github.com/supafox/supafox/internal/site"
	"github.com/supafox/supafox/internal/theme"
	"github.com/supafox/supafox/internal/ui"
)

const (
	bodyClass = "min-h-screen bg-background font-sans text-copy-16 antialiased"
	mainClass = "flex-1 container py-16 min-h-screen"

	// StylesheetPath is the compiled Tailwind bundle.
	StylesheetPath = "/static/css/globals.css"
	// CodeStylesheetPath serves the syntax highlighting classes.
	CodeStylesheetPath = "/static/chroma.css"
)

// Page is what the shell needs to know about the current request.
type Page struct {
	Site        *site.Site
	Meta        site.Metadata
	Path        string
	Theme       theme.Theme
	Environment security.Environment
	// LiveReload injects the live reload client.
	LiveReload bool
}

// Document renders a full HTML document with body inside <main>. Inline
// scripts carry the nonce found in ctx via templ.GetNonce; without one they
// are rendered without a nonce attribute and the browser's CSP decides.
func Document(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}

		var indicator, reload templ.Component
		if p.Environment != security.Production {
			indicator = Indicator()
		}
		if p.LiveReload {
			reload = inlineScript(templ.GetNonce(ctx), livereload.ClientScript)
		}

		html := ui.Element("html", []ui.Attr{{Key: "lang", Value: "en"}, ui.Class(p.Theme.Class())},
			head(p, templ.GetNonce(ctx)),
			ui.Element("body", []ui.Attr{ui.Class(bodyClass)},
				Navbar(p),
				ui.Element("main", []ui.Attr{ui.Class(mainClass)}, body),
				Footer(),
				indicator,
				reload,
			),
		)
		return html.Render(ctx, w)
	})
}

func head(p Page, nonce string) templ.Component {
	m := p.Meta
	children := []templ.Component{
		ui.Void("meta", ui.Attr{Key: "charset", Value: "utf-8"}),
		ui.Void("meta", name("viewport"), content("width=device-width, initial-scale=1")),
		ui.Element("title", nil, ui.Text(m.FullTitle())),
		ui.Void("meta", name("description"), content(m.Description)),
		ui.Void("meta", name("robots"), content(m.Robots)),
		ui.Void("meta", name("color-scheme"), content("light dark")),
	}
	if m.URL != "" {
		children = append(children, ui.Void("link", rel("canonical"), href(m.URL)))
	}

	title := m.Title
	if title == "" {
		title = m.SiteName
	}
	children = append(children,
		property("og:title", title),
		property("og:description", m.Description),
		property("og:url", m.URL),
		property("og:site_name", m.SiteName),
		property("og:locale", m.Locale),
		property("og:type", m.Type),
	)
	for _, img := range m.Images {
		children = append(children, property("og:image", img.URL))
		if img.Width > 0 {
			children = append(children,
				property("og:image:width", strconv.Itoa(img.Width)),
				property("og:image:height", strconv.Itoa(img.Height)))
		}
		if img.Alt != "" {
			children = append(children, property("og:image:alt", img.Alt))
		}
	}

	children = append(children,
		meta("twitter:card", m.TwitterCard),
		meta("twitter:site", m.TwitterSite),
		meta("twitter:creator", m.TwitterSite),
		meta("twitter:title", title),
		meta("twitter:description", m.Description),
	)
	for _, img := range m.TwitterImages {
		children = append(children, meta("twitter:image", img.URL))
	}

	for _, icon := range m.Icons {
		children = append(children, ui.Void("link",
			rel(icon.Rel), href(icon.Href),
			ui.Attr{Key: "sizes", Value: icon.Sizes},
			ui.Attr{Key: "type", Value: icon.Type}))
	}
	if m.Manifest != "" {
		children = append(children, ui.Void("link", rel("manifest"), href(m.Manifest)))
	}

	children = append(children,
		ui.Void("link", rel("stylesheet"), href(StylesheetPath)),
		ui.Void("link", rel("stylesheet"), href(CodeStylesheetPath)),
		inlineScript(nonce, themeScript),
	)
	return ui.Element("head", nil, children...)
}

func inlineScript(nonce, script string) templ.Component {
	attrs := []ui.Attr{}
	if nonce != "" {
		attrs = append(attrs, ui.Attr{Key: "nonce", Value: nonce})
	}
	return ui.Element("script", attrs, templ.Raw(script))
}

func name(v string) ui.Attr    { return ui.Attr{Key: "name", Value: v} }
func content(v string) ui.Attr { return ui.Attr{Key: "content", Value: v} }
func rel(v string) ui.Attr     { return ui.Attr{Key: "rel", Value: v} }
func href(v string) ui.Attr    { return ui.Attr{Key: "href", Value: v} }

// meta skips empty values; an empty twitter:site is worse than none.
func meta(key, value string) templ.Component {
	if value == "" {
		return nil
	}
	return ui.Void("meta", name(key), content(value))
}

func property(key, value string) templ.Component {
	if value == "" {
		return nil
	}
	return ui.Void("meta", ui.Attr{Key: "property", Value: key}, content(value))
}
