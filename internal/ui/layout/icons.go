package layout

import (
	"github.com/a-h/templ"

	"github.com/supafox/supafox/internal/ui"
)

func icon(class string, paths ...string) templ.Component {
	children := make([]templ.Component, 0, len(paths))
	for _, d := range paths {
		children = append(children, ui.Element("path", []ui.Attr{{Key: "d", Value: d}}))
	}
	return ui.Element("svg", []ui.Attr{
		{Key: "xmlns", Value: "http://www.w3.org/2000/svg"},
		{Key: "viewBox", Value: "0 0 24 24"},
		{Key: "fill", Value: "none"},
		{Key: "stroke", Value: "currentColor"},
		{Key: "stroke-width", Value: "1.5"},
		{Key: "stroke-linecap", Value: "round"},
		{Key: "stroke-linejoin", Value: "round"},
		{Key: "aria-hidden", Value: "true"},
		ui.Class(class),
	}, children...)
}

func LogoIcon(class string) templ.Component {
	return icon(class, "M4 4l4 4h8l4-4v10l-8 6-8-6z", "M9 12h.01", "M15 12h.01")
}

func SunIcon(class string) templ.Component {
	return icon(class,
		"M12 16a4 4 0 1 0 0-8 4 4 0 0 0 0 8z",
		"M12 2v2", "M12 20v2", "M4.93 4.93l1.41 1.41", "M17.66 17.66l1.41 1.41",
		"M2 12h2", "M20 12h2", "M6.34 17.66l-1.41 1.41", "M19.07 4.93l-1.41 1.41")
}

func MoonIcon(class string) templ.Component {
	return icon(class, "M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z")
}

func MenuIcon(class string) templ.Component {
	return icon(class, "M4 6h16", "M4 12h16", "M4 18h16")
}

func FileIcon(class string) templ.Component {
	return icon(class, "M14 3H6a1 1 0 0 0-1 1v16a1 1 0 0 0 1 1h12a1 1 0 0 0 1-1V8z", "M14 3v5h5")
}

func WindowIcon(class string) templ.Component {
	return icon(class, "M3 5h18v14H3z", "M3 9h18")
}

func GlobeIcon(class string) templ.Component {
	return icon(class, "M12 21a9 9 0 1 0 0-18 9 9 0 0 0 0 18z", "M3 12h18", "M12 3a15 15 0 0 1 0 18", "M12 3a15 15 0 0 0 0 18")
}

func ChevronLeftIcon(class string) templ.Component {
	return icon(class, "M15 18l-6-6 6-6")
}
