// Package site holds the static site data (navigation, external links, the
// provider cards and default page metadata) and the public URL helpers.
package site

import (
	"net/url"
	"strings"
	"time"

	"github.com/supafox/supafox/internal/errors"
)

// DefaultPublicURL is used when no public URL is configured.
const DefaultPublicURL = "http://localhost:3000"

// DateFormat renders dates as "January 2, 2006".
const DateFormat = "January 2, 2006"

// NavItem is a navigation link.
type NavItem struct {
	Title string
	Href  string
}

// Links are the external project links.
type Links struct {
	Twitter string
	GitHub  string
	Docs    string
}

// Provider is a card on the home page.
type Provider struct {
	Name string
	Logo string
	URL  string
}

var (
	mainNav = []NavItem{
		{Title: "Home", Href: "/"},
		{Title: "Terms", Href: "/legal/terms"},
		{Title: "Privacy", Href: "/legal/privacy"},
	}

	links = Links{
		Twitter: "https://x.com/supafoxDEV",
		GitHub:  "https://github.com/supafox",
		Docs:    "https://supafox.com/docs",
	}

	providers = []Provider{
		{Name: "Supafox", Logo: "supafox", URL: "https://supafox.dev"},
		{Name: "Next.js", Logo: "nextjs", URL: "https://nextjs.org"},
		{Name: "Tailwind CSS", Logo: "tailwindcss", URL: "https://tailwindcss.com"},
	}
)

// Site is the site configuration bound to a public base URL.
type Site struct {
	Name      string
	MainNav   []NavItem
	Links     Links
	Providers []Provider

	base *url.URL
}

// New builds the site data for publicURL. An empty value means
// DefaultPublicURL; a value without scheme is taken to be https.
func New(publicURL string) (*Site, error) {
	base, err := ParsePublicURL(publicURL)
	if err != nil {
		return nil, err
	}
	return &Site{
		Name:      "Supafox",
		MainNav:   append([]NavItem(nil), mainNav...),
		Links:     links,
		Providers: append([]Provider(nil), providers...),
		base:      base,
	}, nil
}

// ParsePublicURL normalises a configured public URL.
func ParsePublicURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultPublicURL
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.NewConfigError("INVALID_PUBLIC_URL", "public URL must be an absolute http(s) URL").
			WithContext("public_url", raw)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery, u.Fragment = "", ""
	return u, nil
}

// PublicURL returns a copy of the base URL.
func (s *Site) PublicURL() *url.URL {
	u := *s.base
	return &u
}

// AbsoluteURL resolves path against the public URL.
func (s *Site) AbsoluteURL(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return s.base.String()
	}
	return s.base.ResolveReference(ref).String()
}

// OGImageURL is the generated Open Graph image for a legal document.
func (s *Site) OGImageURL(heading string) string {
	u := s.base.ResolveReference(&url.URL{Path: "/api/og"})
	q := url.Values{}
	q.Set("heading", heading)
	q.Set("type", "Legal")
	q.Set("mode", "dark")
	u.RawQuery = q.Encode()
	return u.String()
}

// IsActive reports whether a nav item matches the current path.
func (n NavItem) IsActive(path string) bool {
	if n.Href == "/" {
		return path == "/"
	}
	return path == n.Href || strings.HasPrefix(path, n.Href+"/")
}

// FormatDate renders t in DateFormat, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}
