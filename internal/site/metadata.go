package site

import "fmt"

const (
	siteTitle       = "SupaFox"
	titleTemplate   = "%s | SupaFox"
	siteDescription = "SupaFox is a modern and clean Next.js template for building fast and scalable web applications."
	twitterHandle   = "@supafox"
	locale          = "en_US"

	// ManifestPath is the web app manifest.
	ManifestPath = "/web-app/manifest.json"
)

// Image is an Open Graph or Twitter card image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// Icon is a <link> icon entry.
type Icon struct {
	Rel   string
	Href  string
	Sizes string
	Type  string
}

// Metadata is what the document head renders.
type Metadata struct {
	// Title is the page title; empty means the site default.
	Title       string
	Description string
	URL         string
	Type        string // og:type

	Images        []Image
	TwitterImages []Image
	TwitterCard   string
	TwitterSite   string
	Locale        string
	SiteName      string
	Icons         []Icon
	Manifest      string
	Robots        string
}

// FullTitle applies the title template.
func (m Metadata) FullTitle() string {
	if m.Title == "" {
		return siteTitle
	}
	return fmt.Sprintf(titleTemplate, m.Title)
}

// DefaultMetadata is the metadata every page starts from.
func (s *Site) DefaultMetadata() Metadata {
	return Metadata{
		Description: siteDescription,
		URL:         s.base.String(),
		Type:        "website",
		Images: []Image{
			{URL: s.AbsoluteURL("/opengraph/og-image.jpg"), Width: 1200, Height: 630},
		},
		TwitterImages: []Image{
			{URL: s.AbsoluteURL("/opengraph/twitter-image.jpg"), Width: 1600, Height: 800},
		},
		TwitterCard: "summary_large_image",
		TwitterSite: twitterHandle,
		Locale:      locale,
		SiteName:    siteTitle,
		Icons: []Icon{
			{Rel: "icon", Href: "/favicon/favicon.ico", Sizes: "any", Type: "image/x-icon"},
			{Rel: "icon", Href: "/favicon/icon.svg", Type: "image/svg+xml"},
			{Rel: "apple-touch-icon", Href: "/favicon/apple-icon.png", Sizes: "180x180", Type: "image/png"},
		},
		Manifest: ManifestPath,
		Robots:   "index, follow",
	}
}

// PageMetadata overrides the title and description of the defaults.
func (s *Site) PageMetadata(title, description string) Metadata {
	m := s.DefaultMetadata()
	m.Title = title
	if description != "" {
		m.Description = description
	}
	return m
}

// ArticleMetadata is the metadata for a legal document at slug. The
// generated Open Graph image goes first, followed by the site defaults.
func (s *Site) ArticleMetadata(title, description, slug string) Metadata {
	m := s.PageMetadata(title, description)
	m.Type = "article"
	m.URL = s.AbsoluteURL(slug)

	og := Image{URL: s.OGImageURL(title), Width: 1200, Height: 630, Alt: title}
	m.Images = append([]Image{og}, m.Images...)
	m.TwitterImages = []Image{{URL: og.URL}}
	return m
}
