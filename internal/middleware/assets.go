package middleware

import (
	"path"
	"strings"
)

// DefaultAssetPrefixes are path prefixes served as static assets.
var DefaultAssetPrefixes = []string{
	"/_next/static/",
	"/_next/image",
	"/static/",
	"/favicon",
	"/web-app/",
	"/opengraph/",
}

// DefaultAssetExtensions are file extensions served as static assets.
var DefaultAssetExtensions = []string{
	".js", ".css", ".map",
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp", ".avif",
	".woff", ".woff2", ".ttf", ".otf",
	".txt", ".xml", ".webmanifest",
}

// AssetMatcher decides which requests skip session resolution and security
// headers.
type AssetMatcher struct {
	prefixes   []string
	extensions map[string]struct{}
}

// NewAssetMatcher builds a matcher. Nil slices fall back to the defaults;
// empty non-nil slices disable that kind of match.
func NewAssetMatcher(prefixes, extensions []string) *AssetMatcher {
	if prefixes == nil {
		prefixes = DefaultAssetPrefixes
	}
	if extensions == nil {
		extensions = DefaultAssetExtensions
	}

	m := &AssetMatcher{
		prefixes:   append([]string(nil), prefixes...),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m.extensions[ext] = struct{}{}
	}
	return m
}

// Match reports whether urlPath is a static asset.
func (m *AssetMatcher) Match(urlPath string) bool {
	for _, prefix := range m.prefixes {
		if strings.HasPrefix(urlPath, prefix) {
			return true
		}
	}
	_, ok := m.extensions[strings.ToLower(path.Ext(urlPath))]
	return ok
}
