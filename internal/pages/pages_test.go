package pages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/content"
	"github.com/supafox/supafox/internal/site"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func testDocs() []*content.Document {
	return []*content.Document{
		{
			Title:        "Privacy Policy",
			Description:  "What we collect & why.",
			Date:         time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Published:    true,
			Slug:         "/legal/privacy",
			SlugAsParams: "privacy",
			HTML:         `<p class="text-copy-16">We collect little.</p>`,
		},
		{
			Title:        "Terms of Service",
			Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Published:    true,
			Slug:         "/legal/terms",
			SlugAsParams: "terms",
		},
	}
}

func TestHome(t *testing.T) {
	s, err := site.New("")
	require.NoError(t, err)
	out := render(t, Home(s))

	assert.Contains(t, out, `<section id="hero" class="py-25">`)
	assert.Contains(t, out, `<h1 class="text-heading-56 max-w-[900px] text-card-foreground">Kickstart Your Next.js Project</h1>`)
	assert.Contains(t, out, `<div class="grid sm:grid-cols-1 md:grid-cols-3 border-border border-t border-l">`)
	assert.Equal(t, 3, strings.Count(out, "border-border border-b border-r p-16"))
	assert.Contains(t, out, `href="https://tailwindcss.com"`)
	assert.Contains(t, out, "Deploy now")
}

func TestLegalIndex(t *testing.T) {
	out := render(t, LegalIndex(testDocs()))

	assert.Contains(t, out, `<h1 class="text-heading-48">Legal</h1>`)
	assert.Equal(t, 2, strings.Count(out, "<article"))
	assert.Contains(t, out, "What we collect &amp; why.")
	assert.Contains(t, out, `<time datetime="2024-06-15">June 15, 2024</time>`)
	assert.Contains(t, out, `<a href="/legal/terms" class="absolute inset-0">`)
	assert.Less(t, strings.Index(out, "Privacy Policy"), strings.Index(out, "Terms of Service"))

	empty := render(t, LegalIndex(nil))
	assert.Contains(t, empty, "<p>No legal documents published.</p>")
	assert.NotContains(t, empty, "<article")
}

func TestLegalDocument(t *testing.T) {
	out := render(t, LegalDocument(testDocs()[0]))

	assert.Contains(t, out, `<h1 class="text-heading-48">Privacy Policy</h1>`)
	assert.Contains(t, out, `<div class="mdx"><p class="text-copy-16">We collect little.</p></div>`)
	assert.Contains(t, out, `href="/legal"`)
	assert.Contains(t, out, "See all legal docs")
}

func TestNotFound(t *testing.T) {
	out := render(t, NotFound())
	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, `href="/"`)
}
