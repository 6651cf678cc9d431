package layout

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/livereload"
	"github.com/supafox/supafox/internal/security"
	"github.com/supafox/supafox/internal/site"
	"github.com/supafox/supafox/internal/theme"
	"github.com/supafox/supafox/internal/ui"
)

func testPage(t *testing.T) Page {
	t.Helper()
	s, err := site.New("https://supafox.dev")
	require.NoError(t, err)
	return Page{
		Site:        s,
		Meta:        s.PageMetadata("Legal", "Legal documents."),
		Path:        "/legal/terms",
		Theme:       theme.Dark,
		Environment: security.Production,
	}
}

func renderCtx(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(ctx, &sb))
	return sb.String()
}

func TestDocumentShell(t *testing.T) {
	ctx := templ.WithNonce(context.Background(), "abc123==")
	out := renderCtx(t, ctx, Document(testPage(t), ui.Text("hello")))

	assert.True(t, strings.HasPrefix(out, `<!DOCTYPE html><html lang="en" class="dark"><head>`))
	assert.Contains(t, out, `<title>Legal | SupaFox</title>`)
	assert.Contains(t, out, `<meta name="description" content="Legal documents.">`)
	assert.Contains(t, out, `<link rel="canonical" href="https://supafox.dev/">`)
	assert.Contains(t, out, `<meta property="og:image" content="https://supafox.dev/opengraph/og-image.jpg">`)
	assert.Contains(t, out, `<meta name="twitter:site" content="@supafox">`)
	assert.Contains(t, out, `<link rel="icon" href="/favicon/favicon.ico" sizes="any" type="image/x-icon">`)
	assert.Contains(t, out, `<link rel="icon" href="/favicon/icon.svg" type="image/svg+xml">`)
	assert.Contains(t, out, `<link rel="manifest" href="/web-app/manifest.json">`)
	assert.Contains(t, out, `<link rel="stylesheet" href="/static/css/globals.css">`)
	assert.Contains(t, out, `<script nonce="abc123==">(function () {`)
	assert.Contains(t, out, `<body class="min-h-screen bg-background font-sans text-copy-16 antialiased">`)
	assert.Contains(t, out, `<main class="flex-1 container py-16 min-h-screen">hello</main>`)
	assert.Contains(t, out, "<footer")

	assert.NotContains(t, out, "Current screen size indicator", "no indicator in production")
	assert.NotContains(t, out, livereload.Path)
}

func TestDocumentDevelopment(t *testing.T) {
	p := testPage(t)
	p.Environment = security.Development
	p.LiveReload = true
	p.Theme = theme.System

	out := renderCtx(t, context.Background(), Document(p, nil))

	assert.True(t, strings.HasPrefix(out, `<!DOCTYPE html><html lang="en"><head>`))
	assert.Contains(t, out, "Current screen size indicator")
	assert.Contains(t, out, livereload.Path)
	assert.NotContains(t, out, "nonce=", "no nonce in context, no attribute")
}

func TestNavbarMarksActiveLink(t *testing.T) {
	out := renderCtx(t, context.Background(), Navbar(testPage(t)))

	assert.Contains(t, out, `<a href="/legal/terms" class="hover:text-muted-foreground transition-colors text-primary" aria-current="page">Terms</a>`)
	assert.Contains(t, out, `<a href="/" class="hover:text-muted-foreground transition-colors">Home</a>`)
	assert.Contains(t, out, `aria-label="Toggle mobile menu"`)
	assert.Contains(t, out, `<span class="text-heading-20">Supafox</span>`)
}

func TestThemeToggle(t *testing.T) {
	out := renderCtx(t, context.Background(), ThemeToggle(theme.Dark, "/legal?a=1&b=2"))

	assert.Contains(t, out, `<form method="post" action="/api/theme" data-theme-toggle>`)
	assert.Contains(t, out, `name="theme" value="light"`)
	assert.Contains(t, out, `name="redirect" value="/legal?a=1&amp;b=2"`)
	assert.Contains(t, out, `<span class="sr-only">Toggle theme</span>`)

	out = renderCtx(t, context.Background(), ThemeToggle(theme.System, ""))
	assert.Contains(t, out, `name="theme" value="dark"`)
	assert.Contains(t, out, `name="redirect" value="/"`)
}

func TestFooterLinksOpenInNewTab(t *testing.T) {
	out := renderCtx(t, context.Background(), Footer())
	assert.Equal(t, 3, strings.Count(out, `target="_blank" rel="noopener noreferrer"`))
	assert.Contains(t, out, "Go to nextjs.org →")
}
