package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter(t *testing.T) {
	h := NewHighlighter(DefaultCodeStyle)

	out, ok := h.Highlight("Go", "package main\n")
	require.True(t, ok)
	assert.Contains(t, out, "<span")
	assert.Contains(t, out, "package")
	assert.NotContains(t, out, "<pre")

	_, ok = h.Highlight("no-such-language", "x")
	assert.False(t, ok)

	css, err := h.CSS()
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")
}

func TestRendererSanitises(t *testing.T) {
	r := NewRenderer(nil)

	out, err := r.Render([]byte("Hello <script>alert(1)</script> <b onclick=\"x()\">bold</b>\n\n<Callout>inner</Callout>\n"), true)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "<callout")
	assert.Contains(t, out, "<b>bold</b>")
	assert.Contains(t, out, "inner")
}

func TestRendererComponentClasses(t *testing.T) {
	r := NewRenderer(nil)

	src := "Para with `code` and [link](https://example.com).\n\n> quoted\n\n- one\n- two\n\n1. first\n\n---\n\n```\nplain\n```\n\n- [x] done\n"
	out, err := r.Render([]byte(src), false)
	require.NoError(t, err)

	assert.Contains(t, out, `class="text-copy-16 [&amp;:not(:first-child)]:mt-6"`)
	assert.Contains(t, out, "font-mono text-sm")
	assert.Contains(t, out, "underline-offset-4")
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "list-disc")
	assert.Contains(t, out, "list-decimal")
	assert.Contains(t, out, "border-l-2")
	assert.Contains(t, out, `class="my-4 md:my-8"`)
	assert.Contains(t, out, "bg-black")
	assert.Contains(t, out, `type="checkbox"`)
	assert.NotContains(t, out, "data-language")
}
