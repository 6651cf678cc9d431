package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	tests := []struct {
		name   string
		inputs []any
		want   string
	}{
		{
			name:   "plain strings",
			inputs: []any{"flex", "items-center"},
			want:   "flex items-center",
		},
		{
			name:   "non-string inputs are skipped",
			inputs: []any{"grid", 4, nil, struct{}{}, false, "gap-4"},
			want:   "grid gap-4",
		},
		{
			name:   "conditional and map inputs",
			inputs: []any{If(false, "hidden"), If(true, "block"), map[string]bool{"p-4": true, "m-2": false}},
			want:   "block p-4",
		},
		{
			name:   "nested slices",
			inputs: []any{[]any{"flex", []string{"flex-col", "gap-2"}}},
			want:   "flex flex-col gap-2",
		},
		{
			name:   "same group last write wins",
			inputs: []any{"p-4 text-heading-48", "p-2 text-heading-32"},
			want:   "p-2 text-heading-32",
		},
		{
			name:   "survivor takes its last position",
			inputs: []any{"flex-row items-center flex-col"},
			want:   "items-center flex-col",
		},
		{
			name:   "exact duplicates collapse",
			inputs: []any{"foo bar foo"},
			want:   "bar foo",
		},
		{
			name:   "variants do not conflict with the base",
			inputs: []any{"gap-2 md:gap-4 gap-8"},
			want:   "md:gap-4 gap-8",
		},
		{
			name:   "shorthand clears earlier sides",
			inputs: []any{"px-2 py-1 p-4"},
			want:   "p-4",
		},
		{
			name:   "side after shorthand is kept",
			inputs: []any{"p-4 px-2"},
			want:   "p-4 px-2",
		},
		{
			name:   "text size and colour are separate groups",
			inputs: []any{"text-copy-16 text-foreground", "text-muted-foreground"},
			want:   "text-copy-16 text-muted-foreground",
		},
		{
			name:   "project type scale is one font-size group",
			inputs: []any{"text-heading-32 text-foreground text-label-14", "text-button-16"},
			want:   "text-foreground text-button-16",
		},
		{
			name:   "border width and colour",
			inputs: []any{"border-border border-b border-r", "border-b-2"},
			want:   "border-border border-r border-b-2",
		},
		{
			name:   "arbitrary variant",
			inputs: []any{"[&:not(:first-child)]:mt-6 [&:not(:first-child)]:mt-4"},
			want:   "[&:not(:first-child)]:mt-4",
		},
		{
			name:   "empty",
			inputs: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.inputs...))
		})
	}
}

func TestClassIsIdempotent(t *testing.T) {
	inputs := []string{
		"grid grid-cols-1 md:grid-cols-3 gap-4 grid-cols-2 border-border border-t border-l",
		"relative w-screen left-1/2 right-1/2 -ml-[50vw] -mr-[50vw] px-4",
		"text-heading-72 sm:text-heading-48 text-foreground font-bold font-medium",
	}
	for _, in := range inputs {
		once := Class(in)
		assert.Equal(t, once, Class(once), in)
	}
}

func TestGroupOf(t *testing.T) {
	tests := map[string]string{
		"gap-x-2":       "gap-x",
		"grid-cols-12":  "grid-cols",
		"col-span-full": "col-span",
		"flex":          "display",
		"flex-col":      "flex-direction",
		"rounded-t-md":  "rounded-t",
		"font-mono":     "font-family",
		"font-semibold": "font-weight",
		"-ml-[50vw]":    "ml",
		"text-center":   "text-align",
		"py-25":         "py",
		"custom-thing":  "",
	}
	for utility, want := range tests {
		assert.Equal(t, want, groupOf(utility), utility)
	}
}
