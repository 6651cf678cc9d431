// Package tw composes Tailwind class lists for the UI components and resolves
// responsive props against static class tables.
package tw

import (
	"sort"
	"strings"
)

// Cond is a class list that is kept only when Ok is true.
type Cond struct {
	Class string
	Ok    bool
}

// If returns a Cond for class.
func If(ok bool, class string) Cond {
	return Cond{Class: class, Ok: ok}
}

// Class flattens inputs into a class list and merges conflicting utilities.
// Accepted inputs are string, []string, map[string]bool, Cond and nested
// []any; anything else is skipped.
func Class(inputs ...any) string {
	var tokens []string
	for _, in := range inputs {
		tokens = flatten(tokens, in)
	}
	return Merge(tokens...)
}

func flatten(dst []string, in any) []string {
	switch v := in.(type) {
	case string:
		dst = append(dst, strings.Fields(v)...)
	case []string:
		for _, s := range v {
			dst = append(dst, strings.Fields(s)...)
		}
	case Cond:
		if v.Ok {
			dst = append(dst, strings.Fields(v.Class)...)
		}
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, ok := range v {
			if ok {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = append(dst, strings.Fields(k)...)
		}
	case []any:
		for _, item := range v {
			dst = flatten(dst, item)
		}
	}
	return dst
}

// Merge joins class lists, keeping only the last class of each conflict group
// per variant. A surviving class sits where it last occurred.
func Merge(classes ...string) string {
	var tokens []string
	for _, c := range classes {
		tokens = append(tokens, strings.Fields(c)...)
	}

	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		variant, utility := splitVariant(tok)

		group := groupOf(utility)
		if group == "" {
			key := "=" + variant + utility
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, tok)
			continue
		}

		key := variant + group
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		for _, sub := range overrides[group] {
			seen[variant+sub] = struct{}{}
		}
		kept = append(kept, tok)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

// splitVariant separates "md:hover:" style prefixes from the utility. Colons
// inside arbitrary-value brackets do not count. A leading "!" marks the
// utility important and is folded into the variant.
func splitVariant(class string) (variant, utility string) {
	depth := 0
	cut := -1
	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				cut = i
			}
		}
	}
	variant, utility = class[:cut+1], class[cut+1:]
	if strings.HasPrefix(utility, "!") {
		variant += "!"
		utility = utility[1:]
	}
	return variant, utility
}

// overrides lists groups a later class also clears, e.g. p-4 after px-2.
var overrides = map[string][]string{
	"p":       {"px", "py", "pt", "pr", "pb", "pl"},
	"px":      {"pr", "pl"},
	"py":      {"pt", "pb"},
	"m":       {"mx", "my", "mt", "mr", "mb", "ml"},
	"mx":      {"mr", "ml"},
	"my":      {"mt", "mb"},
	"gap":     {"gap-x", "gap-y"},
	"inset":   {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"inset-x": {"right", "left"},
	"inset-y": {"top", "bottom"},
	"rounded": {"rounded-t", "rounded-r", "rounded-b", "rounded-l"},
	"border-w": {
		"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l",
	},
	"size": {"w", "h"},
}

var exactGroups = map[string]string{
	"block": "display", "inline-block": "display", "inline": "display",
	"flex": "display", "inline-flex": "display", "grid": "display",
	"inline-grid": "display", "contents": "display", "hidden": "display",
	"table": "display", "flow-root": "display",

	"static": "position", "fixed": "position", "absolute": "position",
	"relative": "position", "sticky": "position",

	"flex-row": "flex-direction", "flex-row-reverse": "flex-direction",
	"flex-col": "flex-direction", "flex-col-reverse": "flex-direction",

	"flex-wrap": "flex-wrap", "flex-wrap-reverse": "flex-wrap", "flex-nowrap": "flex-wrap",

	"flex-1": "flex", "flex-auto": "flex", "flex-initial": "flex", "flex-none": "flex",

	"visible": "visibility", "invisible": "visibility", "collapse": "visibility",

	"underline": "text-decoration", "overline": "text-decoration",
	"line-through": "text-decoration", "no-underline": "text-decoration",

	"uppercase": "text-transform", "lowercase": "text-transform",
	"capitalize": "text-transform", "normal-case": "text-transform",

	"italic": "font-style", "not-italic": "font-style",

	"truncate": "text-overflow", "text-ellipsis": "text-overflow", "text-clip": "text-overflow",

	"container": "container",

	"rounded": "rounded", "shadow": "shadow", "border": "border-w",
	"border-x": "border-w-x", "border-y": "border-w-y", "border-t": "border-w-t",
	"border-r": "border-w-r", "border-b": "border-w-b", "border-l": "border-w-l",

	"sr-only": "sr", "not-sr-only": "sr",
}

// prefixGroups maps a utility prefix (without its value) to its group. Longer
// prefixes are tried first.
var prefixGroups = map[string]string{
	"p": "p", "px": "px", "py": "py", "pt": "pt", "pr": "pr", "pb": "pb", "pl": "pl",
	"m": "m", "mx": "mx", "my": "my", "mt": "mt", "mr": "mr", "mb": "mb", "ml": "ml",
	"gap": "gap", "gap-x": "gap-x", "gap-y": "gap-y",
	"space-x": "space-x", "space-y": "space-y",
	"w": "w", "h": "h", "size": "size",
	"min-w": "min-w", "min-h": "min-h", "max-w": "max-w", "max-h": "max-h",
	"grid-cols": "grid-cols", "grid-rows": "grid-rows",
	"col-span": "col-span", "row-span": "row-span",
	"col-start": "col-start", "col-end": "col-end",
	"row-start": "row-start", "row-end": "row-end",
	"items": "items", "justify": "justify", "content": "content", "self": "self",
	"place-items": "place-items", "place-content": "place-content",
	"order": "order", "basis": "basis", "grow": "grow", "shrink": "shrink",
	"inset": "inset", "inset-x": "inset-x", "inset-y": "inset-y",
	"top": "top", "right": "right", "bottom": "bottom", "left": "left",
	"z": "z", "opacity": "opacity",
	"leading": "leading", "tracking": "tracking",
	"bg": "bg", "fill": "fill", "stroke": "stroke",
	"rounded": "rounded", "rounded-t": "rounded-t", "rounded-r": "rounded-r",
	"rounded-b": "rounded-b", "rounded-l": "rounded-l",
	"shadow": "shadow", "ring": "ring", "outline": "outline",
	"overflow": "overflow", "overflow-x": "overflow-x", "overflow-y": "overflow-y",
	"list": "list", "underline-offset": "underline-offset",
	"decoration": "decoration", "scroll-m": "scroll-m", "scroll-mt": "scroll-mt",
	"cursor": "cursor", "select": "select", "transition": "transition",
	"duration": "duration", "ease": "ease", "delay": "delay",
	"aspect": "aspect", "object": "object", "align": "align",
	"whitespace": "whitespace", "break": "break",
}

var fontWeights = map[string]struct{}{
	"thin": {}, "extralight": {}, "light": {}, "normal": {}, "medium": {},
	"semibold": {}, "bold": {}, "extrabold": {}, "black": {},
}

var textSizes = map[string]struct{}{
	"xs": {}, "sm": {}, "base": {}, "lg": {}, "xl": {}, "2xl": {}, "3xl": {},
	"4xl": {}, "5xl": {}, "6xl": {}, "7xl": {}, "8xl": {}, "9xl": {},
}

var textAligns = map[string]struct{}{
	"left": {}, "center": {}, "right": {}, "justify": {}, "start": {}, "end": {},
}

// groupOf returns the conflict group of a utility, or "" when the utility
// only conflicts with exact duplicates of itself.
func groupOf(utility string) string {
	u := strings.TrimPrefix(utility, "-")

	if g, ok := exactGroups[u]; ok {
		return g
	}

	switch {
	case strings.HasPrefix(u, "text-"):
		return textGroup(strings.TrimPrefix(u, "text-"))
	case strings.HasPrefix(u, "font-"):
		if _, ok := fontWeights[strings.TrimPrefix(u, "font-")]; ok {
			return "font-weight"
		}
		return "font-family"
	case strings.HasPrefix(u, "border-"):
		return borderGroup(strings.TrimPrefix(u, "border-"))
	}

	// Try the longest prefix first: "gap-x-2" belongs to gap-x, not gap.
	for i := len(u) - 1; i > 0; i-- {
		if u[i] != '-' {
			continue
		}
		if g, ok := prefixGroups[u[:i]]; ok {
			return g
		}
	}
	return ""
}

func textGroup(value string) string {
	switch {
	case strings.HasPrefix(value, "heading-"), strings.HasPrefix(value, "copy-"),
		strings.HasPrefix(value, "label-"), strings.HasPrefix(value, "button-"):
		return "font-size"
	}
	if _, ok := textSizes[value]; ok {
		return "font-size"
	}
	if _, ok := textAligns[value]; ok {
		return "text-align"
	}
	return "text-color"
}

func borderGroup(value string) string {
	side := ""
	rest := value
	for _, s := range []string{"x", "y", "t", "r", "b", "l"} {
		if strings.HasPrefix(value, s+"-") {
			side, rest = s, strings.TrimPrefix(value, s+"-")
			break
		}
	}
	if isWidth(rest) {
		if side == "" {
			return "border-w"
		}
		return "border-w-" + side
	}
	if side != "" {
		return "border-color-" + side
	}
	switch rest {
	case "solid", "dashed", "dotted", "double", "none", "hidden":
		return "border-style"
	}
	return "border-color"
}

func isWidth(v string) bool {
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "px]") {
		return true
	}
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
