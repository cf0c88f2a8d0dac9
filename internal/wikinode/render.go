package wikinode

import (
	"regexp"
	"strings"
)

// TemplateFn lets a caller substitute custom handling for specific
// templates during rendering. Returning ok=false falls through to the
// renderer's default expansion; returning ok=true replaces the template
// with the given text (which may be empty to drop it).
type TemplateFn func(name string, inv Invocation) (text string, ok bool)

// Renderer renders a subtree to plain text. The production renderer is
// supplied by the wikitext provider and performs full template expansion;
// the extractor only depends on this interface.
type Renderer interface {
	Render(nodes []*Node, fn TemplateFn) string
}

// TextRenderer is the fallback renderer used in tests and for trees whose
// templates were already expanded by the provider. Templates render through
// the hook when one is given; otherwise they render as their first
// positional argument, which matches how most inline formatting templates
// behave after expansion.
type TextRenderer struct{}

var _ Renderer = TextRenderer{}

var spaceRe = regexp.MustCompile(`\s+`)

// Render concatenates text nodes, link targets and hook-expanded templates
// into a single cleaned string.
func (TextRenderer) Render(nodes []*Node, fn TemplateFn) string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case KindText:
			b.WriteString(n.Text)
		case KindLink:
			// Render the visible part of a link; namespaced links
			// (Category:, Thesaurus:) carry no visible gloss text.
			if !strings.Contains(n.Target, ":") {
				b.WriteString(n.Target)
			}
		case KindTemplate:
			inv := Resolve(n, TextRenderer{})
			if fn != nil {
				if s, ok := fn(n.Name, inv); ok {
					b.WriteString(s)
					return
				}
			}
			if len(inv.Pos) > 0 {
				b.WriteString(inv.Pos[len(inv.Pos)-1])
			}
		case KindList:
			// Lists are handled structurally by the extractors, never
			// flattened into gloss text.
		default:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return CleanText(b.String())
}

// CleanText collapses whitespace and trims the result.
func CleanText(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
