package wikinode

import "strconv"

// Invocation is a template call with its arguments resolved to cleaned
// plain text. Positional arguments are indexed from 1, matching the
// source markup convention; omitted trailing positional arguments are
// trimmed away.
type Invocation struct {
	Name  string
	Pos   []string // Pos[0] is positional argument 1
	Named map[string]string
}

// Resolve renders a template node's arguments through the given renderer.
func Resolve(t *Node, r Renderer) Invocation {
	inv := Invocation{Name: t.Name}
	for _, arg := range t.Args {
		inv.Pos = append(inv.Pos, r.Render([]*Node{arg}, nil))
	}
	// Trim omitted trailing positional arguments.
	for len(inv.Pos) > 0 && inv.Pos[len(inv.Pos)-1] == "" {
		inv.Pos = inv.Pos[:len(inv.Pos)-1]
	}
	if len(t.NamedArgs) > 0 {
		inv.Named = make(map[string]string, len(t.NamedArgs))
		for k, v := range t.NamedArgs {
			inv.Named[k] = r.Render([]*Node{v}, nil)
		}
	}
	return inv
}

// Arg returns positional argument i (1-based), or "" when absent.
// Numeric named arguments ("3=...") shadow positionals, as in wikitext.
func (inv Invocation) Arg(i int) string {
	if v, ok := inv.Named[strconv.Itoa(i)]; ok {
		return v
	}
	if i >= 1 && i <= len(inv.Pos) {
		return inv.Pos[i-1]
	}
	return ""
}

// NamedArg returns named argument key, or "" when absent.
func (inv Invocation) NamedArg(key string) string {
	return inv.Named[key]
}

// Vec returns all positional arguments starting at argument 1, with
// omitted trailing arguments already trimmed.
func (inv Invocation) Vec() []string {
	out := make([]string, len(inv.Pos))
	copy(out, inv.Pos)
	return out
}

// Dict returns all arguments keyed by name, positionals under their
// numeric string key, plus the template name under "template_name".
func (inv Invocation) Dict() map[string]string {
	out := make(map[string]string, len(inv.Pos)+len(inv.Named)+1)
	for i, v := range inv.Pos {
		out[strconv.Itoa(i+1)] = v
	}
	for k, v := range inv.Named {
		out[k] = v
	}
	out["template_name"] = inv.Name
	return out
}
