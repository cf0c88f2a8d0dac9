// Package wikinode defines the document-tree model produced by the external
// wikitext provider. The extractor consumes these trees; it never builds them
// from raw markup. Node values are treated as immutable once handed over.
package wikinode

// Kind identifies the node variant.
type Kind string

const (
	KindRoot      Kind = "ROOT"
	KindSection   Kind = "SECTION"
	KindList      Kind = "LIST"
	KindListItem  Kind = "LIST_ITEM"
	KindTemplate  Kind = "TEMPLATE"
	KindTable     Kind = "TABLE"
	KindTableRow  Kind = "TABLE_ROW"
	KindTableCell Kind = "TABLE_CELL"
	KindLink      Kind = "LINK"
	KindText      Kind = "TEXT"
	KindHLine     Kind = "HLINE"
	KindHTML      Kind = "HTML"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindRoot, KindSection, KindList, KindListItem, KindTemplate,
		KindTable, KindTableRow, KindTableCell, KindLink, KindText,
		KindHLine, KindHTML:
		return true
	}
	return false
}

// Heading levels for section nodes. Level 2 is a language section;
// levels 3-6 nest beneath it.
const (
	MinHeadingLevel = 2
	MaxHeadingLevel = 6
)

// Node is one node of a parsed page tree. Which fields are meaningful
// depends on Kind:
//
//	SECTION    Level, Heading, Children
//	LIST       Children (list items)
//	LIST_ITEM  Marker, Children
//	TEMPLATE   Name, Args, NamedArgs
//	LINK       Target
//	TEXT       Text
//	TABLE*     Children
//	HTML       Children (contents of an inline HTML element)
type Node struct {
	Kind Kind `json:"kind"`

	// Section fields.
	Level   int    `json:"level,omitempty"`
	Heading string `json:"heading,omitempty"`

	// Template fields. Args holds positional arguments in order
	// (argument 1 is Args[0]); each argument is itself a subtree.
	Name      string           `json:"name,omitempty"`
	Args      []*Node          `json:"args,omitempty"`
	NamedArgs map[string]*Node `json:"named_args,omitempty"`

	// List item marker string, e.g. "#", "##", "*" or "*::".
	Marker string `json:"marker,omitempty"`

	// Link target, possibly namespaced ("Category:...", "Thesaurus:...").
	Target string `json:"target,omitempty"`

	// Text payload for TEXT nodes.
	Text string `json:"text,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// IsSection reports whether the node is a section heading node.
func (n *Node) IsSection() bool { return n != nil && n.Kind == KindSection }

// ChildSections returns the direct child section nodes.
func (n *Node) ChildSections() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsSection() {
			out = append(out, c)
		}
	}
	return out
}

// Lists returns the direct child list nodes.
func (n *Node) Lists() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c != nil && c.Kind == KindList {
			out = append(out, c)
		}
	}
	return out
}

// Templates returns all template nodes in the subtree, in document order.
// It does not descend into template arguments.
func (n *Node) Templates() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		if cur.Kind == KindTemplate {
			out = append(out, cur)
			return
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	for _, c := range n.Children {
		walk(c)
	}
	if n.Kind == KindTemplate {
		out = append(out, n)
	}
	return out
}

// Links returns all link nodes in the subtree, in document order.
func (n *Node) Links() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		if cur.Kind == KindLink {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
