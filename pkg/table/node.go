package table

import (
	"slices"
	"strings"
)

// Element tags produced by the primitives.
const (
	TagFragment = ""
	TagText     = "#text"
	TagRow      = "tr"
	TagCell     = "td"
	TagSpan     = "span"
)

// Node is one element of a rendered tree. Renderers return nodes, primitives
// compose them, and package display turns them into terminal lines.
type Node struct {
	Tag       string  `json:"tag,omitempty"`
	Key       string  `json:"key,omitempty"`
	ClassName string  `json:"className,omitempty"`
	Text      string  `json:"text,omitempty"`
	Attrs     Attrs   `json:"attrs,omitempty"`
	Children  []*Node `json:"children,omitempty"`

	// OnActivate runs when the element is clicked or otherwise activated.
	OnActivate func() `json:"-"`
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Tag: TagText, Text: s}
}

// Fragment groups children without adding structure. Nil children are dropped.
func Fragment(children ...*Node) *Node {
	return &Node{Tag: TagFragment, Children: compact(children)}
}

// Span creates an inline element.
func Span(className string, attrs Attrs, children ...*Node) *Node {
	return &Node{Tag: TagSpan, ClassName: className, Attrs: attrs, Children: compact(children)}
}

func compact(nodes []*Node) []*Node {
	if !slices.Contains(nodes, nil) {
		return nodes
	}
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// HasClass reports whether name is one of the node's classes.
func (n *Node) HasClass(name string) bool {
	if n == nil {
		return false
	}
	return slices.Contains(strings.Fields(n.ClassName), name)
}

// PlainText concatenates the text of the subtree.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Tag == TagText {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// Walk visits the subtree depth-first. Returning false from fn skips the
// children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node in the subtree matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node in the subtree matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// ElementFactory builds the structural containers of a table. Callers inject
// their own implementation to decorate or replace the default row and cell
// elements.
type ElementFactory interface {
	Row(className string, attrs Attrs, children ...*Node) *Node
	Cell(className string, attrs Attrs, children ...*Node) *Node
}

// Elements is the default ElementFactory producing tr and td nodes.
type Elements struct{}

// Row builds a tr node.
func (Elements) Row(className string, attrs Attrs, children ...*Node) *Node {
	return &Node{Tag: TagRow, ClassName: className, Attrs: attrs, Children: compact(children)}
}

// Cell builds a td node.
func (Elements) Cell(className string, attrs Attrs, children ...*Node) *Node {
	return &Node{Tag: TagCell, ClassName: className, Attrs: attrs, Children: compact(children)}
}

func factoryOr(f ElementFactory) ElementFactory {
	if f == nil {
		return Elements{}
	}
	return f
}
