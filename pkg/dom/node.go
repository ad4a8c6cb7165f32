// Package dom provides the declarative node tree that widgets render into.
//
// Nodes are the framework's retained output: each carries a tag, an ordered
// attribute list, event handlers, and children. Widgets mutate their node in
// place across rebuilds; tests and host embedders read the tree after each
// frame. There is no layout or paint here; geometry and styling are the
// host's concern.
package dom

import (
	"github.com/go-drift/primitives/pkg/events"
)

// Attribute is a single name/value pair on a node.
type Attribute struct {
	Name  string
	Value string
}

// Node is an element of the rendered tree.
//
// Attribute order is insertion order, which keeps diagnostic output and
// snapshots stable across rebuilds.
type Node struct {
	// Tag is the element tag in lowercase ("button", "input", "span").
	Tag string

	// Key optionally identifies the node for lookups.
	Key any

	// OnClick is invoked when the node receives an activation click.
	OnClick func(event events.PointerEvent)

	// OnKeyDown is invoked before the node's default key behavior runs.
	// Returning KeyEventHandled does not by itself cancel the default;
	// handlers cancel it explicitly via KeyEvent.PreventDefault.
	OnKeyDown func(event *events.KeyEvent) events.KeyEventResult

	attrs    []Attribute
	children []*Node
	parent   *Node
}

// NewNode creates a node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// SetAttr sets an attribute, replacing any existing value for the name.
func (n *Node) SetAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute if present.
func (n *Node) RemoveAttr(name string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// ClearAttrs removes all attributes. Widgets call this at the start of a
// reconfigure pass so stale passthrough attributes do not linger.
func (n *Node) ClearAttrs() {
	n.attrs = n.attrs[:0]
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute, or fallback if absent.
func (n *Node) AttrOr(name, fallback string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return fallback
}

// Attrs returns the attributes in insertion order. The returned slice is
// owned by the node; callers must not mutate it.
func (n *Node) Attrs() []Attribute {
	return n.attrs
}

// Disabled reports whether the node carries the native disabled attribute.
func (n *Node) Disabled() bool {
	_, ok := n.Attr("disabled")
	return ok
}

// AppendChild adds a child node.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild removes a child node if present.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns the child nodes in document order. The returned slice is
// owned by the node; callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk performs a depth-first pre-order traversal. The visitor returns
// false to stop the traversal.
func (n *Node) Walk(visitor func(*Node) bool) {
	walk(n, visitor)
}

func walk(n *Node, visitor func(*Node) bool) bool {
	if !visitor(n) {
		return false
	}
	for _, child := range n.children {
		if !walk(child, visitor) {
			return false
		}
	}
	return true
}
