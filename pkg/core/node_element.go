package core

import (
	"github.com/go-drift/primitives/pkg/dom"
)

// NodeElement hosts a NodeWidget and the rendered node it owns.
//
// The node is created once on mount and mutated in place on rebuilds, so
// references held by ancestors and tests stay valid across frames. The
// node attaches to the node of the nearest ancestor NodeElement; elements
// without nodes (stateless, stateful, inherited, fragments) are
// transparent to the rendered tree.
type NodeElement struct {
	elementBase
	node     *dom.Node
	children []Element
}

// NewNodeElement creates a NodeElement. The widget and build owner are
// set by the framework during inflation.
func NewNodeElement() *NodeElement {
	return &NodeElement{}
}

func (e *NodeElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	widget := e.widget.(NodeWidget)
	e.node = widget.CreateNode(e)
	e.node.Key = e.widget.Key()
	e.attachNode()
	e.RebuildIfNeeded()
}

func (e *NodeElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *NodeElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	e.detachNode()
}

func (e *NodeElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	widget := e.widget.(NodeWidget)
	widget.UpdateNode(e, e.node)

	switch typed := e.widget.(type) {
	case interface{ ChildWidget() Widget }:
		childWidget := typed.ChildWidget()
		var child Element
		if len(e.children) > 0 {
			child = e.children[0]
		}
		child = updateChild(child, childWidget, e, e.buildOwner)
		if child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}

	case interface{ ChildrenWidgets() []Widget }:
		widgets := typed.ChildrenWidgets()
		updated := make([]Element, 0, len(widgets))
		for index, childWidget := range widgets {
			var existing Element
			if index < len(e.children) {
				existing = e.children[index]
			}
			child := updateChild(existing, childWidget, e, e.buildOwner)
			if child != nil {
				updated = append(updated, child)
			}
		}
		for i := len(widgets); i < len(e.children); i++ {
			e.children[i].Unmount()
		}
		e.children = updated
	}
}

func (e *NodeElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// Node exposes the rendered node owned by this element.
func (e *NodeElement) Node() *dom.Node {
	return e.node
}

// attachNode inserts this element's node under the nearest ancestor node.
func (e *NodeElement) attachNode() {
	if e.nodeParent != nil && e.nodeParent.node != nil {
		e.nodeParent.node.AppendChild(e.node)
	}
}

// detachNode removes this element's node from its parent node.
func (e *NodeElement) detachNode() {
	if e.nodeParent != nil && e.nodeParent.node != nil {
		e.nodeParent.node.RemoveChild(e.node)
	}
	e.nodeParent = nil
}
