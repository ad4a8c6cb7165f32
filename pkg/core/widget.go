package core

import (
	"reflect"

	"github.com/go-drift/primitives/pkg/dom"
)

// Widget is an immutable description of part of the UI. Widgets are
// lightweight configuration structs that can be recreated on every build.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key optionally identifies the widget for reconciliation.
	Key() any
}

// StatelessWidget describes UI purely as a function of its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state across rebuilds via a State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable state for a StatefulWidget.
// Embed StateBase to get default implementations of everything but Build.
type State interface {
	SetElement(element *StatefulElement)
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget propagates data down the tree. Descendants that call
// DependOnInherited are rebuilt when UpdateShouldNotify returns true.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// NodeWidget owns a rendered node. CreateNode runs once when the element
// mounts; UpdateNode reconfigures the same node on every rebuild.
type NodeWidget interface {
	Widget
	CreateNode(ctx BuildContext) *dom.Node
	UpdateNode(ctx BuildContext, node *dom.Node)
}

// BuildContext is the element handle passed to build methods.
type BuildContext interface {
	// Widget returns the widget hosted at this location.
	Widget() Widget
	// DependOnInherited finds the nearest ancestor inherited widget of the
	// given type and registers this element as a dependent.
	DependOnInherited(inheritedType reflect.Type) any
	// FindAncestor walks up the tree for the first element matching predicate.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
}
