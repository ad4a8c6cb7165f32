// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for building reactive component
// trees: Widget, Element, State, and BuildContext. It follows a declarative
// model where widgets describe what the rendered output should look like, and
// the framework efficiently updates the node tree to match.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are lightweight
// configuration objects that can be created frequently without performance concerns.
//
// Element is the instantiation of a Widget at a particular location in the tree.
// Elements manage the lifecycle and identity of widgets.
//
// NodeWidget bridges widgets to rendered nodes: CreateNode builds the node once
// on mount and UpdateNode reconfigures it on every rebuild.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) InitState() {
//	    // Initialize state here
//	}
//
// # State Management
//
// Managed provides automatic rebuild triggering:
//
//	s.count = core.NewManaged(s, 0)
//	s.count.Set(s.count.Value() + 1) // Automatically triggers rebuild
//
// Observable provides thread-safe reactive values:
//
//	checked := core.NewObservable(false)
//	core.UseObservable(s, checked) // Subscribe to changes
//
// UseControlled selects between an externally owned Observable and local
// Managed state, which is how form controls support both controlled and
// uncontrolled usage.
//
// # Constructor Conventions
//
// Long-lived mutable objects use NewX() constructors returning pointers:
//
//	owner := core.NewBuildOwner()
//	checked := core.NewObservable(false)
//
// Widgets are immutable configuration and use struct literals or XxxOf()
// helpers instead.
package core
