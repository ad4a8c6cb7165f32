package dom

import (
	"github.com/go-drift/primitives/pkg/events"
)

// DispatchClick delivers an activation click to the node.
//
// A node carrying the native disabled attribute swallows the event, the
// same way a disabled host control never reaches application handlers.
func (n *Node) DispatchClick(event events.PointerEvent) {
	if n.Disabled() {
		return
	}
	if n.OnClick != nil {
		n.OnClick(event)
	}
}

// DispatchKeyDown delivers a key press to the node and then runs the
// node's default key behavior unless the handler prevented it.
//
// The only default behavior modeled here is native button activation:
// a "button" node synthesizes a click from Space and Enter, matching the
// host toolkit's built-in button semantics. Widgets that want a narrower
// activation set (e.g. the ARIA switch pattern, Space only) cancel the
// unwanted key via PreventDefault in their OnKeyDown handler.
func (n *Node) DispatchKeyDown(event *events.KeyEvent) events.KeyEventResult {
	if n.Disabled() {
		return events.KeyEventIgnored
	}

	result := events.KeyEventIgnored
	if n.OnKeyDown != nil {
		result = n.OnKeyDown(event)
	}
	if event.DefaultPrevented() {
		return result
	}

	if n.Tag == "button" && (event.Key == events.KeySpace || event.Key == events.KeyEnter) {
		n.DispatchClick(events.PointerEvent{Phase: events.PointerPhaseUp})
		return events.KeyEventHandled
	}
	return result
}

// FocusTarget reports whether the node can be reached by keyboard focus.
// Nodes with tabindex="-1" are excluded from the tab order.
func (n *Node) FocusTarget() bool {
	if n.Disabled() {
		return false
	}
	if v, ok := n.Attr("tabindex"); ok && v == "-1" {
		return false
	}
	switch n.Tag {
	case "button", "input":
		return true
	}
	_, ok := n.Attr("tabindex")
	return ok
}
