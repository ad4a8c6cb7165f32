// Package events provides pointer and keyboard event types for the
// primitives framework.
package events

// PointerPhase identifies the lifecycle phase of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown indicates the pointer made contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseUp indicates the pointer was released.
	PointerPhaseUp
	// PointerPhaseCancel indicates the pointer sequence was aborted.
	PointerPhaseCancel
)

// Offset is a position in logical coordinates.
type Offset struct {
	X, Y float64
}

// PointerEvent describes a single pointer interaction.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers.
	PointerID int64
	// Phase is the lifecycle phase of this event.
	Phase PointerPhase
	// Position is the event location in logical coordinates.
	Position Offset
}

// Key identifies a keyboard key.
type Key int

const (
	// KeyUnknown is an unrecognized key.
	KeyUnknown Key = iota
	// KeyEnter is the Enter/Return key.
	KeyEnter
	// KeySpace is the space bar.
	KeySpace
	// KeyTab is the Tab key.
	KeyTab
	// KeyEscape is the Escape key.
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyEventResult indicates how a key event was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled.
	KeyEventIgnored KeyEventResult = iota
	// KeyEventHandled indicates the event was consumed.
	KeyEventHandled
)

// KeyEvent describes a key press delivered to a node.
//
// Handlers may call PreventDefault to cancel the node's default behavior
// (for example, a button's native activation on Enter).
type KeyEvent struct {
	// Key is the pressed key.
	Key Key

	defaultPrevented bool
}

// NewKeyDown creates a key-down event for the given key.
func NewKeyDown(key Key) *KeyEvent {
	return &KeyEvent{Key: key}
}

// PreventDefault cancels the default behavior associated with this event.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}
