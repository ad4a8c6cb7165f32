// Package semantics describes accessibility properties for rendered nodes.
//
// Widgets build a Configuration and apply it to their node; the
// configuration is the single source for role and aria-* attributes so a
// control's accessible state can never drift from its rendered state.
package semantics

import (
	"github.com/go-drift/primitives/pkg/dom"
)

// Role defines the semantic role of a node.
type Role int

const (
	// RoleNone indicates no explicit role.
	RoleNone Role = iota
	// RoleButton is a generic activatable control.
	RoleButton
	// RoleCheckbox is a two-state check control.
	RoleCheckbox
	// RoleSwitch is a two-state toggle following the ARIA switch pattern.
	RoleSwitch
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "button"
	case RoleCheckbox:
		return "checkbox"
	case RoleSwitch:
		return "switch"
	default:
		return ""
	}
}

// Flag contains boolean semantic state bits.
type Flag uint32

const (
	// HasCheckedState indicates the node exposes a checked/unchecked state.
	HasCheckedState Flag = 1 << iota
	// IsChecked indicates the checked state is on.
	IsChecked
	// HasEnabledState indicates the node exposes an enabled/disabled state.
	HasEnabledState
	// IsEnabled indicates the node is interactive.
	IsEnabled
	// HasRequiredState indicates the node exposes a required state.
	HasRequiredState
	// IsRequired indicates the node is required in a form.
	IsRequired
	// IsHidden excludes the node from the accessibility tree.
	IsHidden
)

// Has reports whether all bits in other are set.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Set returns a copy of f with the bits in other set.
func (f Flag) Set(other Flag) Flag {
	return f | other
}

// Clear returns a copy of f with the bits in other cleared.
func (f Flag) Clear(other Flag) Flag {
	return f &^ other
}

// Configuration describes the semantic properties of a node.
type Configuration struct {
	// Role defines the semantic role.
	Role Role
	// Flags contains boolean state flags.
	Flags Flag
	// Label is the accessible name, if any.
	Label string
}

// ApplyTo writes the configuration onto a node as role and aria-*
// attributes. It only emits attributes the configuration speaks for;
// unrelated attributes on the node are left alone.
func (c Configuration) ApplyTo(n *dom.Node) {
	if c.Role != RoleNone {
		n.SetAttr("role", c.Role.String())
	}
	if c.Label != "" {
		n.SetAttr("aria-label", c.Label)
	}
	if c.Flags.Has(HasCheckedState) {
		n.SetAttr("aria-checked", boolAttr(c.Flags.Has(IsChecked)))
	}
	if c.Flags.Has(HasRequiredState) {
		n.SetAttr("aria-required", boolAttr(c.Flags.Has(IsRequired)))
	}
	if c.Flags.Has(HasEnabledState) && !c.Flags.Has(IsEnabled) {
		n.SetAttr("aria-disabled", "true")
	}
	if c.Flags.Has(IsHidden) {
		n.SetAttr("aria-hidden", "true")
	}
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
