package widgets

import (
	"github.com/go-drift/primitives/pkg/core"
	"github.com/go-drift/primitives/pkg/dom"
	"github.com/go-drift/primitives/pkg/events"
	"github.com/go-drift/primitives/pkg/semantics"
	"github.com/go-drift/primitives/pkg/theme"
)

// Switch is a two-state toggle control following the switch accessibility
// pattern. It renders a button announcing its state plus a visually hidden
// checkbox input that carries the state into form submission.
//
// Switch supports both controlled and uncontrolled usage. Provide Checked to
// control the state externally; the switch then never mutates it and only
// reports intent through OnCheckedChange:
//
//	checked := core.NewObservable(false)
//	widgets.Switch{
//	    Checked: checked,
//	    OnCheckedChange: func(v bool) { checked.Set(v) },
//	}
//
// Leave Checked nil for uncontrolled usage; the switch owns its state, seeded
// from DefaultChecked, and OnCheckedChange is a notification.
//
// The state source is chosen once when the switch mounts. Swapping between
// controlled and uncontrolled after mount is not supported.
type Switch struct {
	core.StatefulBase

	// Checked is the externally owned state. Nil means uncontrolled.
	Checked *core.Observable[bool]
	// DefaultChecked seeds the state in uncontrolled mode.
	DefaultChecked bool
	// Disabled blocks interaction and form participation.
	Disabled bool
	// Required marks the switch as required for assistive technology.
	Required bool
	// Name is the form field name. Empty means no form participation.
	Name string
	// Value is the form value submitted when on. Defaults to "on".
	Value string
	// OnCheckedChange is called with the requested state on every toggle.
	OnCheckedChange func(bool)
	// Attributes are applied to the rendered button after the built-in ones,
	// so an explicit attribute wins over a theme default.
	Attributes []dom.Attribute
	// Child renders inside the button, typically a [SwitchThumb].
	Child core.Widget
}

func (s Switch) CreateState() core.State {
	return &switchState{}
}

// submitValue returns the form value, defaulting to "on" like a native
// checkbox.
func (s Switch) submitValue() string {
	if s.Value == "" {
		return "on"
	}
	return s.Value
}

type switchState struct {
	core.StateBase
	checked        func() bool
	setChecked     func(bool)
	registeredForm *FormState
}

func (s *switchState) InitState() {
	w := s.Element().Widget().(Switch)
	s.checked, s.setChecked = core.UseControlled(s, w.Checked, w.DefaultChecked, func(value bool) {
		current := s.Element().Widget().(Switch)
		if current.OnCheckedChange != nil {
			current.OnCheckedChange(value)
		}
		if s.registeredForm != nil {
			s.registeredForm.NotifyChanged()
		}
	})
}

func (s *switchState) Dispose() {
	if s.registeredForm != nil {
		s.registeredForm.UnregisterField(s)
		s.registeredForm = nil
	}
	s.StateBase.Dispose()
}

func (s *switchState) Build(ctx core.BuildContext) core.Widget {
	w := ctx.Widget().(Switch)
	s.registerWithForm(FormOf(ctx))

	checked := s.checked()
	return core.Fragment{
		Children: []core.Widget{
			switchControl{
				checked:    checked,
				disabled:   w.Disabled,
				required:   w.Required,
				value:      w.submitValue(),
				class:      theme.ThemeOf(ctx).Switch.Class,
				attributes: w.Attributes,
				child:      w.Child,
				onActivate: s.activate,
			},
			hiddenInput{
				name:     w.Name,
				value:    w.submitValue(),
				checked:  checked,
				disabled: w.Disabled,
			},
		},
	}
}

// activate toggles the switch in response to a click or key activation.
func (s *switchState) activate() {
	w := s.Element().Widget().(Switch)
	if w.Disabled {
		return
	}
	s.setChecked(!s.checked())
}

func (s *switchState) registerWithForm(form *FormState) {
	if form == s.registeredForm {
		return
	}
	if s.registeredForm != nil {
		s.registeredForm.UnregisterField(s)
	}
	s.registeredForm = form
	if form != nil {
		form.RegisterField(s)
	}
}

// FormValue implements formFieldState. The switch contributes an entry only
// when it is named, on, and enabled, matching native checkbox submission.
func (s *switchState) FormValue() (Entry, bool) {
	w := s.Element().Widget().(Switch)
	if w.Name == "" || w.Disabled || !s.checked() {
		return Entry{}, false
	}
	return Entry{Name: w.Name, Value: w.submitValue()}, true
}

// Reset implements formFieldState. In controlled mode this only reports the
// default through OnCheckedChange; the owner decides whether to apply it.
func (s *switchState) Reset() {
	w := s.Element().Widget().(Switch)
	s.setChecked(w.DefaultChecked)
}

// switchControl renders the interactive button half of a Switch.
type switchControl struct {
	core.NodeBase
	checked    bool
	disabled   bool
	required   bool
	value      string
	class      string
	attributes []dom.Attribute
	child      core.Widget
	onActivate func()
}

func (c switchControl) ChildWidget() core.Widget { return c.child }

func (c switchControl) CreateNode(ctx core.BuildContext) *dom.Node {
	return dom.NewNode("button")
}

func (c switchControl) UpdateNode(ctx core.BuildContext, node *dom.Node) {
	node.ClearAttrs()
	node.SetAttr("type", "button")
	node.SetAttr("value", c.value)

	flags := semantics.HasCheckedState | semantics.HasEnabledState | semantics.HasRequiredState
	if c.checked {
		flags = flags.Set(semantics.IsChecked)
	}
	if !c.disabled {
		flags = flags.Set(semantics.IsEnabled)
	}
	if c.required {
		flags = flags.Set(semantics.IsRequired)
	}
	semantics.Configuration{Role: semantics.RoleSwitch, Flags: flags}.ApplyTo(node)

	node.SetAttr("data-state", checkedState(c.checked))
	node.SetAttr("data-disabled", boolString(c.disabled))
	if c.disabled {
		node.SetAttr("disabled", "")
	}
	if c.class != "" {
		node.SetAttr("class", c.class)
	}
	for _, attr := range c.attributes {
		node.SetAttr(attr.Name, attr.Value)
	}

	node.OnClick = func(events.PointerEvent) {
		c.onActivate()
	}
	// Enter must not activate a switch; only Space toggles via the
	// default button activation.
	node.OnKeyDown = func(event *events.KeyEvent) events.KeyEventResult {
		if event.Key == events.KeyEnter {
			event.PreventDefault()
			return events.KeyEventHandled
		}
		return events.KeyEventIgnored
	}
}

// hiddenInput renders the visually hidden checkbox that carries the switch
// state into native form submission.
type hiddenInput struct {
	core.NodeBase
	name     string
	value    string
	checked  bool
	disabled bool
}

func (h hiddenInput) CreateNode(ctx core.BuildContext) *dom.Node {
	return dom.NewNode("input")
}

func (h hiddenInput) UpdateNode(ctx core.BuildContext, node *dom.Node) {
	node.ClearAttrs()
	node.SetAttr("type", "checkbox")
	node.SetAttr("aria-hidden", "true")
	node.SetAttr("tabindex", "-1")
	if h.name != "" {
		node.SetAttr("name", h.name)
	}
	node.SetAttr("value", h.value)
	if h.checked {
		node.SetAttr("checked", "")
	}
	if h.disabled {
		node.SetAttr("disabled", "")
	}
	node.SetAttr("style", dom.VisuallyHiddenStyle)
}

func checkedState(checked bool) string {
	if checked {
		return "checked"
	}
	return "unchecked"
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
