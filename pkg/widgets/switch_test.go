package widgets_test

import (
	"testing"

	"github.com/go-drift/primitives/pkg/core"
	"github.com/go-drift/primitives/pkg/dom"
	"github.com/go-drift/primitives/pkg/events"
	"github.com/go-drift/primitives/pkg/semantics"
	primtest "github.com/go-drift/primitives/pkg/testing"
	"github.com/go-drift/primitives/pkg/theme"
	"github.com/go-drift/primitives/pkg/widgets"
)

func switchFinder() primtest.Finder {
	return primtest.ByRole(semantics.RoleSwitch)
}

func inputFinder() primtest.Finder {
	return primtest.ByTag("input")
}

func TestSwitch_RendersUncheckedByDefault(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{})

	node := tester.Find(switchFinder()).Node()
	if node.Tag != "button" {
		t.Fatalf("expected button tag, got %q", node.Tag)
	}
	if got := node.AttrOr("type", ""); got != "button" {
		t.Errorf("type = %q, want %q", got, "button")
	}
	if got := node.AttrOr("aria-checked", ""); got != "false" {
		t.Errorf("aria-checked = %q, want %q", got, "false")
	}
	if got := node.AttrOr("data-state", ""); got != "unchecked" {
		t.Errorf("data-state = %q, want %q", got, "unchecked")
	}
	if got := node.AttrOr("data-disabled", ""); got != "false" {
		t.Errorf("data-disabled = %q, want %q", got, "false")
	}
	if got := node.AttrOr("aria-required", ""); got != "false" {
		t.Errorf("aria-required = %q, want %q", got, "false")
	}
}

func TestSwitch_DefaultChecked(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{DefaultChecked: true})

	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("aria-checked", ""); got != "true" {
		t.Errorf("aria-checked = %q, want %q", got, "true")
	}
	if got := node.AttrOr("data-state", ""); got != "checked" {
		t.Errorf("data-state = %q, want %q", got, "checked")
	}
	input := tester.Find(inputFinder()).Node()
	if _, ok := input.Attr("checked"); !ok {
		t.Error("hidden input should carry checked attribute")
	}
}

func TestSwitch_TapToggles(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)

	var reported []bool
	tester.PumpWidget(widgets.Switch{
		OnCheckedChange: func(v bool) { reported = append(reported, v) },
	})

	if err := tester.Tap(switchFinder()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}

	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("data-state", ""); got != "checked" {
		t.Errorf("data-state after tap = %q, want %q", got, "checked")
	}
	input := tester.Find(inputFinder()).Node()
	if _, ok := input.Attr("checked"); !ok {
		t.Error("hidden input should be checked after tap")
	}
	if len(reported) != 1 || !reported[0] {
		t.Errorf("OnCheckedChange reported %v, want [true]", reported)
	}

	if err := tester.Tap(switchFinder()); err != nil {
		t.Fatalf("second Tap failed: %v", err)
	}
	node = tester.Find(switchFinder()).Node()
	if got := node.AttrOr("data-state", ""); got != "unchecked" {
		t.Errorf("data-state after second tap = %q, want %q", got, "unchecked")
	}
	input = tester.Find(inputFinder()).Node()
	if _, ok := input.Attr("checked"); ok {
		t.Error("hidden input should be unchecked after second tap")
	}
	if len(reported) != 2 || reported[1] {
		t.Errorf("OnCheckedChange reported %v, want [true false]", reported)
	}
}

func TestSwitch_SpaceToggles(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)

	toggled := false
	tester.PumpWidget(widgets.Switch{
		OnCheckedChange: func(bool) { toggled = true },
	})

	outcome, err := tester.PressKey(switchFinder(), events.KeySpace)
	if err != nil {
		t.Fatalf("PressKey failed: %v", err)
	}
	if outcome != events.KeyEventHandled {
		t.Errorf("Space outcome = %v, want handled", outcome)
	}
	if !toggled {
		t.Error("Space should toggle the switch")
	}
	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("data-state", ""); got != "checked" {
		t.Errorf("data-state after Space = %q, want %q", got, "checked")
	}
}

func TestSwitch_EnterDoesNotToggle(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)

	toggled := false
	tester.PumpWidget(widgets.Switch{
		OnCheckedChange: func(bool) { toggled = true },
	})

	if _, err := tester.PressKey(switchFinder(), events.KeyEnter); err != nil {
		t.Fatalf("PressKey failed: %v", err)
	}
	if toggled {
		t.Error("Enter must not toggle a switch")
	}
	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("data-state", ""); got != "unchecked" {
		t.Errorf("data-state after Enter = %q, want %q", got, "unchecked")
	}
}

func TestSwitch_Disabled(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)

	fired := false
	tester.PumpWidget(widgets.Switch{
		Disabled:        true,
		OnCheckedChange: func(bool) { fired = true },
	})

	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("data-disabled", ""); got != "true" {
		t.Errorf("data-disabled = %q, want %q", got, "true")
	}
	if got := node.AttrOr("aria-disabled", ""); got != "true" {
		t.Errorf("aria-disabled = %q, want %q", got, "true")
	}
	if !node.Disabled() {
		t.Error("button should carry the disabled attribute")
	}
	input := tester.Find(inputFinder()).Node()
	if !input.Disabled() {
		t.Error("hidden input should carry the disabled attribute")
	}

	if err := tester.Tap(switchFinder()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if fired {
		t.Error("disabled switch should not fire OnCheckedChange")
	}
	if got := tester.Find(switchFinder()).Node().AttrOr("data-state", ""); got != "unchecked" {
		t.Errorf("data-state after tap on disabled = %q, want %q", got, "unchecked")
	}

	if _, err := tester.PressKey(switchFinder(), events.KeySpace); err != nil {
		t.Fatalf("PressKey failed: %v", err)
	}
	if fired {
		t.Error("disabled switch should not respond to keys")
	}
}

func TestSwitch_Required(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{Required: true})

	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("aria-required", ""); got != "true" {
		t.Errorf("aria-required = %q, want %q", got, "true")
	}

	// Like aria-checked, the attribute announces both states.
	tester.PumpWidget(widgets.Switch{Required: false})
	node = tester.Find(switchFinder()).Node()
	if got, ok := node.Attr("aria-required"); !ok || got != "false" {
		t.Errorf("aria-required = %q (present=%t), want %q", got, ok, "false")
	}
}

func TestSwitch_Controlled(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)

	checked := core.NewObservable(false)
	var requested []bool
	tester.PumpWidget(widgets.Switch{
		Checked:         checked,
		OnCheckedChange: func(v bool) { requested = append(requested, v) },
	})

	// A tap reports intent but never mutates the external state.
	if err := tester.Tap(switchFinder()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if len(requested) != 1 || !requested[0] {
		t.Fatalf("OnCheckedChange reported %v, want [true]", requested)
	}
	if checked.Value() {
		t.Error("tap must not mutate the controlled observable")
	}
	if got := tester.Find(switchFinder()).Node().AttrOr("data-state", ""); got != "unchecked" {
		t.Errorf("data-state before owner applies = %q, want %q", got, "unchecked")
	}

	// The owner applies the change; the rendering follows.
	checked.Set(true)
	tester.Pump()
	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("data-state", ""); got != "checked" {
		t.Errorf("data-state after owner applies = %q, want %q", got, "checked")
	}
	if got := node.AttrOr("aria-checked", ""); got != "true" {
		t.Errorf("aria-checked after owner applies = %q, want %q", got, "true")
	}
	input := tester.Find(inputFinder()).Node()
	if _, ok := input.Attr("checked"); !ok {
		t.Error("hidden input should follow the controlled state")
	}
}

func TestSwitch_ControlledIgnoresDefaultChecked(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)

	checked := core.NewObservable(false)
	tester.PumpWidget(widgets.Switch{
		Checked:        checked,
		DefaultChecked: true,
	})

	if got := tester.Find(switchFinder()).Node().AttrOr("data-state", ""); got != "unchecked" {
		t.Errorf("data-state = %q, want %q (controlled state wins)", got, "unchecked")
	}
}

func TestSwitch_HiddenInput(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{Name: "notifications"})

	input := tester.Find(inputFinder()).Node()
	if got := input.AttrOr("type", ""); got != "checkbox" {
		t.Errorf("type = %q, want %q", got, "checkbox")
	}
	if got := input.AttrOr("aria-hidden", ""); got != "true" {
		t.Errorf("aria-hidden = %q, want %q", got, "true")
	}
	if got := input.AttrOr("tabindex", ""); got != "-1" {
		t.Errorf("tabindex = %q, want %q", got, "-1")
	}
	if got := input.AttrOr("name", ""); got != "notifications" {
		t.Errorf("name = %q, want %q", got, "notifications")
	}
	if got := input.AttrOr("value", ""); got != "on" {
		t.Errorf("value = %q, want default %q", got, "on")
	}
	if got := input.AttrOr("style", ""); got != dom.VisuallyHiddenStyle {
		t.Errorf("style = %q, want the visually hidden style", got)
	}
	if input.FocusTarget() {
		t.Error("hidden input must not be keyboard focusable")
	}
}

func TestSwitch_CustomValue(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{Name: "mode", Value: "dark"})

	if got := tester.Find(inputFinder()).Node().AttrOr("value", ""); got != "dark" {
		t.Errorf("input value = %q, want %q", got, "dark")
	}
	if got := tester.Find(switchFinder()).Node().AttrOr("value", ""); got != "dark" {
		t.Errorf("button value = %q, want %q", got, "dark")
	}
}

func TestSwitch_ValueConstantAcrossToggles(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{Name: "mode", Value: "dark"})

	if err := tester.Tap(switchFinder()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	input := tester.Find(inputFinder()).Node()
	if got := input.AttrOr("value", ""); got != "dark" {
		t.Errorf("value after toggle on = %q, want %q", got, "dark")
	}
	if err := tester.Tap(switchFinder()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	input = tester.Find(inputFinder()).Node()
	if got := input.AttrOr("value", ""); got != "dark" {
		t.Errorf("value after toggle off = %q, want %q", got, "dark")
	}
}

func TestSwitch_PassthroughAttributes(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{
		Attributes: []dom.Attribute{
			{Name: "id", Value: "airplane-mode"},
			{Name: "class", Value: "switch"},
		},
	})

	node := tester.Find(switchFinder()).Node()
	if got := node.AttrOr("id", ""); got != "airplane-mode" {
		t.Errorf("id = %q, want %q", got, "airplane-mode")
	}
	if got := node.AttrOr("class", ""); got != "switch" {
		t.Errorf("class = %q, want %q", got, "switch")
	}
}

func TestSwitch_ThemeClass(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	td := theme.DefaultTheme()
	td.Switch.Class = "themed-switch"
	td.Switch.ThumbClass = "themed-thumb"
	tester.SetTheme(td)
	tester.PumpWidget(widgets.Switch{Child: widgets.SwitchThumb{}})

	if got := tester.Find(switchFinder()).Node().AttrOr("class", ""); got != "themed-switch" {
		t.Errorf("switch class = %q, want %q", got, "themed-switch")
	}
	if got := tester.Find(primtest.ByTag("span")).Node().AttrOr("class", ""); got != "themed-thumb" {
		t.Errorf("thumb class = %q, want %q", got, "themed-thumb")
	}
}

func TestSwitch_ExplicitClassOverridesTheme(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	td := theme.DefaultTheme()
	td.Switch.Class = "themed-switch"
	tester.SetTheme(td)
	tester.PumpWidget(widgets.Switch{
		Attributes: []dom.Attribute{{Name: "class", Value: "custom"}},
	})

	if got := tester.Find(switchFinder()).Node().AttrOr("class", ""); got != "custom" {
		t.Errorf("class = %q, want %q", got, "custom")
	}
}

func TestSwitchThumb_RendersInsideButton(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Switch{
		Child: widgets.SwitchThumb{
			Attributes: []dom.Attribute{{Name: "class", Value: "thumb"}},
		},
	})

	button := tester.Find(switchFinder()).Node()
	children := button.Children()
	if len(children) != 1 {
		t.Fatalf("button has %d children, want 1", len(children))
	}
	thumb := children[0]
	if thumb.Tag != "span" {
		t.Errorf("thumb tag = %q, want %q", thumb.Tag, "span")
	}
	if got := thumb.AttrOr("class", ""); got != "thumb" {
		t.Errorf("thumb class = %q, want %q", got, "thumb")
	}
	if _, ok := thumb.Attr("role"); ok {
		t.Error("thumb must not announce a role")
	}
	if _, ok := thumb.Attr("aria-checked"); ok {
		t.Error("thumb must not carry state attributes")
	}
}

func TestSwitchThumb_AttributesOnly(t *testing.T) {
	tester := primtest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.SwitchThumb{
		Attributes: []dom.Attribute{{Name: "data-part", Value: "thumb"}},
	})

	node := tester.Find(primtest.ByTag("span")).Node()
	if got := node.AttrOr("data-part", ""); got != "thumb" {
		t.Errorf("data-part = %q, want %q", got, "thumb")
	}
	if len(node.Attrs()) != 1 {
		t.Errorf("thumb has %d attributes, want 1", len(node.Attrs()))
	}
}
