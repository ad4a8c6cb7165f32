// Package theme provides styling defaults for primitive widgets, propagated
// down the tree via an inherited widget and optionally loaded from YAML.
package theme

import (
	"reflect"

	"github.com/go-drift/primitives/pkg/core"
)

// ThemeData holds the styling defaults for every primitive.
type ThemeData struct {
	Switch SwitchThemeData `yaml:"switch"`
}

// SwitchThemeData defines default styling for Switch widgets.
type SwitchThemeData struct {
	// Class is the default class attribute applied to the switch control.
	Class string `yaml:"class,omitempty"`
	// ThumbClass is the default class attribute applied to the thumb.
	ThumbClass string `yaml:"thumbClass,omitempty"`
	// Width is the default switch width.
	Width float64 `yaml:"width,omitempty"`
	// Height is the default switch height.
	Height float64 `yaml:"height,omitempty"`
}

// DefaultTheme returns the built-in theme defaults.
func DefaultTheme() *ThemeData {
	return &ThemeData{
		Switch: SwitchThemeData{
			Width:  44,
			Height: 26,
		},
	}
}

// Copy returns an independent copy of the theme data so tests can mutate
// without affecting the original.
func (t *ThemeData) Copy() *ThemeData {
	c := *t
	return &c
}

// Theme provides theme data to descendants via InheritedWidget.
type Theme struct {
	core.InheritedBase
	Data  *ThemeData
	Child core.Widget
}

// ChildWidget returns the child widget.
func (t Theme) ChildWidget() core.Widget {
	return t.Child
}

// UpdateShouldNotify returns true if the theme data has changed.
func (t Theme) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(Theme)
	if !ok {
		return true
	}
	return t.Data != old.Data
}

var themeType = reflect.TypeOf(Theme{})

// Cached default to avoid repeated allocations when no Theme is found.
var defaultThemeData = DefaultTheme()

// ThemeOf returns the nearest ThemeData.
// Returns a cached default if no Theme is found or if Data is nil.
func ThemeOf(ctx core.BuildContext) *ThemeData {
	inherited := ctx.DependOnInherited(themeType)
	if inherited == nil {
		return defaultThemeData
	}
	if t, ok := inherited.(Theme); ok && t.Data != nil {
		return t.Data
	}
	return defaultThemeData
}

// ThemeMaybeOf returns the nearest ThemeData, or nil if not found.
func ThemeMaybeOf(ctx core.BuildContext) *ThemeData {
	inherited := ctx.DependOnInherited(themeType)
	if inherited == nil {
		return nil
	}
	if t, ok := inherited.(Theme); ok && t.Data != nil {
		return t.Data
	}
	return nil
}
