package widgets

import (
	"reflect"

	"github.com/go-drift/primitives/pkg/core"
)

// Entry is a single name/value pair contributed by a form field.
type Entry struct {
	Name  string
	Value string
}

// Form is a container widget that groups form fields and collects their
// submission entries.
//
// Form works with field widgets that implement the formFieldState interface,
// such as [Switch]. These fields automatically register with the nearest
// ancestor Form when built.
//
// Use [FormOf] to obtain the [FormState] from a build context, then call
// Submit() to gather the entries of all registered fields.
//
// Example:
//
//	Form{
//	    OnSubmitted: func(entries []widgets.Entry) {
//	        // entries holds name/value pairs of participating fields
//	    },
//	    Child: Switch{Name: "notifications", DefaultChecked: true},
//	}
type Form struct {
	core.StatefulBase

	// Child is the form content.
	Child core.Widget
	// OnSubmitted is called with the collected entries when Submit runs.
	OnSubmitted func([]Entry)
	// OnChanged is called when any field changes.
	OnChanged func()
}

func (f Form) CreateState() core.State {
	return &FormState{}
}

// FormState manages the state of a [Form] widget and provides methods to
// interact with all registered form fields.
//
// Obtain a FormState using [FormOf] from within a build context, or by storing
// a reference when building the form.
//
// FormState tracks a generation counter that increments on reset and field
// changes, triggering rebuilds of dependent widgets.
type FormState struct {
	element       *core.StatefulElement
	fields        []formFieldState
	generation    int
	onSubmitted   func([]Entry)
	onChanged     func()
	isInitialized bool
}

// SetElement stores the element for rebuilds.
func (s *FormState) SetElement(element *core.StatefulElement) {
	s.element = element
}

// InitState initializes the form state.
func (s *FormState) InitState() {}

// Build renders the form scope.
func (s *FormState) Build(ctx core.BuildContext) core.Widget {
	w := s.element.Widget().(Form)
	s.onSubmitted = w.OnSubmitted
	s.onChanged = w.OnChanged
	s.isInitialized = true
	return formScope{state: s, generation: s.generation, child: w.Child}
}

// SetState executes fn and schedules rebuild.
func (s *FormState) SetState(fn func()) {
	fn()
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// Dispose clears registrations.
func (s *FormState) Dispose() {
	s.fields = nil
}

// DidChangeDependencies is a no-op for FormState.
func (s *FormState) DidChangeDependencies() {}

// DidUpdateWidget is a no-op for FormState.
func (s *FormState) DidUpdateWidget(oldWidget core.StatefulWidget) {}

// RegisterField registers a field with this form. Fields are kept in
// registration order so submission entries are deterministic.
func (s *FormState) RegisterField(field formFieldState) {
	for _, existing := range s.fields {
		if existing == field {
			return
		}
	}
	s.fields = append(s.fields, field)
}

// UnregisterField unregisters a field from this form.
func (s *FormState) UnregisterField(field formFieldState) {
	for i, existing := range s.fields {
		if existing == field {
			s.fields = append(s.fields[:i], s.fields[i+1:]...)
			return
		}
	}
}

// Submit collects the entries of all participating fields in registration
// order and invokes OnSubmitted. Fields that do not participate (unnamed,
// disabled, or off) contribute nothing.
func (s *FormState) Submit() []Entry {
	entries := make([]Entry, 0, len(s.fields))
	for _, field := range s.fields {
		if entry, ok := field.FormValue(); ok {
			entries = append(entries, entry)
		}
	}
	if s.onSubmitted != nil {
		s.onSubmitted(entries)
	}
	return entries
}

// Reset resets all fields to their initial values.
func (s *FormState) Reset() {
	for _, field := range s.fields {
		field.Reset()
	}
	s.bumpGeneration()
}

// NotifyChanged informs listeners that a field changed.
func (s *FormState) NotifyChanged() {
	if s.onChanged != nil {
		s.onChanged()
	}
	s.bumpGeneration()
}

func (s *FormState) bumpGeneration() {
	if !s.isInitialized {
		return
	}
	s.SetState(func() {
		s.generation++
	})
}

// formScope exposes the FormState to descendants.
type formScope struct {
	core.InheritedBase
	state      *FormState
	generation int
	child      core.Widget
}

func (f formScope) ChildWidget() core.Widget { return f.child }

func (f formScope) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(formScope)
	if !ok {
		return true
	}
	return f.state != old.state || f.generation != old.generation
}

var formScopeType = reflect.TypeOf(formScope{})

// FormOf returns the [FormState] of the nearest ancestor [Form] widget,
// or nil if there is no Form ancestor.
//
// Form fields like [Switch] use this internally to register with their
// parent form. You can also use it to obtain the FormState for calling
// Submit or Reset.
func FormOf(ctx core.BuildContext) *FormState {
	inherited := ctx.DependOnInherited(formScopeType)
	if inherited == nil {
		return nil
	}
	if scope, ok := inherited.(formScope); ok {
		return scope.state
	}
	return nil
}

// formFieldState is implemented by field states that participate in form
// submission.
type formFieldState interface {
	// FormValue returns the field's entry and whether it participates.
	FormValue() (Entry, bool)
	// Reset restores the field to its initial value.
	Reset()
}
