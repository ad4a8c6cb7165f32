package core

import "reflect"

// InheritedElement tracks the elements that depend on its widget and
// notifies them when an update reports a meaningful change.
type InheritedElement struct {
	elementBase
	child      Element
	dependents map[Element]struct{}
}

func NewInheritedElement() *InheritedElement {
	return &InheritedElement{dependents: make(map[Element]struct{})}
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Update(newWidget Widget) {
	oldWidget := e.widget.(InheritedWidget)
	e.widget = newWidget
	if newWidget.(InheritedWidget).UpdateShouldNotify(oldWidget) {
		for dependent := range e.dependents {
			e.notifyDependent(dependent)
		}
	}
	e.MarkNeedsBuild()
}

func (e *InheritedElement) Unmount() {
	e.mounted = false
	e.dependents = nil
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *InheritedElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	childWidget := e.widget.(InheritedWidget).ChildWidget()
	e.child = updateChild(e.child, childWidget, e, e.buildOwner)
}

func (e *InheritedElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// AddDependent registers an element for change notifications. Dependents
// are dropped when they unmount; the map holds no cleanup hook, so a
// stale entry is skipped at notify time instead.
func (e *InheritedElement) AddDependent(dependent Element) {
	if e.dependents == nil {
		e.dependents = make(map[Element]struct{})
	}
	e.dependents[dependent] = struct{}{}
}

func (e *InheritedElement) notifyDependent(dependent Element) {
	if stateful, ok := dependent.(*StatefulElement); ok {
		if stateful.isMounted() && stateful.state != nil {
			stateful.state.DidChangeDependencies()
		}
	}
	dependent.MarkNeedsBuild()
}

// dependOnInheritedImpl walks up the element tree looking for an
// InheritedElement whose widget matches inheritedType, registers the
// caller as a dependent, and returns the widget.
func dependOnInheritedImpl(from Element, inheritedType reflect.Type) any {
	if from == nil {
		return nil
	}
	var current Element
	if base, ok := from.(interface{ parentElement() Element }); ok {
		current = base.parentElement()
	}
	for current != nil {
		if inherited, ok := current.(*InheritedElement); ok {
			widgetType := reflect.TypeOf(inherited.widget)
			if widgetType == inheritedType ||
				(widgetType.Kind() == reflect.Pointer && widgetType.Elem() == inheritedType) {
				inherited.AddDependent(from)
				return inherited.widget
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			current = nil
		}
	}
	return nil
}
