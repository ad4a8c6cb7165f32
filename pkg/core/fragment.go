package core

// Fragment groups multiple widgets without introducing a node of its own.
// Children attach directly to the nearest ancestor node.
type Fragment struct {
	ChildKey any
	Children []Widget
}

func (f Fragment) Key() any { return f.ChildKey }

func (f Fragment) CreateElement() Element {
	return NewFragmentElement()
}

// FragmentElement reconciles a flat list of children by index.
type FragmentElement struct {
	elementBase
	children []Element
}

func NewFragmentElement() *FragmentElement {
	return &FragmentElement{}
}

func (e *FragmentElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.RebuildIfNeeded()
}

func (e *FragmentElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *FragmentElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *FragmentElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	fragment := e.widget.(Fragment)
	updated := make([]Element, 0, len(fragment.Children))
	for index, childWidget := range fragment.Children {
		var existing Element
		if index < len(e.children) {
			existing = e.children[index]
		}
		child := updateChild(existing, childWidget, e, e.buildOwner)
		if child != nil {
			updated = append(updated, child)
		}
	}
	for i := len(fragment.Children); i < len(e.children); i++ {
		e.children[i].Unmount()
	}
	e.children = updated
}

func (e *FragmentElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}
