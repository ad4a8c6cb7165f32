package core

// UseObservable subscribes to an observable and triggers rebuilds when it changes.
// Call this once in InitState(), not in Build(). The subscription is automatically
// cleaned up when the state is disposed.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.counter = core.NewObservable(0)
//	    core.UseObservable(s, s.counter)
//	}
func UseObservable[T any](s stateBase, obs *Observable[T]) {
	base := s.state()
	unsub := obs.AddListener(func(T) {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// Managed holds a value and triggers rebuilds when it changes.
// Unlike Observable, it is tied to a specific StateBase and is not
// thread-safe; access it only while the tree is being driven.
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *myState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
// Changes to this value will automatically trigger a rebuild.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.value = transform(m.value)
	m.base.SetState(nil)
}

// UseControlled wires a value that may be either owned by an ancestor
// (controlled, via a shared Observable) or owned locally (uncontrolled,
// seeded from defaultValue). It returns a reader for the current value
// and a setter that requests a change.
//
// In controlled mode the setter never mutates the observable; it only
// invokes onChange, leaving the owner to decide whether to apply the
// change. The state subscribes to the observable so external updates
// rebuild the widget.
//
// In uncontrolled mode the setter updates the local value and then
// invokes onChange as a notification.
//
// Call this once in InitState().
func UseControlled[T any](s stateBase, controlled *Observable[T], defaultValue T, onChange func(T)) (read func() T, set func(T)) {
	base := s.state()

	if controlled != nil {
		unsub := controlled.AddListener(func(T) {
			base.SetState(nil)
		})
		base.OnDispose(unsub)
		read = controlled.Value
		set = func(value T) {
			if onChange != nil {
				onChange(value)
			}
		}
		return read, set
	}

	local := NewManaged(s, defaultValue)
	read = local.Value
	set = func(value T) {
		local.Set(value)
		if onChange != nil {
			onChange(value)
		}
	}
	return read, set
}
