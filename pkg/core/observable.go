package core

import "sync"

// Observable holds a value and notifies listeners when it changes.
// Unlike Managed, an Observable is not tied to a single state and can be
// shared between the owner of a value and the widgets rendering it.
//
// Example:
//
//	checked := core.NewObservable(false)
//	unsub := checked.AddListener(func(v bool) { log.Println("now", v) })
//	checked.Set(true)
//	unsub()
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable with the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores a new value and notifies all listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	listeners := make([]func(T), 0, len(o.listeners))
	for _, listener := range o.listeners {
		listeners = append(listeners, listener)
	}
	o.mu.Unlock()

	// Notify outside the lock so listeners can read or update the observable.
	for _, listener := range listeners {
		listener(value)
	}
}

// Update applies a transformation to the current value and notifies listeners.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	o.value = transform(o.value)
	value := o.value
	listeners := make([]func(T), 0, len(o.listeners))
	for _, listener := range o.listeners {
		listeners = append(listeners, listener)
	}
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}
}

// AddListener registers a callback invoked on every change.
// Returns an unsubscribe function.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = listener
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}
