package engine

// Event is a multi-cast event carrying one argument. Listeners run in subscription
// order on the goroutine that calls Invoke.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires. Nil callbacks are ignored.
func (e *Event[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

// ListenerCount returns the number of registered listeners
func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
