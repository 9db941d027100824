package polgame

import "fmt"

// HandlerFunc is called with the triggering Event followed by the
// arguments bound at registration.
type HandlerFunc func(e Event, args ...any) error

// EventHandler binds a HandlerFunc to a fixed argument list.
type EventHandler struct {
	fn   HandlerFunc
	args []any
}

// NewEventHandler binds fn to args.
func NewEventHandler(fn HandlerFunc, args ...any) EventHandler {
	return EventHandler{fn: fn, args: args}
}

// Call invokes the handler with e prepended to the bound arguments.
func (h EventHandler) Call(e Event) error {
	return h.fn(e, h.args...)
}

// unimplementedEvents are declared event types that are never raised.
// Listening for them is refused so the mistake surfaces immediately.
var unimplementedEvents = map[EventType]bool{
	EventUnhoverBox: true,
	EventReleaseBox: true,
}

// handlerRegistry maps event types to handlers in registration order. It
// only grows.
type handlerRegistry map[EventType][]EventHandler

func (r handlerRegistry) add(t EventType, h EventHandler) error {
	if unimplementedEvents[t] {
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, t)
	}
	if h.fn == nil {
		return fmt.Errorf("polgame: nil handler for %s", t)
	}
	r[t] = append(r[t], h)
	return nil
}

// dispatch calls every handler registered for e.Type in order, stopping at
// the first error. It returns the number of handlers called.
func (r handlerRegistry) dispatch(e Event) (int, error) {
	hs := r[e.Type]
	for i, h := range hs {
		if err := h.Call(e); err != nil {
			return i + 1, fmt.Errorf("%s handler: %w", e.Type, err)
		}
	}
	return len(hs), nil
}
