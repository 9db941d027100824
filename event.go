package polgame

import (
	"fmt"
	"maps"
	"reflect"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventType identifies a kind of Event. Native input events use the codes
// below UserEvent; custom and synthetic types are minted with NewEventType.
type EventType int

const (
	EventQuit            EventType = iota + 0x100 // window close requested
	EventKeyDown                                  // key pressed: key, unicode
	EventKeyUp                                    // key released: key, unicode
	EventTextInput                                // printable input: unicode
	EventMouseButtonDown                          // button pressed: button, pos
	EventMouseButtonUp                            // button released: button, pos
	EventMouseMotion                              // cursor moved: pos, rel, buttons
	EventMouseWheel                               // wheel scrolled: x, y
)

// UserEvent is the first code handed out by NewEventType.
const UserEvent EventType = 0x8000

var nextEventType atomic.Int64

// NewEventType returns a new event type code that does not collide with
// native codes or previously minted ones. Safe for concurrent use.
func NewEventType() EventType {
	return UserEvent + EventType(nextEventType.Add(1)-1)
}

// Synthetic event types raised by Game.Load and Game.Every.
var (
	EventHoverBox   = NewEventType() // mouse over an entity: box, pos
	EventUnhoverBox = NewEventType() // declared, never raised
	EventClickBox   = NewEventType() // button held over an entity: box, pos, click
	EventReleaseBox = NewEventType() // declared, never raised
	EventDragBox    = NewEventType() // held and moving over an entity: box, pos, move, click
	EventKeyHold    = NewEventType() // once per held key per frame: key
	EventUpdate     = NewEventType() // raised by Every: id, frame, cycle
)

// EventClose is the type of the window close request.
const EventClose = EventQuit

var eventTypeNames = map[EventType]string{
	EventQuit:            "Quit",
	EventKeyDown:         "KeyDown",
	EventKeyUp:           "KeyUp",
	EventTextInput:       "TextInput",
	EventMouseButtonDown: "MouseButtonDown",
	EventMouseButtonUp:   "MouseButtonUp",
	EventMouseMotion:     "MouseMotion",
	EventMouseWheel:      "MouseWheel",
	EventHoverBox:        "HoverBox",
	EventUnhoverBox:      "UnhoverBox",
	EventClickBox:        "ClickBox",
	EventReleaseBox:      "ReleaseBox",
	EventDragBox:         "DragBox",
	EventKeyHold:         "KeyHold",
	EventUpdate:          "Update",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%#x)", int(t))
}

// Event is a type tag plus a read-only payload. Events are values; the
// payload is copied on construction and never mutated afterwards.
type Event struct {
	Type    EventType
	payload map[string]any
}

// NewEvent creates an Event, copying payload.
func NewEvent(t EventType, payload map[string]any) Event {
	return Event{Type: t, payload: maps.Clone(payload)}
}

// Get returns the payload value for key, or nil when absent.
func (e Event) Get(key string) any {
	return e.payload[key]
}

// Lookup returns the payload value for key and whether it is present.
func (e Event) Lookup(key string) (any, bool) {
	v, ok := e.payload[key]
	return v, ok
}

// Has reports whether the payload contains key.
func (e Event) Has(key string) bool {
	_, ok := e.payload[key]
	return ok
}

// Payload returns a copy of the payload.
func (e Event) Payload() map[string]any {
	return maps.Clone(e.payload)
}

// Len returns the number of payload entries.
func (e Event) Len() int {
	return len(e.payload)
}

// Entity returns the "box" payload entry of hover, click and drag events.
func (e Event) Entity() Entity {
	ent, _ := e.payload["box"].(Entity)
	return ent
}

// Pos returns the "pos" payload entry.
func (e Event) Pos() Vec2 {
	p, _ := e.payload["pos"].(Vec2)
	return p
}

// Key returns the "key" payload entry of key events.
func (e Event) Key() ebiten.Key {
	k, _ := e.payload["key"].(ebiten.Key)
	return k
}

// Equal compares e with an Event (type and payload must match) or with a
// type code given as an EventType or a plain int (type only). Any other
// value returns ErrComparison.
func (e Event) Equal(other any) (bool, error) {
	switch o := other.(type) {
	case Event:
		return e.Type == o.Type && payloadEqual(e.payload, o.payload), nil
	case *Event:
		if o == nil {
			return false, nil
		}
		return e.Type == o.Type && payloadEqual(e.payload, o.payload), nil
	case EventType:
		return e.Type == o, nil
	case int:
		return e.Type == EventType(o), nil
	}
	return false, fmt.Errorf("%w: Event and %T", ErrComparison, other)
}

// payloadEqual compares payloads entry by entry. Values may be slices or
// other non-comparable types, so reflect.DeepEqual is used per entry.
func payloadEqual(a, b map[string]any) bool {
	return maps.EqualFunc(a, b, func(x, y any) bool {
		return reflect.DeepEqual(x, y)
	})
}

func (e Event) String() string {
	return fmt.Sprintf("Event(%s, %v)", e.Type, e.payload)
}
