package polgame

import (
	"errors"
	"testing"
)

func TestEventEqual(t *testing.T) {
	box := NewBox(0, 0, 1, 1)
	a := NewEvent(EventHoverBox, map[string]any{"box": box, "pos": Vec2{1, 2}})
	b := NewEvent(EventHoverBox, map[string]any{"box": box, "pos": Vec2{1, 2}})

	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{"same type and payload", b, true},
		{"pointer to equal event", &b, true},
		{"own type code", EventHoverBox, true},
		{"other type code", EventClickBox, false},
		{"own type code as int", int(EventHoverBox), true},
		{"native code as int", 0x100, false},
		{"different payload", NewEvent(EventHoverBox, map[string]any{"box": box, "pos": Vec2{3, 4}}), false},
		{"different type", NewEvent(EventClickBox, a.Payload()), false},
		{"extra key", NewEvent(EventHoverBox, map[string]any{"box": box, "pos": Vec2{1, 2}, "x": 1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Equal(tt.other)
			if err != nil {
				t.Fatalf("Equal error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Equal(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestEventEqual_SlicePayload(t *testing.T) {
	a := NewEvent(EventUpdate, map[string]any{"list": []int{1, 2}})
	b := NewEvent(EventUpdate, map[string]any{"list": []int{1, 2}})
	if ok, err := a.Equal(b); err != nil || !ok {
		t.Errorf("Equal = %v, %v; want true, nil", ok, err)
	}
}

func TestEventEqual_ComparisonError(t *testing.T) {
	e := NewEvent(EventKeyHold, nil)
	for _, other := range []any{"KeyHold", 3.5, int64(7), nil, NewBox(0, 0, 1, 1)} {
		if _, err := e.Equal(other); !errors.Is(err, ErrComparison) {
			t.Errorf("Equal(%#v) error = %v, want ErrComparison", other, err)
		}
	}
}

func TestEventPayloadIsCopied(t *testing.T) {
	payload := map[string]any{"id": "a"}
	e := NewEvent(EventUpdate, payload)
	payload["id"] = "b"
	if e.Get("id") != "a" {
		t.Errorf("Get(id) = %v, want a", e.Get("id"))
	}
	p := e.Payload()
	p["id"] = "c"
	if e.Get("id") != "a" {
		t.Errorf("Payload() copy leaked a mutation: %v", e.Get("id"))
	}
}

func TestEventLookup(t *testing.T) {
	e := NewEvent(EventUpdate, map[string]any{"id": "tick", "frame": 0})
	if !e.Has("id") || e.Has("missing") {
		t.Error("Has reports wrong membership")
	}
	if v, ok := e.Lookup("frame"); !ok || v != 0 {
		t.Errorf("Lookup(frame) = %v, %v", v, ok)
	}
	if e.Get("missing") != nil {
		t.Error("Get(missing) should be nil")
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d, want 2", e.Len())
	}
}

func TestNewEventTypeIsUnique(t *testing.T) {
	seen := map[EventType]bool{}
	builtins := []EventType{
		EventHoverBox, EventUnhoverBox, EventClickBox, EventReleaseBox,
		EventDragBox, EventKeyHold, EventUpdate,
	}
	for _, bt := range builtins {
		if bt < UserEvent {
			t.Errorf("%s = %#x is in the native range", bt, int(bt))
		}
		seen[bt] = true
	}
	for i := 0; i < 10; i++ {
		nt := NewEventType()
		if seen[nt] {
			t.Fatalf("NewEventType returned duplicate %#x", int(nt))
		}
		seen[nt] = true
	}
	if EventClose != EventQuit {
		t.Error("EventClose should alias EventQuit")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventHoverBox.String() != "HoverBox" {
		t.Errorf("String() = %q", EventHoverBox.String())
	}
	if got := EventType(0x7).String(); got != "EventType(0x7)" {
		t.Errorf("String() = %q", got)
	}
}
