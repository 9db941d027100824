package polgame

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyChar(t *testing.T) {
	tests := []struct {
		name  string
		key   ebiten.Key
		shift bool
		want  rune
	}{
		{"letter", ebiten.KeyA, false, 'a'},
		{"shifted letter", ebiten.KeyZ, true, 'Z'},
		{"digit", ebiten.KeyDigit7, false, '7'},
		{"space", ebiten.KeySpace, false, ' '},
		{"non-printable", ebiten.KeyArrowLeft, false, 0},
		{"modifier", ebiten.KeyShift, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyChar(tt.key, tt.shift); got != tt.want {
				t.Errorf("keyChar(%v, %v) = %q, want %q", tt.key, tt.shift, got, tt.want)
			}
		})
	}
}

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"A", ebiten.KeyA},
		{"a", ebiten.KeyA},
		{"Space", ebiten.KeySpace},
		{"arrowleft", ebiten.KeyArrowLeft},
		{"Digit3", ebiten.KeyDigit3},
	}
	for _, tt := range tests {
		got, ok := KeyByName(tt.name)
		if !ok || got != tt.want {
			t.Errorf("KeyByName(%q) = %v, %v; want %v", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := KeyByName("NotAKey"); ok {
		t.Error("KeyByName should reject unknown names")
	}
}

func TestMouseState(t *testing.T) {
	m := MouseState{
		Buttons:  MouseButtons{MouseButtonMiddle: true},
		Position: Vec2{4, 5},
	}
	if m.Left() || !m.Middle() || m.Right() {
		t.Errorf("buttons = %v", m.Buttons)
	}
	if !m.Buttons.Any() {
		t.Error("Any() should be true with middle pressed")
	}
	if m.Moved() {
		t.Error("Moved() should be false with zero relative motion")
	}
	m.Relative = Vec2{0, -1}
	if !m.Moved() {
		t.Error("Moved() should be true with nonzero relative motion")
	}
}

func TestLoad_NativeEventsWrapped(t *testing.T) {
	in := NewInjectedInput()
	g := newTestGame(t, in)

	in.MoveTo(3, 4)
	in.Press(MouseButtonLeft)
	in.Release(MouseButtonLeft)
	g.Load()

	want := []EventType{EventMouseMotion, EventMouseButtonDown, EventMouseButtonUp}
	events := g.Events()
	if len(events) != len(want) {
		t.Fatalf("events = %v, want types %v", events, want)
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("events[%d] = %s, want %s", i, events[i].Type, typ)
		}
	}
	if events[1].Get("button") != MouseButtonLeft || events[1].Pos() != (Vec2{3, 4}) {
		t.Errorf("button down payload = %v", events[1])
	}
	if g.Mouse().Position != (Vec2{3, 4}) {
		t.Errorf("Mouse().Position = %v", g.Mouse().Position)
	}
}
