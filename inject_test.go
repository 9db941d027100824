package polgame

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectedInputQueue(t *testing.T) {
	in := NewInjectedInput()
	in.MoveTo(10, 20)
	in.MoveTo(10, 20) // no-op: cursor already there
	in.Press(MouseButtonRight)
	in.KeyDown(ebiten.KeyB)

	if in.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", in.Pending())
	}
	if x, y := in.CursorPosition(); x != 10 || y != 20 {
		t.Errorf("CursorPosition() = (%v, %v)", x, y)
	}
	if b := in.MouseButtons(); !b[MouseButtonRight] {
		t.Errorf("MouseButtons() = %v, want right pressed", b)
	}

	events := in.AppendEvents(nil)
	if len(events) != 3 {
		t.Fatalf("AppendEvents returned %d events", len(events))
	}
	if events[2].Type != EventKeyDown || events[2].Key != ebiten.KeyB || events[2].Char != 'b' {
		t.Errorf("key event = %+v", events[2])
	}
	if in.Pending() != 0 {
		t.Errorf("Pending() after drain = %d", in.Pending())
	}
	if more := in.AppendEvents(nil); len(more) != 0 {
		t.Errorf("second drain returned %d events", len(more))
	}
}

func TestInjectedInputShift(t *testing.T) {
	in := NewInjectedInput()
	in.KeyDown(ebiten.KeyShiftLeft)
	in.KeyDown(ebiten.KeyC)
	in.KeyUp(ebiten.KeyShiftLeft)
	in.KeyDown(ebiten.KeyD)

	events := in.AppendEvents(nil)
	if events[1].Char != 'C' {
		t.Errorf("shifted char = %q, want 'C'", events[1].Char)
	}
	if events[3].Char != 'd' {
		t.Errorf("unshifted char = %q, want 'd'", events[3].Char)
	}
}

func TestInjectedDragThroughGame(t *testing.T) {
	in := NewInjectedInput()
	g := newTestGame(t, in)
	box := NewBox(0, 0, 40, 40)
	_ = g.Expose(box)

	var moved Vec2
	_ = g.Listen(EventDragBox, func(e Event, _ ...any) error {
		m := e.Get("move").(Vec2)
		box.X += m.X
		box.Y += m.Y
		moved.X += m.X
		moved.Y += m.Y
		return nil
	})

	in.MoveTo(5, 5)
	in.Press(MouseButtonLeft)
	g.Load()
	_, _ = g.Update()

	for _, p := range []Vec2{{10, 10}, {15, 12}} {
		in.MoveTo(p.X, p.Y)
		g.Load()
		if _, err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if moved != (Vec2{10, 7}) {
		t.Errorf("total drag = %v, want {10 7}", moved)
	}
	if box.X != 10 || box.Y != 7 {
		t.Errorf("box at (%v, %v), want (10, 7)", box.X, box.Y)
	}
}
