package polgame

import "github.com/hajimehoshi/ebiten/v2"

// InjectedInput is an InputSource driven by code rather than hardware. It
// is used by tests and by Script to feed synthetic input to a Game. Calls
// take effect on the next Game.Load.
type InjectedInput struct {
	x, y    float64
	buttons MouseButtons
	shift   bool
	queue   []NativeEvent
}

// NewInjectedInput returns an InjectedInput with the cursor at the origin
// and no buttons pressed.
func NewInjectedInput() *InjectedInput {
	return &InjectedInput{}
}

// MoveTo moves the cursor to (x, y).
func (in *InjectedInput) MoveTo(x, y float64) {
	if x == in.x && y == in.y {
		return
	}
	in.x, in.y = x, y
	in.queue = append(in.queue, NativeEvent{Type: EventMouseMotion, X: x, Y: y})
}

// Press presses button b at the current cursor position.
func (in *InjectedInput) Press(b MouseButton) {
	in.buttons[b] = true
	in.queue = append(in.queue, NativeEvent{Type: EventMouseButtonDown, Button: b, X: in.x, Y: in.y})
}

// Release releases button b at the current cursor position.
func (in *InjectedInput) Release(b MouseButton) {
	in.buttons[b] = false
	in.queue = append(in.queue, NativeEvent{Type: EventMouseButtonUp, Button: b, X: in.x, Y: in.y})
}

// KeyDown presses key k.
func (in *InjectedInput) KeyDown(k ebiten.Key) {
	if k == ebiten.KeyShift || k == ebiten.KeyShiftLeft || k == ebiten.KeyShiftRight {
		in.shift = true
	}
	in.queue = append(in.queue, NativeEvent{Type: EventKeyDown, Key: k, Char: keyChar(k, in.shift)})
}

// KeyUp releases key k.
func (in *InjectedInput) KeyUp(k ebiten.Key) {
	if k == ebiten.KeyShift || k == ebiten.KeyShiftLeft || k == ebiten.KeyShiftRight {
		in.shift = false
	}
	in.queue = append(in.queue, NativeEvent{Type: EventKeyUp, Key: k, Char: keyChar(k, in.shift)})
}

// Quit requests the window to close.
func (in *InjectedInput) Quit() {
	in.queue = append(in.queue, NativeEvent{Type: EventQuit})
}

// Pending returns the number of queued native events.
func (in *InjectedInput) Pending() int {
	return len(in.queue)
}

func (in *InjectedInput) CursorPosition() (x, y float64) {
	return in.x, in.y
}

func (in *InjectedInput) MouseButtons() MouseButtons {
	return in.buttons
}

// AppendEvents drains the queue into buf.
func (in *InjectedInput) AppendEvents(buf []NativeEvent) []NativeEvent {
	buf = append(buf, in.queue...)
	clear(in.queue)
	in.queue = in.queue[:0]
	return buf
}
