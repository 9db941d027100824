package polgame

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NativeEvent is one raw input occurrence reported by an InputSource.
// Which fields are meaningful depends on Type.
type NativeEvent struct {
	Type   EventType
	Key    ebiten.Key  // EventKeyDown, EventKeyUp
	Char   rune        // EventKeyDown, EventKeyUp, EventTextInput; 0 if none
	Button MouseButton // EventMouseButtonDown, EventMouseButtonUp
	X, Y   float64     // cursor position, or wheel delta for EventMouseWheel
}

// InputSource supplies the raw input a Game polls once per frame.
type InputSource interface {
	// CursorPosition returns the current cursor position.
	CursorPosition() (x, y float64)
	// MouseButtons returns the current pressed state of each button.
	MouseButtons() MouseButtons
	// AppendEvents appends the native events raised since the previous
	// call to buf and returns the extended slice.
	AppendEvents(buf []NativeEvent) []NativeEvent
}

// FrameStarter is implemented by input sources that advance once per frame.
// Game.Load calls StartFrame before polling the source.
type FrameStarter interface {
	StartFrame()
}

// MouseState is the per-frame snapshot of the pointer.
type MouseState struct {
	Buttons  MouseButtons
	Position Vec2
	// Relative is the movement since the previous frame.
	Relative Vec2
}

// Left reports whether the left button is pressed.
func (m MouseState) Left() bool { return m.Buttons[MouseButtonLeft] }

// Middle reports whether the middle button is pressed.
func (m MouseState) Middle() bool { return m.Buttons[MouseButtonMiddle] }

// Right reports whether the right button is pressed.
func (m MouseState) Right() bool { return m.Buttons[MouseButtonRight] }

// Moved reports whether the pointer moved since the previous frame.
func (m MouseState) Moved() bool { return m.Relative != (Vec2{}) }

// ebitenInput polls Ebitengine's input state. It must only be used from
// within the Ebitengine update loop.
type ebitenInput struct {
	keys    []ebiten.Key
	chars   []rune
	lastX   int
	lastY   int
	started bool
}

var mouseButtons = [...]MouseButton{MouseButtonLeft, MouseButtonMiddle, MouseButtonRight}

func (in *ebitenInput) CursorPosition() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

func (in *ebitenInput) MouseButtons() MouseButtons {
	var b MouseButtons
	for _, mb := range mouseButtons {
		b[mb] = ebiten.IsMouseButtonPressed(mb.ebiten())
	}
	return b
}

func (in *ebitenInput) AppendEvents(buf []NativeEvent) []NativeEvent {
	if ebiten.IsWindowBeingClosed() {
		buf = append(buf, NativeEvent{Type: EventQuit})
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		buf = append(buf, NativeEvent{Type: EventKeyDown, Key: k, Char: keyChar(k, shift)})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		buf = append(buf, NativeEvent{Type: EventKeyUp, Key: k, Char: keyChar(k, shift)})
	}
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, c := range in.chars {
		buf = append(buf, NativeEvent{Type: EventTextInput, Char: c})
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.ebiten()) {
			buf = append(buf, NativeEvent{Type: EventMouseButtonDown, Button: mb, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(mb.ebiten()) {
			buf = append(buf, NativeEvent{Type: EventMouseButtonUp, Button: mb, X: x, Y: y})
		}
	}
	if in.started && (cx != in.lastX || cy != in.lastY) {
		buf = append(buf, NativeEvent{Type: EventMouseMotion, X: x, Y: y})
	}
	in.lastX, in.lastY, in.started = cx, cy, true

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		buf = append(buf, NativeEvent{Type: EventMouseWheel, X: wx, Y: wy})
	}
	return buf
}

// keyChar resolves the printable character of a key, or 0 when it has none.
func keyChar(k ebiten.Key, shift bool) rune {
	name := k.String()
	switch {
	case len(name) == 1:
		r := rune(name[0])
		if shift {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	case strings.HasPrefix(name, "Digit") && len(name) == 6:
		return rune(name[5])
	case name == "Space":
		return ' '
	}
	return 0
}

// keysByName maps ebiten.Key.String names to keys, case-insensitively.
var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// KeyByName returns the key with the given name, such as "A", "Space" or
// "ArrowLeft". Matching is case-insensitive.
func KeyByName(name string) (ebiten.Key, bool) {
	k, ok := keysByName[strings.ToLower(name)]
	return k, ok
}
