package polgame

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultFramerate is the frame rate used when Config.Framerate is unset.
	DefaultFramerate = 60
	// DefaultAssetsDir is where Game.LoadImage looks for image sources.
	DefaultAssetsDir = "assets"
)

// DefaultBackground is the clear color used when Config.Background is unset.
var DefaultBackground = RGB(18, 18, 18)

// Config holds the settings for NewGame.
type Config struct {
	Title         string
	Width, Height int
	// Background is the color the frame is cleared to. Zero means
	// DefaultBackground.
	Background Color
	// Framerate is the number of frames per cycle and the target ticks per
	// second under Run. Zero means DefaultFramerate.
	Framerate int
	// AssetsDir is prefixed to sources passed to Game.LoadImage. Empty
	// means DefaultAssetsDir.
	AssetsDir string
	// Input supplies raw input. Nil means live Ebitengine input.
	Input InputSource
	// ShowFPS draws an FPS/TPS readout on top of every frame.
	ShowFPS bool
	// Debug prints per-frame timing and counts to stderr.
	Debug bool
	// ScreenshotDir is where Game.Screenshot writes PNGs. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string
	// Unpaced stops Update from sleeping to hold Framerate when the Game is
	// stepped by hand. Run is always paced by Ebitengine instead.
	Unpaced bool
}

// Game owns the frame buffer, the hit-testable entities, the draw list, the
// event buffer and the handler registry, and steps them one frame at a time.
//
// Each frame is Load (poll input and raise events) followed by Update
// (dispatch events, render the draw list, present, advance counters). Run
// drives both under Ebitengine at Config.Framerate ticks per second.
//
// A Game is not safe for concurrent use.
type Game struct {
	title         string
	width, height int
	framerate     int
	assetsDir     string
	screenshotDir string
	input         InputSource
	debug         bool
	running       bool

	// Background is the color the frame is cleared to.
	Background Color

	entities []Entity
	drawList []Drawable
	events   []Event
	pending  []Event // raised by Every, delivered by the next Load
	native   []NativeEvent
	handlers handlerRegistry
	tweens   []*Tween

	screenshots []string
	frameFunc   func() error

	mouse    MouseState
	hasMouse bool
	held     []ebiten.Key

	frame int
	cycle int
	clock frameClock

	back     *ebiten.Image // rendered by Update
	front    *ebiten.Image // last presented frame
	renderer renderer
	fps      *fpsOverlay
	stats    frameStats
}

// NewGame creates a running Game from cfg. It does not open a window; call
// Run for that.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Framerate < 0 {
		return nil, fmt.Errorf("%w: framerate %d", ErrInvalidConfig, cfg.Framerate)
	}
	g := &Game{
		title:         cfg.Title,
		width:         cfg.Width,
		height:        cfg.Height,
		framerate:     cfg.Framerate,
		assetsDir:     cfg.AssetsDir,
		screenshotDir: cfg.ScreenshotDir,
		input:         cfg.Input,
		debug:         cfg.Debug,
		running:       true,
		Background:    cfg.Background,
		handlers:      make(handlerRegistry),
	}
	if g.framerate == 0 {
		g.framerate = DefaultFramerate
	}
	if g.assetsDir == "" {
		g.assetsDir = DefaultAssetsDir
	}
	if g.screenshotDir == "" {
		g.screenshotDir = DefaultScreenshotDir
	}
	if g.input == nil {
		g.input = &ebitenInput{}
	}
	if g.Background == (Color{}) {
		g.Background = DefaultBackground
	}
	g.clock = newFrameClock(g.framerate, cfg.Unpaced)
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.back = ebiten.NewImage(g.width, g.height)
	g.front = ebiten.NewImage(g.width, g.height)
	return g, nil
}

// Load polls input and fills the event buffer for this frame: native
// events, one EventKeyHold per held key, then hover, click and drag events
// for every exposed entity under the cursor. Events raised by Every since
// the previous Load come first. Load returns false and does nothing once
// the Game has stopped running.
func (g *Game) Load() bool {
	if !g.running {
		return false
	}
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if fs, ok := g.input.(FrameStarter); ok {
		fs.StartFrame()
	}
	g.pollMouse()

	clear(g.events)
	g.events = append(g.events[:0], g.pending...)
	clear(g.pending)
	g.pending = g.pending[:0]

	g.native = g.input.AppendEvents(g.native[:0])
	for _, ne := range g.native {
		g.events = append(g.events, g.wrapNative(ne))
	}

	for _, k := range g.held {
		g.events = append(g.events, NewEvent(EventKeyHold, map[string]any{"key": k}))
	}

	g.raisePointerEvents()

	if g.debug {
		g.stats.loadTime = time.Since(t0)
	}
	return true
}

func (g *Game) pollMouse() {
	x, y := g.input.CursorPosition()
	pos := Vec2{x, y}
	var rel Vec2
	if g.hasMouse {
		rel = Vec2{pos.X - g.mouse.Position.X, pos.Y - g.mouse.Position.Y}
	}
	g.mouse = MouseState{
		Buttons:  g.input.MouseButtons(),
		Position: pos,
		Relative: rel,
	}
	g.hasMouse = true
}

// wrapNative converts a native event, tracking held keys on the way.
func (g *Game) wrapNative(ne NativeEvent) Event {
	var payload map[string]any
	switch ne.Type {
	case EventKeyDown, EventKeyUp:
		if ne.Type == EventKeyDown {
			g.holdKey(ne.Key)
		} else {
			g.releaseKey(ne.Key)
		}
		payload = map[string]any{"key": ne.Key, "unicode": charString(ne.Char)}
	case EventTextInput:
		payload = map[string]any{"unicode": charString(ne.Char)}
	case EventMouseButtonDown, EventMouseButtonUp:
		payload = map[string]any{"button": ne.Button, "pos": Vec2{ne.X, ne.Y}}
	case EventMouseMotion:
		payload = map[string]any{"pos": Vec2{ne.X, ne.Y}, "rel": g.mouse.Relative, "buttons": g.mouse.Buttons}
	case EventMouseWheel:
		payload = map[string]any{"x": ne.X, "y": ne.Y}
	}
	return NewEvent(ne.Type, payload)
}

func charString(c rune) string {
	if c == 0 {
		return ""
	}
	return string(c)
}

func (g *Game) holdKey(k ebiten.Key) {
	if !slices.Contains(g.held, k) {
		g.held = append(g.held, k)
	}
}

func (g *Game) releaseKey(k ebiten.Key) {
	if i := slices.Index(g.held, k); i >= 0 {
		g.held = slices.Delete(g.held, i, i+1)
	}
}

// raisePointerEvents tests every entity against the cursor. Hover needs
// containment, click needs hover plus a pressed button, drag needs click
// plus movement since the previous frame.
func (g *Game) raisePointerEvents() {
	m := g.mouse
	for _, ent := range g.entities {
		if !ent.Bounds().Contains(m.Position.X, m.Position.Y) {
			continue
		}
		g.events = append(g.events, NewEvent(EventHoverBox, map[string]any{
			"box": ent, "pos": m.Position,
		}))
		if !m.Buttons.Any() {
			continue
		}
		g.events = append(g.events, NewEvent(EventClickBox, map[string]any{
			"box": ent, "pos": m.Position, "click": m.Buttons,
		}))
		if !m.Moved() {
			continue
		}
		g.events = append(g.events, NewEvent(EventDragBox, map[string]any{
			"box": ent, "pos": m.Position, "move": m.Relative, "click": m.Buttons,
		}))
	}
}

// Update advances tweens, dispatches the event buffer, renders the draw
// list onto a cleared frame, presents it and advances the frame and cycle
// counters. The draw list is always empty afterwards.
//
// Events are dispatched in buffer order, each to its handlers in
// registration order. The first handler error aborts the frame: nothing is
// rendered or presented, the counters do not move and the error is
// returned. Update returns false and does nothing once the Game has
// stopped running.
func (g *Game) Update() (bool, error) {
	if !g.running {
		return false, nil
	}
	defer g.clearDrawList()

	var t0 time.Time
	if g.debug {
		t0 = time.Now()
		g.stats.eventCount = len(g.events)
		g.stats.drawCount = len(g.drawList)
	}

	g.advanceTweens()
	if err := g.dispatch(); err != nil {
		return false, err
	}

	if g.debug {
		g.stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	if err := g.render(); err != nil {
		return false, err
	}
	g.back, g.front = g.front, g.back

	if g.debug {
		g.stats.renderTime = time.Since(t0)
		g.debugLog(g.stats)
	}
	g.stats = frameStats{}
	g.tick()
	return true, nil
}

func (g *Game) advanceTweens() {
	if len(g.tweens) == 0 {
		return
	}
	dt := float32(1.0 / float64(g.framerate))
	for _, t := range g.tweens {
		t.Update(dt)
	}
	g.tweens = slices.DeleteFunc(g.tweens, func(t *Tween) bool { return t.Done })
}

// dispatch delivers the event buffer. Events appended by handlers through
// Throw are delivered in the same pass. A quit request with no EventClose
// handler stops the Game after this frame.
func (g *Game) dispatch() error {
	for i := 0; i < len(g.events); i++ {
		e := g.events[i]
		calls, err := g.handlers.dispatch(e)
		g.stats.handlerCalls += calls
		if err != nil {
			return err
		}
		if e.Type == EventClose && len(g.handlers[EventClose]) == 0 {
			g.running = false
		}
	}
	return nil
}

func (g *Game) render() error {
	g.back.Fill(g.Background.toRGBA())
	for _, d := range g.drawList {
		if err := g.renderer.draw(g.back, d); err != nil {
			return err
		}
	}
	if g.fps != nil {
		g.renderer.drawSurface(g.back, g.fps.surface(time.Now()))
	}
	return nil
}

func (g *Game) clearDrawList() {
	clear(g.drawList)
	g.drawList = g.drawList[:0]
}

// tick holds the loop to Framerate, then advances the frame counter,
// wrapping it into the cycle counter every framerate frames. Under Run the
// clock is disabled and Ebitengine's TPS paces the loop.
func (g *Game) tick() {
	g.clock.wait()
	g.frame++
	if g.frame >= g.framerate {
		g.frame = 0
		g.cycle++
	}
}

// Every reports whether the frame counter is a multiple of frames and the
// cycle counter is a multiple of cycles. Values below 1 count as 1. When it
// reports true and id is not empty, an EventUpdate {id, frame, cycle} is
// queued and delivered by the next Load, so its handlers run in the next
// frame.
func (g *Game) Every(frames, cycles int, id string) bool {
	frames, cycles = max(frames, 1), max(cycles, 1)
	if g.frame%frames != 0 || g.cycle%cycles != 0 {
		return false
	}
	if id != "" {
		g.pending = append(g.pending, NewEvent(EventUpdate, map[string]any{
			"id": id, "frame": g.frame, "cycle": g.cycle,
		}))
	}
	return true
}

// Expose registers entities for hover, click and drag testing. Nothing is
// registered if any value is nil.
func (g *Game) Expose(entities ...Entity) error {
	for i, ent := range entities {
		if isNilEntity(ent) {
			return fmt.Errorf("%w: argument %d is nil", ErrNotAnEntity, i)
		}
	}
	g.entities = append(g.entities, entities...)
	return nil
}

func isNilEntity(ent Entity) bool {
	switch v := ent.(type) {
	case nil:
		return true
	case *Box:
		return v == nil
	case *Image:
		return v == nil
	case Surface:
		return v.Image == nil
	}
	return false
}

// Entities returns the exposed entities. The returned slice must not be
// mutated.
func (g *Game) Entities() []Entity {
	return g.entities
}

// Draw queues drawables for the next Update. The draw list is cleared after
// every Update, so drawables must be queued again each frame. Values are
// validated at render time.
func (g *Game) Draw(drawables ...Drawable) {
	g.drawList = append(g.drawList, drawables...)
}

// Throw appends an event to the current buffer and returns it. Thrown
// events are visible to Catch immediately and are dispatched by the next
// Update unless the buffer is replaced by Load first.
func (g *Game) Throw(t EventType, payload map[string]any) Event {
	e := NewEvent(t, payload)
	g.events = append(g.events, e)
	return e
}

// Catch returns up to count buffered events of type t, newest first. A
// count below 1 returns every match.
func (g *Game) Catch(t EventType, count int) []Event {
	if count == 1 {
		for i := len(g.events) - 1; i >= 0; i-- {
			if g.events[i].Type == t {
				return []Event{g.events[i]}
			}
		}
		return nil
	}
	var out []Event
	for i := len(g.events) - 1; i >= 0; i-- {
		if g.events[i].Type != t {
			continue
		}
		out = append(out, g.events[i])
		if len(out) == count {
			break
		}
	}
	return out
}

// Events returns a copy of the current event buffer.
func (g *Game) Events() []Event {
	return slices.Clone(g.events)
}

// Listen registers fn, bound to args, for events of type t. Handlers run in
// registration order and cannot be removed.
func (g *Game) Listen(t EventType, fn HandlerFunc, args ...any) error {
	return g.handlers.add(t, NewEventHandler(fn, args...))
}

// Animate runs t on every Update until it is done.
func (g *Game) Animate(t *Tween) {
	g.tweens = append(g.tweens, t)
}

// Close stops the Game. The frame in progress still completes; the next
// Load and Update do nothing.
func (g *Game) Close() {
	g.running = false
}

// Running reports whether the Game has not been closed.
func (g *Game) Running() bool {
	return g.running
}

// Mouse returns the pointer snapshot taken by the last Load.
func (g *Game) Mouse() MouseState {
	return g.mouse
}

// HeldKeys returns the keys currently held, in press order.
func (g *Game) HeldKeys() []ebiten.Key {
	return slices.Clone(g.held)
}

// IsHeld reports whether k is currently held.
func (g *Game) IsHeld(k ebiten.Key) bool {
	return slices.Contains(g.held, k)
}

// Frame returns the frame counter, in [0, Framerate).
func (g *Game) Frame() int { return g.frame }

// Cycle returns the number of completed frame counter wraps.
func (g *Game) Cycle() int { return g.cycle }

// Framerate returns the number of frames per cycle.
func (g *Game) Framerate() int { return g.framerate }

// Title returns the window title.
func (g *Game) Title() string { return g.title }

// SetTitle sets the window title.
func (g *Game) SetTitle(title string) {
	g.title = title
	ebiten.SetWindowTitle(title)
}

// Width returns the frame width.
func (g *Game) Width() int { return g.width }

// Height returns the frame height.
func (g *Game) Height() int { return g.height }

// SetSize resizes the window and the frame buffers.
func (g *Game) SetSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, w, h)
	}
	g.width, g.height = w, h
	g.back.Deallocate()
	g.front.Deallocate()
	g.back = ebiten.NewImage(w, h)
	g.front = ebiten.NewImage(w, h)
	ebiten.SetWindowSize(w, h)
	return nil
}

// Screen returns the last presented frame.
func (g *Game) Screen() *ebiten.Image {
	return g.front
}

// LoadImage loads source from the assets directory and sizes it to r.
func (g *Game) LoadImage(source string, r Rect) (*Image, error) {
	img, err := LoadImage(filepath.Join(g.assetsDir, source), r)
	if err != nil {
		return nil, err
	}
	img.source = source
	return img, nil
}

// Dispose stops the Game and releases its frame buffers.
func (g *Game) Dispose() {
	g.running = false
	if g.back != nil {
		g.back.Deallocate()
		g.front.Deallocate()
		g.back, g.front = nil, nil
	}
	if g.fps != nil {
		g.fps.dispose()
		g.fps = nil
	}
	g.renderer.dispose()
}

// Run opens the window and drives Load and Update at Framerate ticks per
// second until the Game is closed or a frame fails. The Game is disposed
// when Run returns, including on error or panic. The error that ended the
// loop is reported on stderr and returned.
func (g *Game) Run() (err error) {
	defer g.Dispose()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(g.framerate)
	g.clock.disabled = true
	ebiten.SetWindowClosingHandled(true)

	if err = ebiten.RunGame(runner{g}); err != nil {
		logf("run: %v", err)
	}
	return err
}

// SetFrameFunc sets the function Run calls every tick between Load and
// Update. It is where a Game run by Run queues its drawables and reacts to
// input. An error from fn ends Run.
func (g *Game) SetFrameFunc(fn func() error) {
	g.frameFunc = fn
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	g *Game
}

func (r runner) Update() error {
	if !r.g.Load() {
		return ebiten.Termination
	}
	if r.g.frameFunc != nil {
		if err := r.g.frameFunc(); err != nil {
			return err
		}
	}
	if _, err := r.g.Update(); err != nil {
		return err
	}
	return nil
}

func (r runner) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.g.front, nil)
	r.g.flushScreenshots(screen)
}

func (r runner) Layout(_, _ int) (int, int) {
	return r.g.width, r.g.height
}
