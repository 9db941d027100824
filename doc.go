// Package polgame is a small 2D game convenience layer over [Ebitengine].
//
// It provides rectangles with borders and rounded corners ([Box]), bitmaps
// that follow a Box's size ([Image]), a typed event buffer with
// registration-order handlers ([Event], [EventHandler]) and a fixed-rate
// frame loop ([Game]) that raises hover, click and drag events for exposed
// entities.
//
// # Frame loop
//
// A frame is [Game.Load] followed by [Game.Update]. Load polls input and
// fills the event buffer; the caller then queues drawables with [Game.Draw]
// and may inspect or add events with [Game.Catch] and [Game.Throw]; Update
// dispatches the buffer to handlers, renders the draw list and advances the
// frame and cycle counters.
//
// The simplest way to drive the loop is [Game.Run], which opens a window and
// ticks at Config.Framerate:
//
//	g, err := polgame.NewGame(polgame.Config{Title: "My Game", Width: 640, Height: 480})
//	if err != nil {
//		log.Fatal(err)
//	}
//	box := polgame.NewBox(10, 10, 60, 40).SetBorder(2, polgame.ColorWhite, 8)
//	g.Expose(box)
//	g.Listen(polgame.EventDragBox, func(e polgame.Event, _ ...any) error {
//		m := e.Get("move").(polgame.Vec2)
//		box.SetPosition(box.X+m.X, box.Y+m.Y)
//		return nil
//	})
//	g.SetFrameFunc(func() error { g.Draw(box); return nil })
//	log.Fatal(g.Run())
//
// Without a window, for tests or headless tools, step the loop directly and
// feed input through an [InjectedInput] or a [Script]. Update sleeps to hold
// Config.Framerate unless Config.Unpaced is set:
//
//	for g.Load() {
//		g.Draw(box)
//		if _, err := g.Update(); err != nil {
//			return err
//		}
//	}
//
// # Pointer events
//
// For every exposed entity under the cursor Load raises [EventHoverBox].
// When a mouse button is also pressed it raises [EventClickBox], and when the
// cursor moved since the previous frame it raises [EventDragBox]. Each carries
// the entity under "box".
//
// [Ebitengine]: https://ebitengine.org
package polgame
