package polgame

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureDebug(t)
	g := newTestGame(t, NewInjectedInput())
	g.Draw(NewBox(0, 0, 4, 4))
	g.Load()
	_, _ = g.Update()
	if buf.Len() != 0 {
		t.Errorf("debug output without Debug: %q", buf.String())
	}
}

func TestDebugLogEnabled(t *testing.T) {
	buf := captureDebug(t)
	in := NewInjectedInput()
	g, err := NewGame(Config{Width: 16, Height: 16, Input: in, Debug: true})
	if err != nil {
		t.Fatal(err)
	}
	defer g.Dispose()

	custom := NewEventType()
	_ = g.Listen(custom, func(Event, ...any) error { return nil })
	_ = g.Listen(custom, func(Event, ...any) error { return nil })

	g.Load()
	g.Throw(custom, nil)
	g.Draw(NewBox(0, 0, 4, 4), NewBox(4, 4, 4, 4))
	if _, err := g.Update(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "[polgame] frame 0.0") {
		t.Errorf("missing frame line: %q", out)
	}
	if !strings.Contains(out, "events: 1 | handler calls: 2 | drawables: 2") {
		t.Errorf("missing counts line: %q", out)
	}
}

func TestLogf(t *testing.T) {
	buf := captureDebug(t)
	logf("run: %v", "boom")
	if buf.String() != "[polgame] run: boom\n" {
		t.Errorf("logf output = %q", buf.String())
	}
}
