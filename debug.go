package polgame

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives diagnostics. Tests may redirect it.
var debugOutput io.Writer = os.Stderr

// frameStats holds per-frame timing and counts. Only populated when
// Config.Debug is set.
type frameStats struct {
	loadTime     time.Duration
	dispatchTime time.Duration
	renderTime   time.Duration
	eventCount   int
	handlerCalls int
	drawCount    int
}

// debugLog prints frame stats to debugOutput.
func (g *Game) debugLog(stats frameStats) {
	if !g.debug {
		return
	}
	total := stats.loadTime + stats.dispatchTime + stats.renderTime
	_, _ = fmt.Fprintf(debugOutput,
		"[polgame] frame %d.%d | load: %v | dispatch: %v | render: %v | total: %v\n",
		g.cycle, g.frame, stats.loadTime, stats.dispatchTime, stats.renderTime, total)
	_, _ = fmt.Fprintf(debugOutput,
		"[polgame] events: %d | handler calls: %d | drawables: %d\n",
		stats.eventCount, stats.handlerCalls, stats.drawCount)
}

// logf reports a diagnostic regardless of debug mode.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOutput, "[polgame] "+format+"\n", args...)
}
