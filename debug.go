package weatheroverlay

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// tickStats holds per-tick metrics. Only populated in debug mode.
type tickStats struct {
	state    string
	tick     uint64
	effects  int
	drawTime time.Duration
}

// debugf prints one prefixed line to the debug output.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOutput, "[weatheroverlay] "+format+"\n", args...)
}

// logTick prints timing stats for one tick.
func logTick(stats tickStats) {
	debugf("tick %d | state: %q | effects: %d | draw: %v",
		stats.tick, stats.state, stats.effects, stats.drawTime)
}
