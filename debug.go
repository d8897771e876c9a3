package scrollstage

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-notification metrics. Only populated when the stage
// is in debug mode.
type debugStats struct {
	scroll   float64
	progress float64
	writes   int
	pinned   bool
	evalTime time.Duration
}

// debugLog prints evaluation stats to stderr.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scrollstage] scroll: %.1f | progress: %.4f | writes: %d | pinned: %v | eval: %v\n",
		stats.scroll, stats.progress, stats.writes, stats.pinned, stats.evalTime)
}

// debugWarn prints a warning to stderr when the stage is in debug mode.
func (s *Stage) debugWarn(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[scrollstage] warning: "+format+"\n", args...)
}

// debugCheckConflicts warns about overlapping segments on the same target
// property. They are legal; the later-registered one wins.
func (s *Stage) debugCheckConflicts() {
	if !s.debug || s.timeline == nil {
		return
	}
	for _, c := range s.timeline.Conflicts() {
		s.debugWarn("segments %d and %d overlap on handle %d %q", c.First, c.Second, c.Target, c.Property)
	}
}
