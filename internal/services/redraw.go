package services

import "pomodial/internal/domain"

// DefaultMinRedrawIntervalMs bounds rendering cost: even a due redraw waits
// until this much time has passed since the last render, retrying on the
// next tick rather than dropping.
const DefaultMinRedrawIntervalMs = 16

// RedrawScheduler decides once per tick whether the external render call is
// warranted, from session-state deltas against a cache of what was last
// shown. It owns that cache exclusively.
type RedrawScheduler struct {
	minIntervalMs int64

	lastPhase     domain.Phase
	lastRemaining int
	lastProgress  float64
	lastRenderAt  int64
	rendered      bool

	force bool
}

// NewRedrawScheduler returns a scheduler with the given minimum interval in
// milliseconds (<=0 selects the default). The first render is always due.
func NewRedrawScheduler(minIntervalMs int64) *RedrawScheduler {
	if minIntervalMs <= 0 {
		minIntervalMs = DefaultMinRedrawIntervalMs
	}
	return &RedrawScheduler{
		minIntervalMs: minIntervalMs,
		force:         true,
	}
}

// Force raises the redraw flag; input and transition events use this so the
// next tick renders even if phase and remaining are unchanged.
func (r *RedrawScheduler) Force() { r.force = true }

// ShouldRender reports whether the renderer must be invoked for snap at now.
// A true result must be followed by MarkRendered once the render happened.
func (r *RedrawScheduler) ShouldRender(now int64, snap domain.Snapshot) bool {
	due := r.force ||
		snap.Phase != r.lastPhase ||
		snap.Remaining != r.lastRemaining
	if !due {
		return false
	}
	if r.rendered && now-r.lastRenderAt < r.minIntervalMs {
		// Suppressed, not dropped: the delta (or force flag) is still
		// pending and will be picked up on a later tick.
		return false
	}
	return true
}

// MarkRendered snapshots what was just drawn and clears the force flag.
func (r *RedrawScheduler) MarkRendered(now int64, snap domain.Snapshot) {
	r.lastPhase = snap.Phase
	r.lastRemaining = snap.Remaining
	r.lastProgress = snap.Progress
	r.lastRenderAt = now
	r.rendered = true
	r.force = false
}
