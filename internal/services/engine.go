package services

// Engine owns the elapsed-time arithmetic for one countdown run. Remaining
// time is always re-derived from the wall-clock delta, never decremented,
// so missed ticks cannot lose time. All durations are whole seconds; all
// instants are monotonic milliseconds.
type Engine struct {
	started     bool  // run is live; instant 0 is a valid startAt
	startAt     int64 // ms
	duration    int   // seconds
	remaining   int   // seconds, derived, clamped to [0, duration]
	completedAt int64 // ms, 0 = not completed; set exactly once per run
}

// StartRun begins a fresh run of durationSec seconds at now. Any state from
// a previous run, including a pending completion, is discarded.
func (e *Engine) StartRun(now int64, durationSec int) {
	e.started = true
	e.startAt = now
	e.duration = durationSec
	e.remaining = durationSec
	e.completedAt = 0
}

// Tick recomputes remaining from the elapsed wall-clock time and reports
// whether the displayed value changed. The first tick that reaches zero
// records the completion instant; later ticks at zero do not re-trigger it.
func (e *Engine) Tick(now int64) bool {
	if !e.started {
		return false
	}

	prev := e.remaining
	elapsed := int((now - e.startAt) / 1000)
	if elapsed >= e.duration {
		e.remaining = 0
		if e.completedAt == 0 {
			e.completedAt = now
		}
	} else {
		e.remaining = e.duration - elapsed
	}
	return e.remaining != prev
}

// Resume recomputes the start instant so that exactly the frozen remaining
// time is left, regardless of how long the pause lasted.
func (e *Engine) Resume(now int64) {
	e.startAt = now - int64(e.duration-e.remaining)*1000
}

// Reset clears the run and re-seeds the display from workDuration, so the
// idle screen shows the configured focus length.
func (e *Engine) Reset(workDuration int) {
	e.started = false
	e.startAt = 0
	e.duration = workDuration
	e.remaining = workDuration
	e.completedAt = 0
}

// SeedIdle updates the displayed duration while no run is active (the idle
// dial shortcut).
func (e *Engine) SeedIdle(durationSec int) {
	e.duration = durationSec
	e.remaining = durationSec
}

// ClearCompletion forgets the completion instant once the notification
// sequence has consumed it.
func (e *Engine) ClearCompletion() {
	e.completedAt = 0
}

// Remaining returns the seconds left in the run.
func (e *Engine) Remaining() int { return e.remaining }

// Duration returns the run's full length in seconds.
func (e *Engine) Duration() int { return e.duration }

// CompletedAt returns the instant the run reached zero, or 0 if it has not.
func (e *Engine) CompletedAt() int64 { return e.completedAt }

// Progress returns the consumed fraction of the run in [0,1].
func (e *Engine) Progress() float64 {
	if e.duration <= 0 {
		return 0
	}
	return float64(e.duration-e.remaining) / float64(e.duration)
}
