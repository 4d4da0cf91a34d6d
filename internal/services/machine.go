package services

import (
	"pomodial/internal/domain"
	"pomodial/internal/logging"
	"pomodial/internal/ports"
)

// Click feedback when the idle dial changes the focus duration.
const (
	dialClickHz = 800
	dialClickMs = 30
)

// Session is the device's single mutable session: current phase, settings,
// counters, and the countdown run. All mutation flows through Apply and
// Tick; there are no ambient globals. The session is not safe for
// concurrent use — the driver loop is its single logical owner per tick.
type Session struct {
	settings domain.Settings
	tones    ports.ToneOutput

	phase            domain.Phase
	phaseBeforePause domain.Phase

	// completedPomodoros is monotonically non-decreasing for the process
	// lifetime; only a successfully completed focus run increments it.
	completedPomodoros int

	// lastFocusDuration snapshots the duration of the most recent focus
	// run, so a mid-break settings edit does not resize the focus session
	// that follows a short break.
	lastFocusDuration int

	engine   Engine
	notifier *Notifier
	editor   Editor
}

// NewSession returns an idle session seeded from settings. Tones may be nil
// to run silent.
func NewSession(settings domain.Settings, tones ports.ToneOutput) *Session {
	s := &Session{
		settings: settings,
		tones:    tones,
		phase:    domain.PhaseIdle,
		notifier: NewNotifier(tones),
	}
	s.engine.Reset(s.settings.WorkDuration)
	return s
}

// HandleInput maps a discrete input event to a command for the current
// phase and dispatches it. Returns whether the session mutated.
func (s *Session) HandleInput(ev domain.InputEvent, now int64) bool {
	return s.Apply(domain.MapInput(s.phase, s.editor.Editing(), ev), now)
}

// Apply dispatches a single command and reports whether the session
// mutated (the caller forces a redraw on true). Commands arriving during
// the notification sequence are discarded: the device is captured until
// the tones finish.
func (s *Session) Apply(cmd domain.Command, now int64) bool {
	if cmd == nil || s.notifier.Active() {
		return false
	}

	switch cmd := cmd.(type) {
	case domain.StartSession:
		if s.phase != domain.PhaseIdle {
			return false
		}
		s.phase = domain.PhaseFocusing
		s.lastFocusDuration = s.settings.WorkDuration
		s.engine.StartRun(now, s.settings.WorkDuration)
		logging.Logger.Info("Focus run started", "duration_sec", s.settings.WorkDuration)
		return true

	case domain.Pause:
		if !s.phase.IsCountdown() {
			return false
		}
		// The run itself is left untouched; resume recomputes the start
		// instant from the frozen remaining time.
		s.phaseBeforePause = s.phase
		s.phase = domain.PhasePaused
		return true

	case domain.Resume:
		if s.phase != domain.PhasePaused {
			return false
		}
		s.engine.Resume(now)
		s.phase = s.phaseBeforePause
		return true

	case domain.Reset:
		// Long-press is a no-op when already idle, and inside the settings
		// menu only Back exits.
		if s.phase == domain.PhaseIdle || s.phase == domain.PhaseSettingsMenu {
			return false
		}
		s.reset()
		return true

	case domain.Adjust:
		return s.adjust(cmd.Delta)

	case domain.Navigate:
		if s.phase != domain.PhaseSettingsMenu || s.editor.Editing() {
			return false
		}
		s.editor.Navigate(cmd.Delta)
		return true

	case domain.ToggleEdit:
		if s.phase != domain.PhaseSettingsMenu {
			return false
		}
		if back := s.editor.ToggleEdit(); back {
			s.reset()
		}
		return true

	case domain.OpenSettings:
		if s.phase == domain.PhaseSettingsMenu {
			return false
		}
		s.phase = domain.PhaseSettingsMenu
		s.editor.Reset()
		return true

	case domain.Back:
		if s.phase != domain.PhaseSettingsMenu {
			return false
		}
		s.reset()
		return true
	}
	return false
}

// adjust handles encoder rotation: field editing inside the settings menu,
// or the whole-minute focus duration dial while idle.
func (s *Session) adjust(delta int) bool {
	switch s.phase {
	case domain.PhaseSettingsMenu:
		if !s.editor.Editing() {
			return false
		}
		s.editor.Adjust(&s.settings, delta)
		return true

	case domain.PhaseIdle:
		minutes := s.settings.WorkDuration/60 + delta
		if !s.settings.ApplyDialMinutes(minutes) {
			return false
		}
		s.engine.SeedIdle(s.settings.WorkDuration)
		if s.tones != nil {
			_ = s.tones.PlayTone(dialClickHz, dialClickMs)
		}
		return true
	}
	return false
}

// Tick advances time to now: recomputes remaining, detects completion,
// drives the notification sequence, and performs the phase-completion
// transition when the sequence finishes. Returns whether render-relevant
// state changed.
func (s *Session) Tick(now int64) bool {
	if s.notifier.Active() {
		if s.notifier.Poll(now) {
			s.engine.ClearCompletion()
			s.completeSession(now)
			return true
		}
		return false
	}

	if !s.phase.IsCountdown() {
		return false
	}

	changed := s.engine.Tick(now)
	s.pollCompletion(now)
	return changed
}

// pollCompletion starts the notification sequence once the zeroed display
// has been visible for the hold interval. A completion timestamp observed
// outside a countdown phase is stale (a reset or pause outran it) and is
// left untouched.
func (s *Session) pollCompletion(now int64) {
	completedAt := s.engine.CompletedAt()
	if completedAt == 0 || !s.phase.IsCountdown() {
		return
	}
	if now-completedAt >= notifyHoldMs && !s.notifier.Active() {
		logging.Logger.Info("Run completed, starting notification", "phase", s.phase.String())
		s.notifier.Begin(now)
	}
}

// completeSession is the single point where phase changes because time ran
// out. It is invoked exactly once per completion, after the tones finish.
func (s *Session) completeSession(now int64) {
	switch s.phase {
	case domain.PhaseFocusing:
		s.completedPomodoros++
		cadence := s.settings.PomodorosUntilLongBreak
		if cadence < domain.MinPomodorosUntilLongBreak {
			// Unreachable given the settings clamp; silently computing a
			// modulo by zero here would desynchronize the cadence.
			panic("pomodoro cadence below 1: settings clamp violated")
		}
		if s.completedPomodoros%cadence == 0 {
			s.phase = domain.PhaseLongBreak
			s.engine.StartRun(now, s.settings.LongBreakDuration)
		} else {
			s.phase = domain.PhaseShortBreak
			s.engine.StartRun(now, s.settings.ShortBreakDuration)
		}
		logging.Logger.Info("Pomodoro completed",
			"total", s.completedPomodoros, "next", s.phase.String())

	case domain.PhaseShortBreak:
		duration := s.lastFocusDuration
		if duration <= 0 {
			duration = s.settings.WorkDuration
		}
		s.phase = domain.PhaseFocusing
		s.lastFocusDuration = duration
		s.engine.StartRun(now, duration)
		logging.Logger.Info("Break completed, focus run restarted", "duration_sec", duration)

	default:
		// Long break completed, or a stale trigger in a non-countdown
		// phase: degrade to the safe rest state.
		s.reset()
	}
}

func (s *Session) reset() {
	s.phase = domain.PhaseIdle
	s.engine.Reset(s.settings.WorkDuration)
}

// Snapshot returns the read-only view for rendering.
func (s *Session) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Phase:              s.phase,
		Remaining:          s.engine.Remaining(),
		Duration:           s.engine.Duration(),
		Progress:           s.engine.Progress(),
		CompletedPomodoros: s.completedPomodoros,
		Settings:           s.settings,
		MenuIndex:          s.editor.Index(),
		Editing:            s.editor.Editing(),
		Notifying:          s.notifier.Active(),
	}
}

// Phase returns the active phase.
func (s *Session) Phase() domain.Phase { return s.phase }

// CompletedPomodoros returns the uptime pomodoro counter.
func (s *Session) CompletedPomodoros() int { return s.completedPomodoros }

// Settings returns a copy of the current settings.
func (s *Session) Settings() domain.Settings { return s.settings }
