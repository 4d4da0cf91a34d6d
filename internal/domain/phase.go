package domain

// Phase is the session's current mode. Exactly one phase is active at any
// instant; while Paused, the state machine separately remembers which
// countdown phase was interrupted.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFocusing
	PhasePaused
	PhaseShortBreak
	PhaseLongBreak
	PhaseSettingsMenu
)

// String returns the user-facing status label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Ready"
	case PhaseFocusing:
		return "Focusing"
	case PhasePaused:
		return "Paused"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	case PhaseSettingsMenu:
		return "Settings"
	}
	return "Unknown"
}

// IsCountdown reports whether the phase has an active countdown run.
// Paused is not a countdown phase: its run exists but is frozen.
func (p Phase) IsCountdown() bool {
	return p == PhaseFocusing || p == PhaseShortBreak || p == PhaseLongBreak
}
