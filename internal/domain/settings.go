package domain

// Clamp domains for the configurable fields, in whole seconds (count is a
// plain integer). Applied at every mutation site, not only at creation.
const (
	MinWorkDuration = 60
	MaxWorkDuration = 3600

	MinShortBreakDuration = 60
	MaxShortBreakDuration = 1800

	MinLongBreakDuration = 60
	MaxLongBreakDuration = 3600

	MinPomodorosUntilLongBreak = 1
	MaxPomodorosUntilLongBreak = 10
)

// Idle dial shortcut adjusts the work duration in whole minutes within a
// narrower range than the settings editor allows.
const (
	MinDialMinutes = 1
	MaxDialMinutes = 25
)

// Settings holds the four configurable session parameters. Durations are in
// whole seconds. Mutate through the Set* methods so the clamp domains hold.
type Settings struct {
	WorkDuration            int
	ShortBreakDuration      int
	LongBreakDuration       int
	PomodorosUntilLongBreak int
}

// DefaultSettings returns the factory configuration: 25 minute focus,
// 5 minute short break, 25 minute long break, long break every 4 pomodoros.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:            25 * 60,
		ShortBreakDuration:      5 * 60,
		LongBreakDuration:       25 * 60,
		PomodorosUntilLongBreak: 4,
	}
}

// SetWorkDuration clamps sec to [60,3600] and stores it.
func (s *Settings) SetWorkDuration(sec int) {
	s.WorkDuration = clampInt(sec, MinWorkDuration, MaxWorkDuration)
}

// SetShortBreakDuration clamps sec to [60,1800] and stores it.
func (s *Settings) SetShortBreakDuration(sec int) {
	s.ShortBreakDuration = clampInt(sec, MinShortBreakDuration, MaxShortBreakDuration)
}

// SetLongBreakDuration clamps sec to [60,3600] and stores it.
func (s *Settings) SetLongBreakDuration(sec int) {
	s.LongBreakDuration = clampInt(sec, MinLongBreakDuration, MaxLongBreakDuration)
}

// SetPomodorosUntilLongBreak clamps n to [1,10] and stores it.
func (s *Settings) SetPomodorosUntilLongBreak(n int) {
	s.PomodorosUntilLongBreak = clampInt(n, MinPomodorosUntilLongBreak, MaxPomodorosUntilLongBreak)
}

// ApplyDialMinutes sets the work duration from the idle dial shortcut and
// auto-derives the break durations: short break is a fifth of the work
// duration, long break matches it. Derived values still pass through their
// clamp domains. Returns false when the clamped value equals the current one.
func (s *Settings) ApplyDialMinutes(minutes int) bool {
	minutes = clampInt(minutes, MinDialMinutes, MaxDialMinutes)
	if minutes*60 == s.WorkDuration {
		return false
	}
	s.SetWorkDuration(minutes * 60)
	s.SetShortBreakDuration(s.WorkDuration / 5)
	s.SetLongBreakDuration(s.WorkDuration)
	return true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
