package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_SettersClamp(t *testing.T) {
	tests := []struct {
		name string
		set  func(s *Settings)
		get  func(s Settings) int
		want int
	}{
		{"work below floor", func(s *Settings) { s.SetWorkDuration(10) },
			func(s Settings) int { return s.WorkDuration }, MinWorkDuration},
		{"work above ceiling", func(s *Settings) { s.SetWorkDuration(7200) },
			func(s Settings) int { return s.WorkDuration }, MaxWorkDuration},
		{"work in range", func(s *Settings) { s.SetWorkDuration(1200) },
			func(s Settings) int { return s.WorkDuration }, 1200},
		{"short break ceiling is 30min", func(s *Settings) { s.SetShortBreakDuration(3600) },
			func(s Settings) int { return s.ShortBreakDuration }, MaxShortBreakDuration},
		{"short break floor", func(s *Settings) { s.SetShortBreakDuration(0) },
			func(s Settings) int { return s.ShortBreakDuration }, MinShortBreakDuration},
		{"long break ceiling", func(s *Settings) { s.SetLongBreakDuration(100_000) },
			func(s Settings) int { return s.LongBreakDuration }, MaxLongBreakDuration},
		{"count floor", func(s *Settings) { s.SetPomodorosUntilLongBreak(-3) },
			func(s Settings) int { return s.PomodorosUntilLongBreak }, MinPomodorosUntilLongBreak},
		{"count ceiling", func(s *Settings) { s.SetPomodorosUntilLongBreak(99) },
			func(s Settings) int { return s.PomodorosUntilLongBreak }, MaxPomodorosUntilLongBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.set(&s)
			assert.Equal(t, tt.want, tt.get(s))
		})
	}
}

func TestSettings_Defaults(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 1500, s.WorkDuration)
	assert.Equal(t, 300, s.ShortBreakDuration)
	assert.Equal(t, 1500, s.LongBreakDuration)
	assert.Equal(t, 4, s.PomodorosUntilLongBreak)
}

func TestSettings_ApplyDialMinutesDerivesBreaks(t *testing.T) {
	s := DefaultSettings()

	assert.True(t, s.ApplyDialMinutes(10))
	assert.Equal(t, 600, s.WorkDuration)
	assert.Equal(t, 120, s.ShortBreakDuration)
	assert.Equal(t, 600, s.LongBreakDuration)
}

func TestSettings_ApplyDialMinutesReclampsDerived(t *testing.T) {
	s := DefaultSettings()

	// 1 minute of work derives a 12s short break, below its 60s floor.
	assert.True(t, s.ApplyDialMinutes(1))
	assert.Equal(t, 60, s.WorkDuration)
	assert.Equal(t, MinShortBreakDuration, s.ShortBreakDuration)
	assert.Equal(t, 60, s.LongBreakDuration)
}

func TestSettings_ApplyDialMinutesClampsInput(t *testing.T) {
	s := DefaultSettings()

	assert.True(t, s.ApplyDialMinutes(500))
	assert.Equal(t, MaxDialMinutes*60, s.WorkDuration)

	assert.True(t, s.ApplyDialMinutes(-9))
	assert.Equal(t, MinDialMinutes*60, s.WorkDuration)
}

func TestSettings_ApplyDialMinutesUnchangedReportsFalse(t *testing.T) {
	s := DefaultSettings()
	s.SetShortBreakDuration(600)

	// 25 is already the effective value; nothing may move, including the
	// derived fields.
	assert.False(t, s.ApplyDialMinutes(25))
	assert.Equal(t, 600, s.ShortBreakDuration)

	// Clamped to the same effective value counts as unchanged too.
	assert.False(t, s.ApplyDialMinutes(300))
	assert.Equal(t, 600, s.ShortBreakDuration)
}
