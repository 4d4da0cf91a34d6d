package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapInput(t *testing.T) {
	tests := []struct {
		name    string
		phase   Phase
		editing bool
		ev      InputEvent
		want    Command
	}{
		{"dial while idle", PhaseIdle, false, EncoderDelta{Delta: 2}, Adjust{Delta: 2}},
		{"dial while focusing", PhaseFocusing, false, EncoderDelta{Delta: 1}, nil},
		{"dial while paused", PhasePaused, false, EncoderDelta{Delta: 1}, nil},
		{"dial navigates menu", PhaseSettingsMenu, false, EncoderDelta{Delta: -1}, Navigate{Delta: -1}},
		{"dial edits field", PhaseSettingsMenu, true, EncoderDelta{Delta: 3}, Adjust{Delta: 3}},

		{"press starts from idle", PhaseIdle, false, ButtonShortPress{}, StartSession{}},
		{"press pauses focus", PhaseFocusing, false, ButtonShortPress{}, Pause{}},
		{"press pauses short break", PhaseShortBreak, false, ButtonShortPress{}, Pause{}},
		{"press pauses long break", PhaseLongBreak, false, ButtonShortPress{}, Pause{}},
		{"press resumes", PhasePaused, false, ButtonShortPress{}, Resume{}},
		{"press toggles edit in menu", PhaseSettingsMenu, false, ButtonShortPress{}, ToggleEdit{}},

		{"long press resets", PhaseFocusing, false, ButtonLongPress{}, Reset{}},
		{"long press maps even when idle", PhaseIdle, false, ButtonLongPress{}, Reset{}},

		{"gear opens settings", PhaseIdle, false, TouchSettingsGear{}, OpenSettings{}},
		{"gear from focus", PhaseFocusing, false, TouchSettingsGear{}, OpenSettings{}},
		{"gear inside settings", PhaseSettingsMenu, false, TouchSettingsGear{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapInput(tt.phase, tt.editing, tt.ev))
		})
	}
}

func TestPhase_IsCountdown(t *testing.T) {
	assert.True(t, PhaseFocusing.IsCountdown())
	assert.True(t, PhaseShortBreak.IsCountdown())
	assert.True(t, PhaseLongBreak.IsCountdown())

	assert.False(t, PhaseIdle.IsCountdown())
	assert.False(t, PhasePaused.IsCountdown())
	assert.False(t, PhaseSettingsMenu.IsCountdown())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Ready", PhaseIdle.String())
	assert.Equal(t, "Focusing", PhaseFocusing.String())
	assert.Equal(t, "Paused", PhasePaused.String())
	assert.Equal(t, "Short Break", PhaseShortBreak.String())
	assert.Equal(t, "Long Break", PhaseLongBreak.String())
	assert.Equal(t, "Settings", PhaseSettingsMenu.String())
}
