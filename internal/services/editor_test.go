package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodial/internal/domain"
)

func TestEditor_NavigateWrapsCircularly(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"step down", 0, 1, 1},
		{"step up wraps to back", 0, -1, menuBack},
		{"wrap past end", menuBack, 1, 0},
		{"full cycle is identity", 2, menuEntries, 2},
		{"large negative", 1, -7, 4},
		{"zero is a no-op", 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Editor{index: tt.start}
			e.Navigate(tt.delta)
			assert.Equal(t, tt.want, e.Index())
		})
	}
}

func TestEditor_NavigateBlockedWhileEditing(t *testing.T) {
	var e Editor
	require.False(t, e.ToggleEdit())
	require.True(t, e.Editing())

	e.Navigate(2)
	assert.Equal(t, 0, e.Index(), "cursor is pinned while a field is being edited")
}

func TestEditor_ToggleEditOnBackRow(t *testing.T) {
	e := Editor{index: menuBack}

	assert.True(t, e.ToggleEdit(), "back row signals exit instead of editing")
	assert.False(t, e.Editing())
}

func TestEditor_AdjustClampsToFieldDomain(t *testing.T) {
	settings := domain.DefaultSettings()
	e := Editor{index: menuWorkDuration, editing: true}

	// 25min + 60min steps far past the ceiling.
	e.Adjust(&settings, 60)
	assert.Equal(t, domain.MaxWorkDuration, settings.WorkDuration)

	e.Adjust(&settings, -1000)
	assert.Equal(t, domain.MinWorkDuration, settings.WorkDuration)
}

func TestEditor_AdjustTargetsSelectedFieldOnly(t *testing.T) {
	settings := domain.DefaultSettings()
	e := Editor{index: menuShortBreak, editing: true}

	e.Adjust(&settings, 1)

	assert.Equal(t, 360, settings.ShortBreakDuration)
	assert.Equal(t, 1500, settings.WorkDuration)
	assert.Equal(t, 1500, settings.LongBreakDuration)
	assert.Equal(t, 4, settings.PomodorosUntilLongBreak)
}

func TestEditor_AdjustPomodoroCountStepsByOne(t *testing.T) {
	settings := domain.DefaultSettings()
	e := Editor{index: menuPomodorosUntilLong, editing: true}

	e.Adjust(&settings, 2)
	assert.Equal(t, 6, settings.PomodorosUntilLongBreak)

	e.Adjust(&settings, 100)
	assert.Equal(t, domain.MaxPomodorosUntilLongBreak, settings.PomodorosUntilLongBreak)
}

func TestEditor_AdjustNoopUnlessEditing(t *testing.T) {
	settings := domain.DefaultSettings()
	e := Editor{index: menuWorkDuration}

	e.Adjust(&settings, 5)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestEditor_ResetClearsCursorAndEditing(t *testing.T) {
	e := Editor{index: 3, editing: true}
	e.Reset()
	assert.Equal(t, 0, e.Index())
	assert.False(t, e.Editing())
}
