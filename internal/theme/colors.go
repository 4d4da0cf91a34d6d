package theme

import (
	"github.com/charmbracelet/lipgloss"

	"pomodial/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Phase accent colors, after the hardware palette: red focus face, green
// short break, cyan long break.
const (
	ColorFocus      Color = "196" // Red
	ColorShortBreak Color = "34"  // Green
	ColorLongBreak  Color = "51"  // Cyan
	ColorIdle       Color = "203" // Soft red - ready face
	ColorPaused     Color = "250" // Light gray
)

// UI semantic colors
const (
	ColorText      Color = "255" // White - timer digits
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorHighlight Color = "226" // Yellow - selected menu row
	ColorEditing   Color = "208" // Orange - value being edited
	ColorCounter   Color = "178" // Gold - pomodoro counter
)

// PhaseColor returns the accent color for a phase.
func PhaseColor(p domain.Phase) Color {
	switch p {
	case domain.PhaseFocusing:
		return ColorFocus
	case domain.PhaseShortBreak:
		return ColorShortBreak
	case domain.PhaseLongBreak:
		return ColorLongBreak
	case domain.PhasePaused:
		return ColorPaused
	case domain.PhaseSettingsMenu:
		return ColorSubtle
	}
	return ColorIdle
}
