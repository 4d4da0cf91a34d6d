package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomodial/internal/domain"
	"pomodial/internal/theme"
)

// renderFrame draws the whole screen for a snapshot: the dial face for
// timer phases, the menu for the settings phase.
func (m *Model) renderFrame(snap domain.Snapshot) string {
	var body string
	if snap.Phase == domain.PhaseSettingsMenu {
		body = m.renderSettingsMenu(snap)
	} else {
		body = m.renderDialFace(snap)
	}

	helpBar := theme.HelpStyle.Render(m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Center, body, helpBar)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderDialFace draws the round-display layout: status, large timer
// digits, progress, and the pomodoro counter.
func (m *Model) renderDialFace(snap domain.Snapshot) string {
	accent := theme.PhaseColor(snap.Phase)

	status := theme.StatusStyle.Foreground(accent).Render(snap.Phase.String())
	timer := theme.TimerStyle.Render(bigDigits(formatClock(snap.Remaining)))
	bar := m.progress.ViewAs(snap.Progress)
	counter := theme.CounterStyle.Render(fmt.Sprintf("Pomodoros: %d", snap.CompletedPomodoros))

	rows := []string{status, "", timer, "", bar, counter}
	if snap.Notifying {
		rows = append(rows, theme.NotifyStyle.Render("Time's up!"))
	}

	face := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 4).
		Render(face)
}

// renderSettingsMenu draws the five-row menu with the cursor and editing
// highlight.
func (m *Model) renderSettingsMenu(snap domain.Snapshot) string {
	rows := []struct {
		label string
		value string
	}{
		{"Work Duration", formatClock(snap.Settings.WorkDuration)},
		{"Short Break", formatClock(snap.Settings.ShortBreakDuration)},
		{"Long Break", formatClock(snap.Settings.LongBreakDuration)},
		{"Pomodoros/Long", fmt.Sprintf("%d", snap.Settings.PomodorosUntilLongBreak)},
		{"Back", ""},
	}

	var b strings.Builder
	b.WriteString(theme.MenuTitleStyle.Render("Settings"))
	b.WriteString("\n")
	for i, row := range rows {
		line := row.label
		if row.value != "" {
			line = fmt.Sprintf("%s: %s", row.label, row.value)
		}

		style := theme.MenuRowStyle
		cursor := "  "
		if i == snap.MenuIndex {
			cursor = "> "
			style = theme.MenuSelectedStyle
			if snap.Editing {
				cursor = "* "
				style = theme.MenuEditingStyle
			}
		}
		b.WriteString(style.Render(cursor + line))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorSubtle).
		Padding(1, 3).
		Render(b.String())
}

// formatClock renders whole seconds as MM:SS.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// digitGlyphs renders the timer digits three rows tall so the countdown
// dominates the face the way it does on the hardware display.
var digitGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "█▄█"},
	'1': {" ▄█", "  █", "  █"},
	'2': {"▀▀█", "█▀▀", "█▄▄"},
	'3': {"▀▀█", " ▀█", "▄▄█"},
	'4': {"█ █", "▀▀█", "  █"},
	'5': {"█▀▀", "▀▀█", "▄▄█"},
	'6': {"█▀▀", "█▀█", "█▄█"},
	'7': {"▀▀█", "  █", "  █"},
	'8': {"█▀█", "█▀█", "█▄█"},
	'9': {"█▀█", "▀▀█", "▄▄█"},
	':': {" ", "▀", "▀"},
}

func bigDigits(s string) string {
	var rows [3]strings.Builder
	for i, r := range s {
		glyph, ok := digitGlyphs[r]
		if !ok {
			continue
		}
		for row := 0; row < 3; row++ {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(glyph[row])
		}
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}
