package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"pomodial/internal/adapters/clock"
	"pomodial/internal/adapters/sound"
	"pomodial/internal/domain"
	"pomodial/internal/ports"
	"pomodial/internal/services"
	"pomodial/internal/ui"
)

// RunCmd starts the local timer TUI.
type RunCmd struct {
	Work           int  `help:"Focus duration in minutes (1-60)" default:"0"`
	ShortBreak     int  `help:"Short break duration in minutes (1-30)" default:"0"`
	LongBreak      int  `help:"Long break duration in minutes (1-60)" default:"0"`
	Pomodoros      int  `help:"Pomodoros until the long break (1-10)" default:"0"`
	Mute           bool `help:"Disable all tones"`
	RedrawInterval int  `help:"Minimum milliseconds between redraws" default:"0"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; the timer needs an interactive TTY")
	}

	settings := r.sessionSettings(cli)

	var tones ports.ToneOutput
	if !r.muted(cli) {
		tones = sound.NewPlayer()
	}

	session := services.NewSession(settings, tones)
	model := ui.NewModel(session, clock.NewMonotonic(), r.redrawIntervalMs(cli))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// sessionSettings merges flag overrides over the settings file over the
// factory defaults; every value passes through the domain clamps.
func (r *RunCmd) sessionSettings(cli *CLI) domain.Settings {
	settings := cli.Settings().SessionSettings()
	if r.Work > 0 {
		settings.SetWorkDuration(r.Work * 60)
	}
	if r.ShortBreak > 0 {
		settings.SetShortBreakDuration(r.ShortBreak * 60)
	}
	if r.LongBreak > 0 {
		settings.SetLongBreakDuration(r.LongBreak * 60)
	}
	if r.Pomodoros > 0 {
		settings.SetPomodorosUntilLongBreak(r.Pomodoros)
	}
	return settings
}

func (r *RunCmd) muted(cli *CLI) bool {
	if r.Mute {
		return true
	}
	fileMute := cli.Settings().Mute
	return fileMute != nil && *fileMute
}

func (r *RunCmd) redrawIntervalMs(cli *CLI) int64 {
	if r.RedrawInterval > 0 {
		return int64(r.RedrawInterval)
	}
	if v := cli.Settings().RedrawIntervalMs; v != nil && *v > 0 {
		return int64(*v)
	}
	return services.DefaultMinRedrawIntervalMs
}
