package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pomodial/internal/domain"
)

// Settings represents the structure of ~/.pomodial/settings.json. All
// fields are optional overrides of the factory defaults; the file is read
// once at startup and never written back — runtime adjustments live only
// in memory, like on the hardware.
type Settings struct {
	WorkMinutes             *int  `json:"work_minutes,omitempty"`
	ShortBreakMinutes       *int  `json:"short_break_minutes,omitempty"`
	LongBreakMinutes        *int  `json:"long_break_minutes,omitempty"`
	PomodorosUntilLongBreak *int  `json:"pomodoros_until_long_break,omitempty"`
	Mute                    *bool `json:"mute,omitempty"`
	Debug                   *bool `json:"debug,omitempty"`
	MaxLogFiles             *int  `json:"max_log_files,omitempty"`
	RedrawIntervalMs        *int  `json:"redraw_interval_ms,omitempty"`
}

// Load reads settings from ~/.pomodial/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func Load() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFrom(filepath.Join(homeDir, ".pomodial", "settings.json"))
}

// LoadFrom reads settings from an explicit path.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SessionSettings merges the file overrides into the factory defaults.
// Every value passes through the domain clamp on its way in.
func (s *Settings) SessionSettings() domain.Settings {
	out := domain.DefaultSettings()
	if s.WorkMinutes != nil {
		out.SetWorkDuration(*s.WorkMinutes * 60)
	}
	if s.ShortBreakMinutes != nil {
		out.SetShortBreakDuration(*s.ShortBreakMinutes * 60)
	}
	if s.LongBreakMinutes != nil {
		out.SetLongBreakDuration(*s.LongBreakMinutes * 60)
	}
	if s.PomodorosUntilLongBreak != nil {
		out.SetPomodorosUntilLongBreak(*s.PomodorosUntilLongBreak)
	}
	return out
}
