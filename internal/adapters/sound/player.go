package sound

import (
	"fmt"

	"pomodial/internal/ports"
)

var _ ports.ToneOutput = (*Player)(nil)

// Player implements ports.ToneOutput on top of whatever tone generator the
// host has. Platform-specific implementations are in player_*.go files with
// build tags; all of them degrade to the terminal bell.
type Player struct{}

// NewPlayer creates a new tone player.
func NewPlayer() *Player {
	return &Player{}
}

// PlayTone plays a tone at frequencyHz for durationMs milliseconds, blocking
// for roughly the tone duration when the platform tool supports it.
func (p *Player) PlayTone(frequencyHz int, durationMs int) error {
	return playTone(frequencyHz, durationMs)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
