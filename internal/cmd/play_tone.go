package cmd

import (
	"fmt"

	"pomodial/internal/adapters/sound"
)

// PlayToneCmd plays a single tone, for troubleshooting the audio backend.
type PlayToneCmd struct {
	Frequency int `help:"Tone frequency in Hz" default:"3000"`
	Duration  int `help:"Tone duration in milliseconds" default:"250"`
}

// Run executes the play-tone command
func (p *PlayToneCmd) Run(cli *CLI) error {
	player := sound.NewPlayer()
	if err := player.PlayTone(p.Frequency, p.Duration); err != nil {
		return fmt.Errorf("failed to play tone: %w", err)
	}
	fmt.Println("Tone played")
	return nil
}
