//go:build linux

package sound

import (
	"fmt"
	"os/exec"
)

// playTone generates a tone on Linux using beep (pcspkr) or sox's play,
// both of which block for the tone duration.
func playTone(frequencyHz int, durationMs int) error {
	candidates := [][]string{
		{"beep", "-f", fmt.Sprintf("%d", frequencyHz), "-l", fmt.Sprintf("%d", durationMs)},
		{"play", "-nq", "synth", fmt.Sprintf("%.3f", float64(durationMs)/1000.0),
			"sine", fmt.Sprintf("%d", frequencyHz)},
	}

	for _, candidate := range candidates {
		cmd := exec.Command(candidate[0], candidate[1:]...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
