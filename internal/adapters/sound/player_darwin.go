//go:build darwin

package sound

import (
	"fmt"
	"os/exec"
)

// playTone generates a tone on macOS. sox's play synthesizes the exact
// frequency; afplay of a short system sound is the approximation when sox
// is not installed.
func playTone(frequencyHz int, durationMs int) error {
	cmd := exec.Command("play", "-nq", "synth",
		fmt.Sprintf("%.3f", float64(durationMs)/1000.0),
		"sine", fmt.Sprintf("%d", frequencyHz))
	if err := cmd.Run(); err == nil {
		return nil
	}

	soundFiles := []string{
		"/System/Library/Sounds/Tink.aiff",
		"/System/Library/Sounds/Glass.aiff",
	}
	for _, file := range soundFiles {
		if err := exec.Command("afplay", file).Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
