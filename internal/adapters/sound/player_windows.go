//go:build windows

package sound

import (
	"fmt"
	"os/exec"
)

// playTone generates a tone on Windows using the console beep, which takes
// an exact frequency and duration and blocks until done.
func playTone(frequencyHz int, durationMs int) error {
	beep := fmt.Sprintf("[console]::beep(%d,%d)", frequencyHz, durationMs)
	cmd := exec.Command("powershell", "-c", beep)
	if err := cmd.Run(); err == nil {
		return nil
	}

	return terminalBell()
}
