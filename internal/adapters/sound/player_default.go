//go:build !darwin && !linux && !windows

package sound

// playTone falls back to terminal bell on unsupported platforms
func playTone(frequencyHz int, durationMs int) error {
	return terminalBell()
}
