package ports

// ToneOutput plays audible tones for the notification sequence.
type ToneOutput interface {
	// PlayTone plays a tone at frequencyHz for durationMs milliseconds.
	// The call may block for the tone duration; the notifier's stage machine
	// tolerates either blocking or fire-and-forget implementations because
	// it paces stages from the clock, not from the playback call.
	PlayTone(frequencyHz int, durationMs int) error
}

// ToneFunc adapts a function to the ToneOutput interface.
type ToneFunc func(frequencyHz int, durationMs int) error

// PlayTone calls f.
func (f ToneFunc) PlayTone(frequencyHz int, durationMs int) error {
	return f(frequencyHz, durationMs)
}
