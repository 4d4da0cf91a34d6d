package services

import "pomodial/internal/ports"

// Completion notification timing: after a 1 s hold with 00:00 on screen,
// four short beeps separated by silence, then one longer closing beep.
const (
	notifyHoldMs = 1000

	notifyToneHz      = 3000
	notifyToneMs      = 250
	notifySilenceMs   = 300
	notifyFinalToneMs = 400
	notifyRepeats     = 4
)

type notifyStep struct {
	durationMs int64
	tone       bool
}

// notifySequence is the fixed tone pattern, 2.6 s end to end.
var notifySequence = buildNotifySequence()

func buildNotifySequence() []notifyStep {
	var steps []notifyStep
	for i := 0; i < notifyRepeats; i++ {
		steps = append(steps,
			notifyStep{durationMs: notifyToneMs, tone: true},
			notifyStep{durationMs: notifySilenceMs, tone: false},
		)
	}
	return append(steps, notifyStep{durationMs: notifyFinalToneMs, tone: true})
}

// Notifier runs the completion tone pattern as a short-lived stage machine
// driven by repeated ticks, so tests never need real-time sleeps. Begin is
// guarded by Active: overlapping ticks cannot start a second sequence.
type Notifier struct {
	tones  ports.ToneOutput
	active bool
	step   int
	stepAt int64 // ms, entry instant of the current step
}

// NewNotifier returns a notifier that emits tones through out.
func NewNotifier(out ports.ToneOutput) *Notifier {
	return &Notifier{tones: out}
}

// Active reports whether a notification sequence is in progress. While
// active the session discards all commands: the device is captured until
// the sequence finishes.
func (n *Notifier) Active() bool { return n.active }

// Begin starts the tone sequence at now. No-op while already active.
func (n *Notifier) Begin(now int64) {
	if n.active {
		return
	}
	n.active = true
	n.step = 0
	n.stepAt = now
	n.playStep()
}

// Poll advances the stage machine and reports whether the sequence finished
// on this tick. Catch-up is intentional: a sparse tick can cross several
// stage boundaries at once.
func (n *Notifier) Poll(now int64) bool {
	if !n.active {
		return false
	}
	for now-n.stepAt >= notifySequence[n.step].durationMs {
		n.stepAt += notifySequence[n.step].durationMs
		n.step++
		if n.step >= len(notifySequence) {
			n.active = false
			n.step = 0
			return true
		}
		n.playStep()
	}
	return false
}

func (n *Notifier) playStep() {
	step := notifySequence[n.step]
	if !step.tone || n.tones == nil {
		return
	}
	// Playback failure is not surfaced: the phase transition must happen
	// whether or not the host can produce audio.
	_ = n.tones.PlayTone(notifyToneHz, int(step.durationMs))
}
