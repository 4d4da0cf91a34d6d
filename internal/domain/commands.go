package domain

// Command is the closed set of session mutations. The state machine consumes
// commands through a single dispatch; input devices never call phase actions
// directly.
type Command interface{ isCommand() }

// StartSession begins a focus run from Idle.
type StartSession struct{}

// Pause freezes the active countdown.
type Pause struct{}

// Resume continues the countdown interrupted by Pause.
type Resume struct{}

// Reset abandons the current run and returns to Idle.
type Reset struct{}

// Adjust changes the selected value by Delta steps: the idle dial shortcut,
// or the field being edited in the settings menu.
type Adjust struct{ Delta int }

// Navigate moves the settings menu cursor by Delta rows, wrapping.
type Navigate struct{ Delta int }

// ToggleEdit enters or leaves value editing for the selected settings field.
type ToggleEdit struct{}

// OpenSettings enters the settings menu.
type OpenSettings struct{}

// Back leaves the settings menu and resets the session to Idle.
type Back struct{}

func (StartSession) isCommand() {}
func (Pause) isCommand()        {}
func (Resume) isCommand()       {}
func (Reset) isCommand()        {}
func (Adjust) isCommand()       {}
func (Navigate) isCommand()     {}
func (ToggleEdit) isCommand()   {}
func (OpenSettings) isCommand() {}
func (Back) isCommand()         {}

// InputEvent is a discrete, already-debounced event from the input source.
type InputEvent interface{ isInputEvent() }

// EncoderDelta is a rotary step; positive is clockwise.
type EncoderDelta struct{ Delta int }

// ButtonShortPress is a press released before the long-press threshold.
type ButtonShortPress struct{}

// ButtonLongPress is a press held past the long-press threshold. The input
// source guarantees short and long press are mutually exclusive outcomes of
// one press-release cycle.
type ButtonLongPress struct{}

// TouchSettingsGear is a touch inside the settings gear region.
type TouchSettingsGear struct{}

func (EncoderDelta) isInputEvent()      {}
func (ButtonShortPress) isInputEvent()  {}
func (ButtonLongPress) isInputEvent()   {}
func (TouchSettingsGear) isInputEvent() {}

// MapInput translates an input event into a command given the current phase
// and settings-editing flag. It returns nil when the event has no meaning in
// the current phase (e.g. encoder rotation while a countdown is running).
func MapInput(phase Phase, editing bool, ev InputEvent) Command {
	switch ev := ev.(type) {
	case EncoderDelta:
		switch {
		case phase == PhaseSettingsMenu && editing:
			return Adjust{Delta: ev.Delta}
		case phase == PhaseSettingsMenu:
			return Navigate{Delta: ev.Delta}
		case phase == PhaseIdle:
			return Adjust{Delta: ev.Delta}
		}
		return nil
	case ButtonShortPress:
		switch phase {
		case PhaseIdle:
			return StartSession{}
		case PhaseFocusing, PhaseShortBreak, PhaseLongBreak:
			return Pause{}
		case PhasePaused:
			return Resume{}
		case PhaseSettingsMenu:
			return ToggleEdit{}
		}
		return nil
	case ButtonLongPress:
		// The machine itself rejects Reset in Idle and SettingsMenu.
		return Reset{}
	case TouchSettingsGear:
		if phase == PhaseSettingsMenu {
			return nil
		}
		return OpenSettings{}
	}
	return nil
}
