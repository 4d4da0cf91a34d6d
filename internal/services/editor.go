package services

import "pomodial/internal/domain"

// Settings menu rows. Index 0..3 select editable fields, index 4 is Back.
const (
	menuWorkDuration = iota
	menuShortBreak
	menuLongBreak
	menuPomodorosUntilLong
	menuBack

	menuEntries = 5
)

// Duration fields step in whole minutes; the pomodoro count steps by one.
const durationStepSec = 60

// Editor is the settings-menu sub-mode: a cursor over five rows and a modal
// editing flag. Editing one field never touches the others; the idle dial's
// auto-derivation does not apply here.
type Editor struct {
	index   int
	editing bool
}

// Index returns the selected menu row.
func (e *Editor) Index() int { return e.index }

// Editing reports whether the selected field is being edited.
func (e *Editor) Editing() bool { return e.editing }

// Reset places the cursor on the first row with editing off, as on every
// settings-menu entry.
func (e *Editor) Reset() {
	e.index = 0
	e.editing = false
}

// Navigate moves the cursor delta rows, wrapping circularly. No-op while
// editing; the caller routes encoder rotation to Adjust in that mode.
func (e *Editor) Navigate(delta int) {
	if e.editing {
		return
	}
	step := delta % menuEntries
	e.index = (e.index + step + menuEntries) % menuEntries
}

// ToggleEdit flips editing for the selected field. On the Back row it
// reports back=true instead; leaving the menu is the machine's transition.
func (e *Editor) ToggleEdit() (back bool) {
	if e.index == menuBack {
		return true
	}
	e.editing = !e.editing
	return false
}

// Adjust changes the selected field by delta steps, clamped to the field's
// domain. No-op unless editing.
func (e *Editor) Adjust(settings *domain.Settings, delta int) {
	if !e.editing {
		return
	}
	switch e.index {
	case menuWorkDuration:
		settings.SetWorkDuration(settings.WorkDuration + delta*durationStepSec)
	case menuShortBreak:
		settings.SetShortBreakDuration(settings.ShortBreakDuration + delta*durationStepSec)
	case menuLongBreak:
		settings.SetLongBreakDuration(settings.LongBreakDuration + delta*durationStepSec)
	case menuPomodorosUntilLong:
		settings.SetPomodorosUntilLongBreak(settings.PomodorosUntilLongBreak + delta)
	}
}
