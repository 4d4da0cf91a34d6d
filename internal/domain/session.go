package domain

// Snapshot is the read-only view of the session handed to the renderer.
// The core decides when to render; the renderer decides how.
type Snapshot struct {
	Phase              Phase
	Remaining          int // seconds
	Duration           int // seconds
	Progress           float64
	CompletedPomodoros int
	Settings           Settings
	MenuIndex          int
	Editing            bool
	Notifying          bool
}
