package ports

import "pomodial/internal/domain"

// Renderer draws the current session. The core only decides when to call it
// (the redraw scheduler), never how it draws.
type Renderer interface {
	Render(snap domain.Snapshot)
}
