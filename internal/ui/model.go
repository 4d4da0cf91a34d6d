package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"pomodial/internal/domain"
	"pomodial/internal/ports"
	"pomodial/internal/services"
)

// tickInterval is how often the driver loop polls the session. Remaining
// time is derived from the clock, so a missed tick never loses time; the
// interval only bounds display latency.
const tickInterval = 50 * time.Millisecond

// tickMsg drives one poll of the session.
type tickMsg time.Time

var _ ports.Renderer = (*Model)(nil)

// Model is the Bubble Tea driver for one session: it converts key events to
// input events, polls the session, and invokes the renderer only when the
// redraw scheduler says so, keeping the last frame otherwise.
type Model struct {
	session   *services.Session
	clock     ports.Clock
	scheduler *services.RedrawScheduler

	keys     KeyMap
	help     help.Model
	progress progress.Model

	frame  string
	width  int
	height int
}

// NewModel creates the TUI driver around an existing session.
func NewModel(session *services.Session, clk ports.Clock, redrawIntervalMs int64) *Model {
	return &Model{
		session:   session,
		clock:     clk,
		scheduler: services.NewRedrawScheduler(redrawIntervalMs),
		keys:      NewKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = clampWidth(msg.Width-8, 10, 40)
		m.scheduler.Force()
		return m, nil

	case tickMsg:
		now := m.clock.Now()
		m.session.Tick(now)
		m.redrawIfDue(now)
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.scheduler.Force()
		m.redrawIfDue(m.clock.Now())
		return m, nil
	}

	var ev domain.InputEvent
	switch {
	case key.Matches(msg, m.keys.DialUp):
		ev = domain.EncoderDelta{Delta: 1}
	case key.Matches(msg, m.keys.DialDown):
		ev = domain.EncoderDelta{Delta: -1}
	case key.Matches(msg, m.keys.Press):
		ev = domain.ButtonShortPress{}
	case key.Matches(msg, m.keys.LongPress):
		ev = domain.ButtonLongPress{}
	case key.Matches(msg, m.keys.Settings):
		ev = domain.TouchSettingsGear{}
	default:
		return m, nil
	}

	now := m.clock.Now()
	if m.session.HandleInput(ev, now) {
		m.scheduler.Force()
	}
	m.redrawIfDue(now)
	return m, nil
}

// redrawIfDue regenerates the cached frame when the scheduler allows it. A
// suppressed redraw stays pending and is retried by the next tick.
func (m *Model) redrawIfDue(now int64) {
	snap := m.session.Snapshot()
	if !m.scheduler.ShouldRender(now, snap) {
		return
	}
	m.Render(snap)
	m.scheduler.MarkRendered(now, snap)
}

// Render implements ports.Renderer: it replaces the cached frame with a
// fresh one for snap. Only the redraw scheduler decides when this runs.
func (m *Model) Render(snap domain.Snapshot) {
	m.frame = m.renderFrame(snap)
}

// View returns the cached frame; rendering work happens only on scheduled
// redraws, not on every Bubble Tea view call.
func (m *Model) View() string {
	return m.frame
}

func clampWidth(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
