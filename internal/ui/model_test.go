package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodial/internal/domain"
	"pomodial/internal/services"
)

// fakeClock implements ports.Clock on a settable instant.
type fakeClock struct{ now int64 }

func (c *fakeClock) Now() int64 { return c.now }

func newTestModel() (*Model, *fakeClock) {
	session := services.NewSession(domain.DefaultSettings(), nil)
	clk := &fakeClock{}
	return NewModel(session, clk, 1), clk
}

func press(m *Model, key string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestModel_SpaceStartsSession(t *testing.T) {
	m, _ := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Equal(t, domain.PhaseFocusing, m.session.Phase())
}

func TestModel_DialKeysAdjustIdleDuration(t *testing.T) {
	m, _ := newTestModel()

	press(m, "j") // dial down
	assert.Equal(t, 24*60, m.session.Settings().WorkDuration)

	press(m, "k") // dial up
	assert.Equal(t, 25*60, m.session.Settings().WorkDuration)
}

func TestModel_LongPressKeyResets(t *testing.T) {
	m, _ := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.Equal(t, domain.PhaseFocusing, m.session.Phase())

	press(m, "r")
	assert.Equal(t, domain.PhaseIdle, m.session.Phase())
}

func TestModel_SettingsKeyOpensMenu(t *testing.T) {
	m, _ := newTestModel()

	press(m, "s")
	assert.Equal(t, domain.PhaseSettingsMenu, m.session.Phase())
}

func TestModel_QuitKeyQuits(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_TickCachesFrame(t *testing.T) {
	m, clk := newTestModel()

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	clk.now = 100
	m.Update(tickMsg{})
	first := m.View()
	assert.NotEmpty(t, first, "first tick renders a frame")

	// Nothing changed: the cached frame is reused untouched.
	clk.now = 200
	m.Update(tickMsg{})
	assert.Equal(t, first, m.View())
}

func TestModel_CountdownUpdatesFrame(t *testing.T) {
	m, clk := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	clk.now = 0
	m.Update(tickMsg{})
	before := m.View()

	clk.now = 5_000
	m.Update(tickMsg{})
	assert.NotEqual(t, before, m.View(), "a second elapsed, the face must change")
}
