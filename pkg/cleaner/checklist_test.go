package cleaner

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m checklistModel, key tea.KeyMsg) checklistModel {
	t.Helper()
	next, _ := m.Update(key)
	out, ok := next.(checklistModel)
	require.True(t, ok)
	return out
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyAll   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestChecklistStartsEmpty(t *testing.T) {
	m := newChecklist("pick", []string{"one", "two", "three"})
	assert.Empty(t, m.selected())
}

func TestChecklistToggleProducesSubset(t *testing.T) {
	m := newChecklist("pick", []string{"one", "two", "three"})

	m = press(t, m, keySpace)
	m = press(t, m, keyDown)
	m = press(t, m, keyDown)
	m = press(t, m, keySpace)

	assert.Equal(t, []int{0, 2}, m.selected())

	// Toggling again removes the entry.
	m = press(t, m, keySpace)
	assert.Equal(t, []int{0}, m.selected())
}

func TestChecklistCursorStaysInBounds(t *testing.T) {
	m := newChecklist("pick", []string{"one", "two"})

	m = press(t, m, keyUp)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, keyDown)
	m = press(t, m, keyDown)
	m = press(t, m, keyDown)
	assert.Equal(t, 1, m.cursor)
}

func TestChecklistToggleAll(t *testing.T) {
	m := newChecklist("pick", []string{"one", "two", "three"})

	m = press(t, m, keyAll)
	assert.Equal(t, []int{0, 1, 2}, m.selected())

	m = press(t, m, keyAll)
	assert.Empty(t, m.selected())
}

func TestChecklistAbort(t *testing.T) {
	m := newChecklist("pick", []string{"one"})
	m = press(t, m, keySpace)

	next, cmd := m.Update(keyEsc)
	out := next.(checklistModel)
	assert.True(t, out.aborted)
	assert.NotNil(t, cmd)
}

func TestChecklistViewMarksChecked(t *testing.T) {
	m := newChecklist("pick", []string{"alpha", "beta"})
	m = press(t, m, keySpace)

	view := m.View()
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "[ ]")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "beta")
}
