package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppModel_StartsOnBrowser(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBrowser, m.activeView().ID())
}

func TestAppModel_PushReplacePop(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)

	model, _ := m.Update(pushViewMsg{view: newStatsView(app)})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewStats, m.activeView().ID())

	model, _ = m.Update(replaceViewMsg{view: newTriageView(app)})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewTriage, m.activeView().ID())

	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBrowser, m.activeView().ID())
}

func TestAppModel_PopNeverEmptiesStack(t *testing.T) {
	m := newAppModel(testApp(t))

	model, _ := m.Update(popViewMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_QuitKeys(t *testing.T) {
	m := newAppModel(testApp(t))

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModel_StatusLineClearsOnKey(t *testing.T) {
	m := newAppModel(testApp(t))

	model, _ := m.Update(statusMsg{text: "listo"})
	m = model.(appModel)
	assert.Equal(t, "listo", m.statusLine)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(appModel)
	assert.Empty(t, m.statusLine)
}

func TestAppModel_GlobalStatsShortcut(t *testing.T) {
	m := newAppModel(testApp(t))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewStats, m.activeView().ID())
}
