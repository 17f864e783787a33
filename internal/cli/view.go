package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewBrowser ViewID = iota
	ViewDetail
	ViewTriage
	ViewStats
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that own a text input. While
// capturing, all key events bypass the global keybindings.
type inputCapturer interface {
	capturesInput() bool
}

func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if c, ok := v.(inputCapturer); ok {
		return c.capturesInput()
	}
	return v.ID() == ViewForm
}
