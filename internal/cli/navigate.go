package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to reload its data.
// Sent after mutations made in a view above (forms, feedback).
type refreshViewMsg struct{}

// statusMsg carries a transient one-line status for the bottom bar.
type statusMsg struct {
	text string
}

// formDoneMsg is sent when a form view completes or is cancelled.
// The appModel handles it atomically: pop the form, then run nextCmd.
type formDoneMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// status returns a tea.Cmd that sets the transient status line.
func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
