package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/contract"
)

// triageDoneMsg carries the analysis result for a customer query.
type triageDoneMsg struct {
	resp *contract.TriageResponse
	err  error
}

// triageView lets the operator paste a customer message, see the detected
// tone and the suggested speech, and jump straight to it.
type triageView struct {
	app *App

	queryInput textinput.Model
	resp       *contract.TriageResponse
	analyzing  bool
	err        error
}

func newTriageView(app *App) *triageView {
	ti := textinput.New()
	ti.Placeholder = "pega aquí el mensaje del cliente"
	ti.Prompt = "Cliente ❯ "
	ti.PromptStyle = formatter.StylePurple
	ti.CharLimit = 300
	ti.Focus()

	return &triageView{app: app, queryInput: ti}
}

func (v *triageView) ID() ViewID    { return ViewTriage }
func (v *triageView) Title() string { return "Analizar consulta" }

func (v *triageView) ShortHelp() []key.Binding {
	if v.queryInput.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analizar")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "volver")),
		}
	}
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "nueva consulta")),
	}
	if v.resp != nil && v.resp.Suggestion != nil {
		hints = append(hints, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir sugerencia")))
	}
	return hints
}

func (v *triageView) capturesInput() bool { return v.queryInput.Focused() }

func (v *triageView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *triageView) analyze() tea.Cmd {
	app := v.app
	query := v.queryInput.Value()
	return func() tea.Msg {
		resp, err := app.Triage.Analyze(context.Background(), contract.TriageRequest{Query: query})
		return triageDoneMsg{resp: resp, err: err}
	}
}

func (v *triageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case triageDoneMsg:
		v.analyzing = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.resp = msg.resp
		v.app.Session.SetTone(msg.resp.Tone)
		return v, nil

	case tea.KeyMsg:
		if v.queryInput.Focused() {
			switch msg.Type {
			case tea.KeyEnter:
				if strings.TrimSpace(v.queryInput.Value()) == "" {
					return v, nil
				}
				v.queryInput.Blur()
				v.analyzing = true
				return v, v.analyze()
			case tea.KeyEsc:
				return v, popView()
			}
			var cmd tea.Cmd
			v.queryInput, cmd = v.queryInput.Update(msg)
			return v, cmd
		}

		switch msg.String() {
		case "/":
			v.queryInput.Focus()
			return v, textinput.Blink
		case "enter":
			if v.resp != nil && v.resp.Suggestion != nil {
				return v, pushView(newDetailView(v.app, v.resp.Suggestion.BlockID))
			}
		}
	}

	if v.queryInput.Focused() {
		var cmd tea.Cmd
		v.queryInput, cmd = v.queryInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *triageView) View() string {
	var b strings.Builder
	b.WriteString("  " + v.queryInput.View() + "\n\n")

	switch {
	case v.analyzing:
		b.WriteString("  " + formatter.Dim("Analizando...") + "\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case v.resp != nil:
		for _, line := range strings.Split(strings.TrimRight(formatter.FormatTriage(v.resp), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	default:
		b.WriteString("  " + formatter.Dim("Escribe la consulta del cliente y presiona enter.") + "\n")
	}
	return b.String()
}
