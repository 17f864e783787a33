package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/service"
	"github.com/enriquemv/speechdesk/internal/template"
)

// detailLoadedMsg signals that a speech and its next step have been loaded.
type detailLoadedMsg struct {
	speech *domain.Speech
	next   *domain.Speech
	err    error
}

// detailView shows one speech with live placeholder filling, the internal
// recommendation, and the action row (use, feedback, edit, flag).
type detailView struct {
	app     *App
	blockID string

	speech *domain.Speech
	next   *domain.Speech

	names    []string // placeholder names in body order
	inputs   []textinput.Model
	focusIdx int
	filling  bool

	loading bool
	err     error
}

func newDetailView(app *App, blockID string) *detailView {
	return &detailView{
		app:     app,
		blockID: blockID,
		loading: true,
	}
}

func (v *detailView) ID() ViewID { return ViewDetail }
func (v *detailView) Title() string {
	if v.speech != nil {
		return v.speech.Title
	}
	return v.blockID
}

func (v *detailView) ShortHelp() []key.Binding {
	if v.filling {
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "siguiente campo")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "listo")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "terminar")),
		}
	}
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "registrar uso")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "funcionó 👍")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "no funcionó 👎")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "marcar revisión")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorito")),
	}
	if len(v.inputs) > 0 {
		hints = append([]key.Binding{
			key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "completar campos")),
		}, hints...)
	}
	if v.next != nil {
		hints = append(hints, key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "siguiente paso")))
	}
	return hints
}

func (v *detailView) capturesInput() bool { return v.filling }

func (v *detailView) Init() tea.Cmd {
	return v.load()
}

func (v *detailView) load() tea.Cmd {
	app := v.app
	blockID := v.blockID
	return func() tea.Msg {
		ctx := context.Background()
		sp, err := app.Catalog.Get(ctx, blockID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		next, err := app.Catalog.NextStep(ctx, blockID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		return detailLoadedMsg{speech: sp, next: next}
	}
}

// buildInputs creates one text input per placeholder occurrence,
// restoring any values typed earlier in the session.
func (v *detailView) buildInputs() {
	v.names = template.Extract(v.speech.Body)
	v.inputs = make([]textinput.Model, len(v.names))
	saved := v.app.Session.PlaceholderValues[v.blockID]
	for i, name := range v.names {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = name
		ti.CharLimit = 80
		if i < len(saved) {
			ti.SetValue(saved[i])
		}
		v.inputs[i] = ti
	}
}

// values returns the current placeholder values in body order.
func (v *detailView) values() []string {
	out := make([]string, len(v.inputs))
	for i := range v.inputs {
		out[i] = v.inputs[i].Value()
	}
	return out
}

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.speech = msg.speech
		v.next = msg.next
		v.app.Session.Select(v.blockID)
		v.app.Session.Visit(v.blockID)
		v.buildInputs()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		if v.speech == nil {
			return v, nil
		}
		if v.filling {
			return v.updateFilling(msg)
		}

		switch msg.String() {
		case "i", "enter":
			if len(v.inputs) > 0 {
				v.filling = true
				v.focusIdx = 0
				return v, v.inputs[0].Focus()
			}
		case "u":
			return v, v.recordUse()
		case "g":
			return v, v.recordFeedback(domain.PolarityPositive, "")
		case "b":
			return v, pushView(v.negativeFeedbackForm())
		case "e":
			return v, pushView(v.editForm())
		case "x":
			return v, v.flagForReview()
		case "f":
			if v.app.Session.ToggleFavorite(v.blockID) {
				return v, status("⭐ Agregado a favoritos.")
			}
			return v, status(formatter.Dim("Quitado de favoritos."))
		case "n":
			if v.next != nil {
				return v, replaceView(newDetailView(v.app, v.next.BlockID))
			}
		}
	}

	return v, nil
}

func (v *detailView) updateFilling(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.stopFilling()
		return v, nil
	case tea.KeyTab, tea.KeyEnter:
		if v.focusIdx == len(v.inputs)-1 && msg.Type == tea.KeyEnter {
			v.stopFilling()
			return v, nil
		}
		return v, v.focusInput((v.focusIdx + 1) % len(v.inputs))
	case tea.KeyShiftTab:
		return v, v.focusInput((v.focusIdx - 1 + len(v.inputs)) % len(v.inputs))
	}

	var cmd tea.Cmd
	v.inputs[v.focusIdx], cmd = v.inputs[v.focusIdx].Update(msg)
	return v, cmd
}

func (v *detailView) focusInput(idx int) tea.Cmd {
	v.inputs[v.focusIdx].Blur()
	v.focusIdx = idx
	return v.inputs[idx].Focus()
}

func (v *detailView) stopFilling() {
	v.inputs[v.focusIdx].Blur()
	v.filling = false
	// Keep typed values for the rest of the session.
	v.app.Session.PlaceholderValues[v.blockID] = v.values()
}

func (v *detailView) recordUse() tea.Cmd {
	app := v.app
	blockID := v.blockID
	return func() tea.Msg {
		if err := app.Activity.RecordUse(context.Background(), blockID); err != nil {
			return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return statusMsg{text: formatter.StyleGreen.Render("✔ Uso registrado.")}
	}
}

func (v *detailView) recordFeedback(polarity domain.Polarity, comment string) tea.Cmd {
	app := v.app
	blockID := v.blockID
	return func() tea.Msg {
		err := app.Activity.RecordFeedback(context.Background(), app.Session, blockID, polarity, comment)
		if errors.Is(err, service.ErrFeedbackDuplicate) {
			return statusMsg{text: formatter.Dim("Ya registraste feedback para este bloque en esta sesión.")}
		}
		if err != nil {
			return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return statusMsg{text: formatter.PolarityGlyph(polarity) + " Feedback registrado. ¡Gracias!"}
	}
}

func (v *detailView) negativeFeedbackForm() View {
	var comment string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("¿Qué falló o qué mejorarías?").
				Value(&comment),
		),
	)
	return newFormView("Feedback", form, func() tea.Cmd {
		return v.recordFeedback(domain.PolarityNegative, comment)
	})
}

func (v *detailView) editForm() View {
	app := v.app
	blockID := v.blockID
	body := v.speech.Body
	note := v.speech.Recommendation

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Texto del speech").
				Value(&body),
			huh.NewText().
				Title("Recomendación interna").
				Value(&note),
		),
	)
	return newFormView("Editar", form, func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Catalog.Edit(context.Background(), blockID, body, note); err != nil {
				return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
			}
			return statusMsg{text: formatter.StyleGreen.Render("✔ Speech actualizado.")}
		}
	})
}

func (v *detailView) flagForReview() tea.Cmd {
	app := v.app
	blockID := v.blockID
	return func() tea.Msg {
		if err := app.Activity.FlagForReview(context.Background(), blockID); err != nil {
			return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return statusMsg{text: formatter.Dim("Speech marcado para revisión.")}
	}
}

func (v *detailView) View() string {
	if v.loading {
		return "  " + formatter.Dim("Cargando speech...") + "\n"
	}
	if v.err != nil {
		return "  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}

	var b strings.Builder
	sp := v.speech

	b.WriteString("  " + formatter.Header(sp.Title) + "\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("%s · %s · %s", sp.BlockID, sp.Category, sp.Subcategory)) + "\n\n")

	if sp.Recommendation != "" {
		b.WriteString("  " + formatter.StyleYellow.Render("💡 Nota interna: ") + sp.Recommendation + "\n\n")
	}

	if len(v.inputs) > 0 {
		b.WriteString("  " + formatter.Bold("Campos a completar:") + "\n")
		for i := range v.inputs {
			marker := "  "
			if v.filling && i == v.focusIdx {
				marker = formatter.StylePurple.Render("❯ ")
			}
			b.WriteString("   " + marker + formatter.Dim(v.names[i]+": ") + v.inputs[i].View() + "\n")
		}
		b.WriteString("\n")
	}

	rendered := template.Fill(sp.Body, v.values())
	b.WriteString("  " + formatter.Bold("Texto final para el cliente:") + "\n")
	for _, line := range strings.Split(rendered.Text, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Caracteres: %d", rendered.CharCount)) + "\n")

	if v.next != nil {
		b.WriteString("\n  " + formatter.StyleGreen.Render("➡ Siguiente paso sugerido: ") +
			fmt.Sprintf("%s (%s)", v.next.Title, v.next.BlockID) + "\n")
	}

	if v.app.Session.FeedbackStatus(v.blockID) == domain.FeedbackSubmitted {
		b.WriteString("\n  " + formatter.Dim("Feedback ya registrado en esta sesión.") + "\n")
	}

	return b.String()
}
