package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/report"
	"github.com/enriquemv/speechdesk/internal/service"
)

// statsLoadedMsg carries all panel data for the performance view.
type statsLoadedMsg struct {
	overview service.Overview
	top      []report.TitleUsage
	recent   []domain.FeedbackEntry
	queue    []domain.ReviewFlag
	err      error
}

// statsView is the performance panel: headline numbers, most used
// speeches, recent feedback and the review queue.
type statsView struct {
	app *App

	overview service.Overview
	top      []report.TitleUsage
	recent   []domain.FeedbackEntry
	queue    []domain.ReviewFlag
	loading  bool
	err      error
}

func newStatsView(app *App) *statsView {
	return &statsView{app: app, loading: true}
}

func (v *statsView) ID() ViewID    { return ViewStats }
func (v *statsView) Title() string { return "Rendimiento" }

func (v *statsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
	}
}

func (v *statsView) Init() tea.Cmd {
	return v.load()
}

func (v *statsView) load() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		ctx := context.Background()

		overview, err := app.Reports.Overview(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		top, err := app.Reports.TopSpeeches(ctx, statsTopN)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		recent, err := app.Reports.RecentFeedback(ctx, statsTopN)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		queue, err := app.Reports.ReviewQueue(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		return statsLoadedMsg{overview: overview, top: top, recent: recent, queue: queue}
	}
}

func (v *statsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.overview = msg.overview
		v.top = msg.top
		v.recent = msg.recent
		v.queue = msg.queue
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *statsView) View() string {
	if v.loading {
		return "  " + formatter.Dim("Cargando métricas...") + "\n"
	}
	if v.err != nil {
		return "  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}

	sections := formatter.FormatOverview(v.overview) +
		formatter.FormatTopSpeeches(v.top) +
		formatter.FormatRecentFeedback(v.recent) +
		formatter.FormatReviewQueue(v.queue)

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(sections, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
