package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/domain"
)

// browserLoadedMsg signals that catalog data has been loaded.
type browserLoadedMsg struct {
	speeches   []*domain.Speech
	categories []string
	titles     map[string]string
	err        error
}

// browserView is the home view: searchable, filterable catalog list
// with the recent-history strip at the bottom.
type browserView struct {
	app *App

	searchInput textinput.Model
	results     []*domain.Speech
	categories  []string
	titles      map[string]string // block id -> title, for the history strip
	catIdx      int               // 0 means no category filter
	cursor      int
	onlyFavs    bool
	loading     bool
	err         error
}

func newBrowserView(app *App) *browserView {
	ti := textinput.New()
	ti.Placeholder = "bloqueo, clave, yapeo..."
	ti.Prompt = "Buscar ❯ "
	ti.PromptStyle = formatter.StylePurple
	ti.CharLimit = 120

	return &browserView{
		app:         app,
		searchInput: ti,
		titles:      make(map[string]string),
		loading:     true,
	}
}

func (v *browserView) ID() ViewID    { return ViewBrowser }
func (v *browserView) Title() string { return "Biblioteca" }

func (v *browserView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "categoría")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorito")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "solo favoritos")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analizar consulta")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "rendimiento")),
	}
}

func (v *browserView) capturesInput() bool { return v.searchInput.Focused() }

func (v *browserView) Init() tea.Cmd {
	return v.load()
}

// selectedCategory returns the active category filter, or "" for all.
func (v *browserView) selectedCategory() string {
	if v.catIdx == 0 || v.catIdx > len(v.categories) {
		return ""
	}
	return v.categories[v.catIdx-1]
}

func (v *browserView) load() tea.Cmd {
	app := v.app
	query := v.searchInput.Value()
	category := v.selectedCategory()
	onlyFavs := v.onlyFavs

	return func() tea.Msg {
		ctx := context.Background()

		categories, err := app.Catalog.Categories(ctx)
		if err != nil {
			return browserLoadedMsg{err: err}
		}
		all, err := app.Catalog.List(ctx)
		if err != nil {
			return browserLoadedMsg{err: err}
		}
		titles := make(map[string]string, len(all))
		for _, sp := range all {
			titles[sp.BlockID] = sp.Title
		}

		results, err := app.Catalog.Search(ctx, query, category)
		if err != nil {
			return browserLoadedMsg{err: err}
		}
		if onlyFavs {
			var favs []*domain.Speech
			for _, sp := range results {
				if app.Session.Favorites[sp.BlockID] {
					favs = append(favs, sp)
				}
			}
			results = favs
		}
		return browserLoadedMsg{speeches: results, categories: categories, titles: titles}
	}
}

func (v *browserView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browserLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.results = msg.speeches
		v.categories = msg.categories
		v.titles = msg.titles
		if v.cursor >= len(v.results) {
			v.cursor = maxInt(len(v.results)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		if v.searchInput.Focused() {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				v.searchInput.Blur()
				return v, nil
			}
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			// Reload on every keystroke so results track the query.
			return v, tea.Batch(cmd, v.load())
		}

		switch msg.String() {
		case "/":
			v.searchInput.Focus()
			return v, textinput.Blink
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.results)-1 {
				v.cursor++
			}
		case "tab":
			v.catIdx = (v.catIdx + 1) % (len(v.categories) + 1)
			v.cursor = 0
			return v, v.load()
		case "enter":
			if v.cursor < len(v.results) {
				return v, pushView(newDetailView(v.app, v.results[v.cursor].BlockID))
			}
		case "f":
			if v.cursor < len(v.results) {
				id := v.results[v.cursor].BlockID
				if v.app.Session.ToggleFavorite(id) {
					return v, status("⭐ Agregado a favoritos.")
				}
				return v, status(formatter.Dim("Quitado de favoritos."))
			}
		case "v":
			v.onlyFavs = !v.onlyFavs
			v.cursor = 0
			return v, v.load()
		case "r":
			v.loading = true
			return v, v.load()
		}
	}

	// Cursor blink and other component messages.
	if v.searchInput.Focused() {
		var cmd tea.Cmd
		v.searchInput, cmd = v.searchInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *browserView) View() string {
	var b strings.Builder

	b.WriteString("  " + v.searchInput.View() + "\n")

	filter := "Todas las categorías"
	if c := v.selectedCategory(); c != "" {
		filter = c
	}
	if v.onlyFavs {
		filter += "  ⭐ solo favoritos"
	}
	b.WriteString("  " + formatter.Dim("Filtro: "+filter) + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Cargando catálogo...") + "\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case len(v.results) == 0:
		b.WriteString("  " + formatter.Dim("Sin resultados. Prueba otra búsqueda o presiona 'a' para analizar la consulta.") + "\n")
	default:
		lastSub := ""
		for i, sp := range v.results {
			if sp.Subcategory != lastSub {
				b.WriteString("  " + formatter.StyleYellow.Render(sp.Subcategory) + "\n")
				lastSub = sp.Subcategory
			}
			prefix := "   "
			if i == v.cursor {
				prefix = formatter.StylePurple.Render(" ❯ ")
			}
			line := sp.Title
			if v.app.Session.Favorites[sp.BlockID] {
				line += " ⭐"
			}
			if i == v.cursor {
				line = formatter.Bold(line)
			}
			b.WriteString(prefix + line + "  " + formatter.Dim(sp.BlockID) + "\n")
		}
	}

	if history := v.app.Session.History(); len(history) > 0 {
		b.WriteString("\n  " + formatter.Dim("Recientes:") + " ")
		parts := make([]string, 0, len(history))
		for _, id := range history {
			title := v.titles[id]
			if title == "" {
				title = id
			}
			parts = append(parts, formatter.Dim(title))
		}
		b.WriteString(strings.Join(parts, formatter.Dim(" · ")) + "\n")
	}

	return b.String()
}
