package cli

import (
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the operator session shared by every handler.
type App struct {
	Catalog  service.CatalogService
	Triage   service.TriageService
	Activity service.ActivityService
	Reports  service.ReportService

	Session *domain.Session

	// IsInteractive reports whether stdin is a terminal; a bare
	// "speechdesk" only starts the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "speechdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "speechdesk",
		Short: "Biblioteca de respuestas para soporte",
		Long:  "speechdesk busca, completa y registra speeches de atención al cliente.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newSearchCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newUseCmd(app),
		newFeedbackCmd(app),
		newFlagCmd(app),
		newSnippetCmd(app),
		newStatsCmd(app),
		newReviewCmd(app),
	)

	return root
}
