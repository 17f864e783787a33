package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/contract"
	"github.com/enriquemv/speechdesk/internal/template"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "ask <consulta del cliente>",
		Short: "Analiza una consulta y sugiere el mejor speech",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			query := strings.Join(args, " ")

			resp, err := app.Triage.Analyze(ctx, contract.TriageRequest{Query: query})
			if err != nil {
				return err
			}
			app.Session.SetTone(resp.Tone)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTriage(resp))

			if resp.Suggestion == nil || !show {
				return nil
			}

			sp, err := app.Catalog.Get(ctx, resp.Suggestion.BlockID)
			if err != nil {
				return err
			}
			next, err := app.Catalog.NextStep(ctx, sp.BlockID)
			if err != nil {
				return err
			}
			app.Session.Select(sp.BlockID)
			app.Session.Visit(sp.BlockID)

			// Show the body as authored; "show --fill" renders final text.
			rendered := template.Rendered{Text: sp.Body, CharCount: len([]rune(sp.Body))}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatSpeech(sp, rendered, next))
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Muestra el speech sugerido completo")
	return cmd
}
