package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSnippetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Guarda y lista frases sueltas reutilizables",
	}

	add := &cobra.Command{
		Use:   "add <texto>",
		Short: "Guarda una frase suelta",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Activity.AddSnippet(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Snippet guardado."))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista las frases guardadas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snippets, err := app.Activity.ListSnippets(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnippets(snippets))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
