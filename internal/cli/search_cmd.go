package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search [texto]",
		Short: "Busca speeches por texto y categoría",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			text := strings.Join(args, " ")

			results, err := app.Catalog.Search(ctx, text, category)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSearchResults(results, app.Session.Favorites))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filtra por categoría principal")
	return cmd
}
