package cli

import (
	"context"
	"fmt"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFlagCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "flag <id-bloque>",
		Short: "Marca un speech para revisión posterior",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Activity.FlagForReview(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Speech marcado para revisión."))
			return nil
		},
	}
}
