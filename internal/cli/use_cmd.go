package cli

import (
	"context"
	"fmt"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id-bloque>",
		Short: "Registra el uso de un speech",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Activity.RecordUse(ctx, args[0]); err != nil {
				return err
			}
			app.Session.Visit(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Uso registrado."))
			return nil
		},
	}
}
