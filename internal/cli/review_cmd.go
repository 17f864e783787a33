package cli

import (
	"context"
	"fmt"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Lista los speeches marcados para revisión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			flags, err := app.Reports.ReviewQueue(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReviewQueue(flags))
			return nil
		},
	}
}
