package cli

import (
	"context"
	"fmt"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const statsTopN = 5

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Resume el uso y el feedback de los speeches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ov, err := app.Reports.Overview(ctx)
			if err != nil {
				return err
			}
			top, err := app.Reports.TopSpeeches(ctx, statsTopN)
			if err != nil {
				return err
			}
			recent, err := app.Reports.RecentFeedback(ctx, statsTopN)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatOverview(ov))
			fmt.Fprint(out, formatter.FormatTopSpeeches(top))
			fmt.Fprint(out, formatter.FormatRecentFeedback(recent))
			return nil
		},
	}
}
