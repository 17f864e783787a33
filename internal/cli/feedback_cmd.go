package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/service"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	var (
		positive bool
		negative bool
		comment  string
	)

	cmd := &cobra.Command{
		Use:   "feedback <id-bloque>",
		Short: "Registra si un speech funcionó o no",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if positive == negative {
				return fmt.Errorf("indique exactamente uno de --positive o --negative")
			}
			polarity := domain.PolarityPositive
			if negative {
				polarity = domain.PolarityNegative
			}

			ctx := context.Background()
			err := app.Activity.RecordFeedback(ctx, app.Session, args[0], polarity, comment)
			if errors.Is(err, service.ErrFeedbackDuplicate) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Ya registraste feedback para este bloque en esta sesión."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.PolarityGlyph(polarity)+" Feedback registrado. ¡Gracias!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&positive, "positive", false, "El speech funcionó")
	cmd.Flags().BoolVar(&negative, "negative", false, "El speech no funcionó")
	cmd.Flags().StringVarP(&comment, "comment", "m", "", "Comentario opcional sobre qué falló")
	return cmd
}
