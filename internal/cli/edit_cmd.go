package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var (
		body string
		note string
	)

	cmd := &cobra.Command{
		Use:   "edit <id-bloque>",
		Short: "Edita el texto y la recomendación de un speech",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sp, err := app.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}

			newBody, newNote := sp.Body, sp.Recommendation
			if cmd.Flags().Changed("body") {
				newBody = body
			}
			if cmd.Flags().Changed("note") {
				newNote = note
			}

			// Without flags, open a form when running on a terminal.
			if !cmd.Flags().Changed("body") && !cmd.Flags().Changed("note") {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("sin terminal interactiva use --body o --note")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewText().
							Title("Texto del speech").
							Value(&newBody),
						huh.NewText().
							Title("Recomendación interna").
							Value(&newNote),
					),
				)
				if err := form.Run(); err != nil {
					return err
				}
			}

			if err := app.Catalog.Edit(ctx, sp.BlockID, newBody, newNote); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Bold("Speech actualizado: ")+sp.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Nuevo texto del speech")
	cmd.Flags().StringVar(&note, "note", "", "Nueva recomendación interna")
	return cmd
}
