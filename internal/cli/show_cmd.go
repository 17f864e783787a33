package cli

import (
	"context"
	"fmt"

	"github.com/enriquemv/speechdesk/internal/cli/formatter"
	"github.com/enriquemv/speechdesk/internal/template"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var (
		fill fillValues
		use  bool
	)

	cmd := &cobra.Command{
		Use:   "show <id-bloque>",
		Short: "Muestra un speech y completa sus campos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sp, err := app.Catalog.Get(ctx, args[0])
			if err != nil {
				return err
			}
			next, err := app.Catalog.NextStep(ctx, sp.BlockID)
			if err != nil {
				return err
			}
			app.Session.Select(sp.BlockID)
			app.Session.Visit(sp.BlockID)

			names := template.Extract(sp.Body)
			rendered := template.Fill(sp.Body, fill.valuesFor(names))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSpeech(sp, rendered, next))

			if use {
				if err := app.Activity.RecordUse(ctx, sp.BlockID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Uso registrado."))
			}
			return nil
		},
	}

	cmd.Flags().Var(&fill, "fill", "Valor para un campo, formato nombre=valor (repetible)")
	cmd.Flags().BoolVarP(&use, "use", "u", false, "Registra el uso del speech")
	return cmd
}
