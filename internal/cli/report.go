package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/report"
)

func newReportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the org-mode performance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			trades, err := store.ListTrades()
			if err != nil {
				return err
			}

			p := report.Build(trades,
				app.Config.Account.ID,
				app.Config.Account.Currency,
				app.Config.Account.Balance,
				app.anchor(),
				app.multiplier(),
			)

			if out == "" {
				text, err := p.Render()
				if err != nil {
					return err
				}
				fmt.Print(text)
				return nil
			}

			if err := p.WriteOrg(out); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default stdout)")

	return cmd
}
