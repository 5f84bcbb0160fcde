package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCloseCmd(app *App) *cobra.Command {
	var (
		exitPrice float64
		pnl       float64
		exitStr   string
	)

	cmd := &cobra.Command{
		Use:   "close <trade-id>",
		Short: "Close an open trade with its exit price and realized P/L",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exitPrice <= 0 {
				return fmt.Errorf("--price is required")
			}
			if !cmd.Flags().Changed("pnl") {
				return fmt.Errorf("--pnl is required")
			}

			exitTime := time.Now().UTC()
			if exitStr != "" {
				var err error
				exitTime, err = parseTimeFlag(exitStr)
				if err != nil {
					return fmt.Errorf("bad --time: %w", err)
				}
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			t, err := store.CloseTrade(args[0], exitTime, exitPrice, pnl)
			if err != nil {
				return err
			}

			fmt.Printf("closed %s %s: %s %+.2f %s\n", t.Symbol, t.ID, t.Outcome, pnl, app.Config.Account.Currency)
			return nil
		},
	}

	cmd.Flags().Float64Var(&exitPrice, "price", 0, "Exit price")
	cmd.Flags().Float64Var(&pnl, "pnl", 0, "Realized P/L in account currency")
	cmd.Flags().StringVar(&exitStr, "time", "", "Exit time (RFC3339 or YYYY-MM-DD, default now)")

	return cmd
}
