package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/trade"
)

func newListCmd(app *App) *cobra.Command {
	var (
		openOnly bool
		symbol   string
		strategy string
		fromStr  string
		toStr    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journaled trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var trades []trade.Trade
			switch {
			case openOnly:
				trades, err = store.ListOpenTrades()
			case symbol != "":
				trades, err = store.ListTradesBySymbol(symbol)
			case strategy != "" || cmd.Flags().Changed("strategy"):
				trades, err = store.ListTradesByStrategy(strategy)
			case fromStr != "" || toStr != "":
				var from, to time.Time
				from, to, err = parseRange(fromStr, toStr)
				if err != nil {
					return err
				}
				trades, err = store.ListTradesBetween(from, to)
			default:
				trades, err = store.ListTrades()
			}
			if err != nil {
				return err
			}

			if len(trades) == 0 {
				fmt.Println("no trades")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSYMBOL\tDIR\tENTRY\tPRICE\tLOT\tPNL\tOUTCOME\tSTRATEGY")
			for _, t := range trades {
				pnl := "-"
				if t.PnL != nil {
					pnl = fmt.Sprintf("%+.2f", *t.PnL)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\t%s\t%s\t%s\n",
					t.ID, t.Symbol, t.Direction,
					t.EntryTime.Format("2006-01-02 15:04"),
					t.EntryPrice, t.Lot, pnl, t.Outcome, t.Strategy)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&openOnly, "open", false, "Only open trades")
	cmd.Flags().StringVar(&symbol, "symbol", "", "Filter by symbol")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Filter by strategy label")
	cmd.Flags().StringVar(&fromStr, "from", "", "Range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "Range end (YYYY-MM-DD, exclusive)")

	return cmd
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().UTC().AddDate(100, 0, 0)

	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fmt.Errorf("bad --from: %w", err)
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fmt.Errorf("bad --to: %w", err)
		}
	}
	if !from.Before(to) {
		return from, to, fmt.Errorf("--from must be before --to")
	}
	return from, to, nil
}
