package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
)

func newStatsCmd(app *App) *cobra.Command {
	var (
		byStrategy bool
		byWeekday  bool
		byAsset    bool
		rDist      bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print performance summary and distributions",
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

			cur := app.Config.Account.Currency
			s := analytics.Summarize(trades, app.Config.Account.Balance, app.anchor())

			fmt.Printf("trades: %d (open %d)  wins: %d  losses: %d  breakeven: %d\n",
				s.Trades, s.Open, s.Wins, s.Losses, s.Breakevens)
			fmt.Printf("net P/L: %+.2f %s  return: %+.2f%%  win rate: %.1f%%\n",
				s.NetPnL, cur, s.ReturnPct, s.WinRate*100)
			fmt.Printf("profit factor: %.2f  expectancy: %+.2f %s  max drawdown: %.2f%%\n",
				s.ProfitFactor, s.Expectancy, cur, s.MaxDDPct)

			if rDist {
				fmt.Println("\nR-multiple distribution:")
				for _, b := range analytics.RDistribution(trades, app.multiplier()) {
					fmt.Printf("  %-12s %d\n", b.Label, b.Count)
				}
			}

			printGroups := func(title string, groups []analytics.Group) error {
				fmt.Printf("\n%s:\n", title)
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "KEY\tTRADES\tWINS\tLOSSES\tWIN RATE\tPNL")
				for _, g := range groups {
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.0f%%\t%+.2f\n",
						g.Key, g.Trades, g.Wins, g.Losses, g.WinRate()*100, g.PnL)
				}
				return w.Flush()
			}

			if byStrategy {
				groups := analytics.GroupBy(trades, analytics.ByStrategy(), app.multiplier())
				analytics.SortByPnL(groups)
				if err := printGroups("by strategy", groups); err != nil {
					return err
				}
			}
			if byWeekday {
				groups := analytics.GroupBy(trades, analytics.ByWeekday(), nil)
				analytics.SortByWeekday(groups)
				if err := printGroups("by weekday", groups); err != nil {
					return err
				}
			}
			if byAsset {
				groups := analytics.GroupBy(trades, analytics.BySymbol(), nil)
				analytics.SortByPnL(groups)
				if err := printGroups("by asset (top 10)", analytics.TopN(groups, 10)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byStrategy, "strategies", false, "Per-strategy breakdown")
	cmd.Flags().BoolVar(&byWeekday, "weekdays", false, "Per-weekday breakdown")
	cmd.Flags().BoolVar(&byAsset, "assets", false, "Per-symbol breakdown (top 10)")
	cmd.Flags().BoolVar(&rDist, "r", false, "R-multiple distribution")

	return cmd
}
