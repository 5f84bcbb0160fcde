package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/rustyeddy/tradebook/trade"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		symbol     string
		direction  string
		entryStr   string
		entryPrice float64
		stopLoss   float64
		takeProfit float64
		lot        float64
		strategy   string
		setup      string
		tags       string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new (open) trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			if symbol == "" {
				return fmt.Errorf("--symbol is required")
			}
			dir := trade.Direction(strings.ToLower(direction))
			if dir != trade.Long && dir != trade.Short {
				return fmt.Errorf("--direction must be long or short (got %q)", direction)
			}
			if entryPrice <= 0 {
				return fmt.Errorf("invalid --entry-price")
			}
			if lot <= 0 {
				return fmt.Errorf("invalid --lot")
			}

			entryTime := time.Now().UTC()
			if entryStr != "" {
				var err error
				entryTime, err = parseTimeFlag(entryStr)
				if err != nil {
					return fmt.Errorf("bad --time: %w", err)
				}
			}

			t := trade.Trade{
				ID:         id.New(),
				Symbol:     symbol,
				Direction:  dir,
				EntryTime:  entryTime,
				EntryPrice: entryPrice,
				Lot:        lot,
				Outcome:    trade.Pending,
				Strategy:   strategy,
				Setup:      setup,
				Notes:      notes,
			}
			if stopLoss > 0 {
				t.StopLoss = &stopLoss
			}
			if takeProfit > 0 {
				t.TakeProfit = &takeProfit
			}
			if tags != "" {
				t.Tags = strings.Split(tags, ",")
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveTrade(t); err != nil {
				return err
			}

			fmt.Printf("added %s %s %s @ %v (id %s)\n", t.Symbol, t.Direction, t.EntryTime.Format("2006-01-02 15:04"), t.EntryPrice, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Instrument symbol")
	cmd.Flags().StringVar(&direction, "direction", "long", "Trade direction: long|short")
	cmd.Flags().StringVar(&entryStr, "time", "", "Entry time (RFC3339 or YYYY-MM-DD, default now)")
	cmd.Flags().Float64Var(&entryPrice, "entry-price", 0, "Entry price")
	cmd.Flags().Float64Var(&stopLoss, "stop", 0, "Stop-loss price")
	cmd.Flags().Float64Var(&takeProfit, "target", 0, "Take-profit price")
	cmd.Flags().Float64Var(&lot, "lot", 1, "Position size multiplier")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Strategy label")
	cmd.Flags().StringVar(&setup, "setup", "", "Setup label")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

// parseTimeFlag accepts RFC3339 timestamps or bare dates.
func parseTimeFlag(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return ts.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}
