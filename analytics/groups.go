// analytics/groups.go
package analytics

import (
	"sort"

	"github.com/rustyeddy/tradebook/trade"
)

// NoStrategy is the fallback group for trades without a classification
// label. Falling back instead of dropping keeps every trade in exactly one
// group.
const NoStrategy = "no strategy assigned"

// KeyFunc extracts the grouping key from a trade.
type KeyFunc func(trade.Trade) string

// Group is the per-key aggregate produced by GroupBy.
type Group struct {
	Key    string
	Trades int
	Wins   int
	Losses int
	PnL    float64

	// AvgR is the mean R-multiple over the group's classifiable trades;
	// HasR is false when none qualified.
	AvgR float64
	HasR bool
}

// GroupBy reduces the trade list into one aggregate per distinct key.
// Pending trades count toward Trades and PnL (at 0) but not toward the
// win/loss tally. mult enables per-group average R; pass nil to skip it.
// Output order is unspecified; consumers sort with the helpers below.
func GroupBy(trades []trade.Trade, key KeyFunc, mult trade.MultiplierFunc) []Group {
	byKey := make(map[string][]trade.Trade)
	for _, t := range trades {
		k := key(t)
		byKey[k] = append(byKey[k], t)
	}

	groups := make([]Group, 0, len(byKey))
	for k, members := range byKey {
		g := Group{Key: k}
		for _, t := range members {
			g.Trades++
			g.PnL += t.Realized()
			switch t.Outcome {
			case trade.Win:
				g.Wins++
			case trade.Loss:
				g.Losses++
			}
		}
		if mult != nil {
			g.AvgR, g.HasR = AvgRMultiple(members, mult)
		}
		groups = append(groups, g)
	}
	return groups
}

// ByStrategy groups on the strategy label, with the unlabeled fallback.
func ByStrategy() KeyFunc {
	return func(t trade.Trade) string {
		if t.Strategy == "" {
			return NoStrategy
		}
		return t.Strategy
	}
}

// BySymbol groups on the instrument symbol.
func BySymbol() KeyFunc {
	return func(t trade.Trade) string { return t.Symbol }
}

// weekdayNames is indexed by time.Weekday (Sunday = 0).
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ByWeekday groups on the entry weekday name.
func ByWeekday() KeyFunc {
	return func(t trade.Trade) string {
		return weekdayNames[int(t.EntryTime.UTC().Weekday())]
	}
}

// SortByPnL orders groups by total P/L descending (strategy and asset
// comparison views).
func SortByPnL(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].PnL > groups[j].PnL
	})
}

// SortByWeekday orders weekday groups by calendar index, Sunday first.
func SortByWeekday(groups []Group) {
	index := make(map[string]int, len(weekdayNames))
	for i, name := range weekdayNames {
		index[name] = i
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return index[groups[i].Key] < index[groups[j].Key]
	})
}

// TopN truncates a sorted group list (asset performance shows the top 10).
func TopN(groups []Group, n int) []Group {
	if len(groups) <= n {
		return groups
	}
	return groups[:n]
}

// WinRate is wins over decided trades (wins + losses); breakeven and
// pending trades do not dilute it.
func (g Group) WinRate() float64 {
	decided := g.Wins + g.Losses
	if decided == 0 {
		return 0
	}
	return float64(g.Wins) / float64(decided)
}
