// analytics/daily.go
//
// Pure aggregation over a snapshot of the trade list. Nothing in this
// package does I/O or keeps state between calls; every consumer recomputes
// from the full list, which is cheap at journal scale (hundreds to a few
// thousand trades).
package analytics

import (
	"sort"
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// DailyPnL groups trades by entry calendar day and sums realized P/L per
// day. Trades without a realized P/L contribute 0.
func DailyPnL(trades []trade.Trade) map[string]float64 {
	daily := make(map[string]float64, len(trades))
	for _, t := range trades {
		daily[trade.DayKey(t.EntryTime)] += t.Realized()
	}
	return daily
}

// sortedDays returns the map's day keys parsed and sorted ascending.
func sortedDays(daily map[string]float64) []time.Time {
	days := make([]time.Time, 0, len(daily))
	for k := range daily {
		d, err := time.Parse("2006-01-02", k)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
