// analytics/equity.go
package analytics

import (
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// Point is one sample of a derived time series.
type Point struct {
	Time  time.Time
	Value float64
}

// EquityCurve builds the running-balance series: the curve starts at
// initialBalance and applies each active day's summed P/L in chronological
// order.
//
// The first point always carries the initial balance. It sits on the
// account anchor date when the account had no activity that day, or one
// day before the first trading day when trades start on (or before) the
// anchor, so the curve visually originates at starting capital.
func EquityCurve(trades []trade.Trade, initialBalance float64, anchor time.Time) []Point {
	daily := DailyPnL(trades)
	days := sortedDays(daily)

	anchorDay := trade.Day(anchor)
	if len(days) == 0 {
		return []Point{{Time: anchorDay, Value: initialBalance}}
	}

	lead := anchorDay
	if !days[0].After(anchorDay) {
		lead = days[0].AddDate(0, 0, -1)
	}

	points := make([]Point, 0, len(days)+1)
	points = append(points, Point{Time: lead, Value: initialBalance})

	balance := initialBalance
	for _, d := range days {
		balance += daily[trade.DayKey(d)]
		points = append(points, Point{Time: d, Value: balance})
	}
	return points
}
