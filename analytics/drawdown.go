// analytics/drawdown.go
package analytics

import (
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// DrawdownCurve emits, parallel to the equity curve, the percentage decline
// from the running equity peak at each point. Values are ≤ 0 by
// construction: 0 at or above the peak, negative below it.
//
// A non-positive peak yields 0 rather than a division error or a flipped
// sign, so a blown account never propagates NaN into chart consumers.
func DrawdownCurve(trades []trade.Trade, initialBalance float64, anchor time.Time) []Point {
	equity := EquityCurve(trades, initialBalance, anchor)

	points := make([]Point, 0, len(equity))
	peak := initialBalance
	for _, p := range equity {
		if p.Value > peak {
			peak = p.Value
		}
		dd := 0.0
		if peak > 0 {
			dd = (p.Value - peak) / peak * 100
		}
		points = append(points, Point{Time: p.Time, Value: dd})
	}
	return points
}

// MaxDrawdown is the deepest decline in a drawdown series, the single badge
// value shown next to the chart. Empty input yields 0.
func MaxDrawdown(points []Point) float64 {
	min := 0.0
	for _, p := range points {
		if p.Value < min {
			min = p.Value
		}
	}
	return min
}
