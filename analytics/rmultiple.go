// analytics/rmultiple.go
package analytics

import (
	"math"

	"github.com/rustyeddy/tradebook/trade"
)

// BucketLabels is the fixed R-multiple histogram, in display order.
// Boundaries are left-inclusive except the open-ended final bucket.
var BucketLabels = [7]string{
	"<-2R",
	"-2R to -1R",
	"-1R to 0R",
	"0R to 1R",
	"1R to 2R",
	"2R to 3R",
	">3R",
}

// RBucket is one histogram bar.
type RBucket struct {
	Label string
	Count int
}

// RMultiple computes realized P/L divided by the initial risk
// (|entry - stop| * lot * multiplier). ok is false when the trade cannot be
// classified: no realized P/L, no stop-loss, or a zero risk denominator
// (entry at the stop, zero lot, zero multiplier). Excluded trades are
// skipped entirely rather than forced into a bucket.
func RMultiple(t trade.Trade, multiplier float64) (r float64, ok bool) {
	if t.PnL == nil || t.StopLoss == nil {
		return 0, false
	}
	risk := math.Abs(t.EntryPrice-*t.StopLoss) * t.Lot * multiplier
	if risk == 0 {
		return 0, false
	}
	return *t.PnL / risk, true
}

// bucketIndex maps an R value onto BucketLabels.
func bucketIndex(r float64) int {
	switch {
	case r < -2:
		return 0
	case r < -1:
		return 1
	case r < 0:
		return 2
	case r < 1:
		return 3
	case r < 2:
		return 4
	case r < 3:
		return 5
	default:
		return 6
	}
}

// RDistribution buckets every classifiable trade's R-multiple into the
// fixed ranges. Output order is the fixed bucket order, not sorted by
// count. mult may be nil, in which case the builtin instrument table is
// used.
func RDistribution(trades []trade.Trade, mult trade.MultiplierFunc) []RBucket {
	if mult == nil {
		mult = trade.Multiplier
	}

	buckets := make([]RBucket, len(BucketLabels))
	for i, label := range BucketLabels {
		buckets[i] = RBucket{Label: label}
	}

	for _, t := range trades {
		r, ok := RMultiple(t, mult(t.Symbol))
		if !ok {
			continue
		}
		buckets[bucketIndex(r)].Count++
	}
	return buckets
}

// AvgRMultiple averages R across the classifiable trades. ok is false when
// no trade qualified.
func AvgRMultiple(trades []trade.Trade, mult trade.MultiplierFunc) (avg float64, ok bool) {
	if mult == nil {
		mult = trade.Multiplier
	}

	sum := 0.0
	n := 0
	for _, t := range trades {
		r, rok := RMultiple(t, mult(t.Symbol))
		if !rok {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
