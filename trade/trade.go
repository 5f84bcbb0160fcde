// trade/trade.go
package trade

import "time"

type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

type Outcome string

const (
	Win       Outcome = "win"
	Loss      Outcome = "loss"
	Breakeven Outcome = "breakeven"
	Pending   Outcome = "pending"
)

// Trade is a single journaled trade. Pointer fields are unknown until the
// trade closes (or are simply never recorded for a discretionary entry).
type Trade struct {
	ID        string
	Symbol    string
	Direction Direction

	EntryTime  time.Time
	ExitTime   *time.Time
	EntryPrice float64
	ExitPrice  *float64

	StopLoss   *float64
	TakeProfit *float64

	// Lot is the position size multiplier (lots, contracts, shares).
	Lot float64

	// PnL is the realized profit/loss in account currency. Nil while the
	// trade is still open.
	PnL *float64

	Outcome  Outcome
	Strategy string
	Setup    string
	Tags     []string
	Notes    string
}

// Open reports whether the trade has not been closed out yet.
func (t Trade) Open() bool {
	return t.PnL == nil || t.Outcome == Pending
}

// Realized returns the realized P/L, treating an open trade as 0.
func (t Trade) Realized() float64 {
	if t.PnL == nil {
		return 0
	}
	return *t.PnL
}

// EntryDay truncates the entry timestamp to calendar-day granularity in UTC.
func (t Trade) EntryDay() time.Time {
	return Day(t.EntryTime)
}

// Day truncates ts to midnight UTC.
func Day(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey is the canonical string form of a calendar day.
func DayKey(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}

// Realized P/L within epsilon of zero counts as a breakeven close.
const breakevenEpsilon = 0.005

// OutcomeFromPnL derives the close outcome from the realized P/L sign.
func OutcomeFromPnL(pnl float64) Outcome {
	switch {
	case pnl > breakevenEpsilon:
		return Win
	case pnl < -breakevenEpsilon:
		return Loss
	default:
		return Breakeven
	}
}

// Close marks the trade closed at ts with the given exit price and realized
// P/L, deriving the outcome from the P/L sign.
func (t *Trade) Close(ts time.Time, exitPrice, pnl float64) {
	t.ExitTime = &ts
	t.ExitPrice = &exitPrice
	t.PnL = &pnl
	t.Outcome = OutcomeFromPnL(pnl)
}
