// analytics/summary.go
package analytics

import (
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// Summary holds the badge values shown above every performance view.
type Summary struct {
	Trades     int
	Wins       int
	Losses     int
	Breakevens int
	Open       int

	NetPnL       float64
	WinRate      float64 // wins / (wins + losses)
	ProfitFactor float64 // gross profit / gross loss, 0 when no losses
	Expectancy   float64 // NetPnL / closed trade count
	MaxDDPct     float64 // ≤ 0

	StartBalance float64
	EndBalance   float64
	ReturnPct    float64
}

// Summarize computes the account-level summary from the full trade list.
// An empty list yields zero badges, never an error.
func Summarize(trades []trade.Trade, initialBalance float64, anchor time.Time) Summary {
	s := Summary{StartBalance: initialBalance}

	grossProfit := 0.0
	grossLoss := 0.0
	closed := 0
	for _, t := range trades {
		s.Trades++
		if t.Open() {
			s.Open++
			continue
		}
		closed++
		pl := t.Realized()
		s.NetPnL += pl
		if pl > 0 {
			grossProfit += pl
		} else {
			grossLoss += -pl
		}
		switch t.Outcome {
		case trade.Win:
			s.Wins++
		case trade.Loss:
			s.Losses++
		case trade.Breakeven:
			s.Breakevens++
		}
	}

	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = float64(s.Wins) / float64(decided)
	}
	if grossLoss > 0 {
		s.ProfitFactor = grossProfit / grossLoss
	}
	if closed > 0 {
		s.Expectancy = s.NetPnL / float64(closed)
	}

	s.EndBalance = initialBalance + s.NetPnL
	if initialBalance > 0 {
		s.ReturnPct = s.NetPnL / initialBalance * 100
	}
	s.MaxDDPct = MaxDrawdown(DrawdownCurve(trades, initialBalance, anchor))

	return s
}
