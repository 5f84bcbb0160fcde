package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradebook/trade"
)

func ptr(v float64) *float64 { return &v }

func closedTrade(day string, pnl float64) trade.Trade {
	ts, _ := time.Parse("2006-01-02", day)
	outcome := trade.OutcomeFromPnL(pnl)
	return trade.Trade{
		ID:         "T-" + day,
		Symbol:     "EUR_USD",
		Direction:  trade.Long,
		EntryTime:  ts.Add(9 * time.Hour),
		EntryPrice: 1.1000,
		Lot:        1,
		PnL:        ptr(pnl),
		Outcome:    outcome,
	}
}

func openTrade(day string) trade.Trade {
	ts, _ := time.Parse("2006-01-02", day)
	return trade.Trade{
		ID:         "O-" + day,
		Symbol:     "EUR_USD",
		Direction:  trade.Long,
		EntryTime:  ts.Add(14 * time.Hour),
		EntryPrice: 1.1000,
		Lot:        1,
		Outcome:    trade.Pending,
	}
}

func TestDailyPnLEmpty(t *testing.T) {
	t.Parallel()

	daily := DailyPnL(nil)
	assert.Empty(t, daily)
}

func TestDailyPnLSumsSameDay(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		closedTrade("2024-01-02", 100),
		closedTrade("2024-01-02", -40),
		closedTrade("2024-01-03", 25),
	}

	daily := DailyPnL(trades)
	assert.Len(t, daily, 2)
	assert.InDelta(t, 60, daily["2024-01-02"], 1e-9)
	assert.InDelta(t, 25, daily["2024-01-03"], 1e-9)
}

func TestDailyPnLPendingCountsAsZero(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		closedTrade("2024-01-02", 100),
		openTrade("2024-01-02"),
	}

	daily := DailyPnL(trades)
	assert.InDelta(t, 100, daily["2024-01-02"], 1e-9)
}

func TestDailyPnLGroupsByDayNotTime(t *testing.T) {
	t.Parallel()

	morning := closedTrade("2024-01-02", 10)
	evening := closedTrade("2024-01-02", 20)
	evening.EntryTime = evening.EntryTime.Add(12 * time.Hour)

	daily := DailyPnL([]trade.Trade{morning, evening})
	assert.Len(t, daily, 1)
	assert.InDelta(t, 30, daily["2024-01-02"], 1e-9)
}
