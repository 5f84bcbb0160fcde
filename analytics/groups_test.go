package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

func strategyTrade(day, strategy string, pnl float64) trade.Trade {
	tr := closedTrade(day, pnl)
	tr.Strategy = strategy
	return tr
}

func TestGroupByStrategyFallback(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		strategyTrade("2024-01-02", "breakout", 100),
		strategyTrade("2024-01-03", "breakout", -50),
		strategyTrade("2024-01-04", "", 30),
	}

	groups := GroupBy(trades, ByStrategy(), nil)
	require.Len(t, groups, 2)

	byKey := map[string]Group{}
	for _, g := range groups {
		byKey[g.Key] = g
	}

	breakout := byKey["breakout"]
	assert.Equal(t, 2, breakout.Trades)
	assert.Equal(t, 1, breakout.Wins)
	assert.Equal(t, 1, breakout.Losses)
	assert.InDelta(t, 50, breakout.PnL, 1e-9)
	assert.InDelta(t, 0.5, breakout.WinRate(), 1e-9)

	unlabeled := byKey[NoStrategy]
	assert.Equal(t, 1, unlabeled.Trades)
	assert.InDelta(t, 30, unlabeled.PnL, 1e-9)
}

func TestGroupingCompleteness(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		strategyTrade("2024-01-02", "breakout", 100),
		strategyTrade("2024-01-03", "", -20),
		strategyTrade("2024-01-04", "reversal", 40),
		openTrade("2024-01-05"),
	}

	for _, key := range []KeyFunc{ByStrategy(), BySymbol(), ByWeekday()} {
		groups := GroupBy(trades, key, nil)
		total := 0
		for _, g := range groups {
			total += g.Trades
		}
		assert.Equal(t, len(trades), total)
	}
}

func TestGroupByPendingExcludedFromTally(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		strategyTrade("2024-01-02", "breakout", 100),
		openTrade("2024-01-02"),
	}

	groups := GroupBy(trades, BySymbol(), nil)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Trades)
	assert.Equal(t, 1, groups[0].Wins)
	assert.Equal(t, 0, groups[0].Losses)
}

func TestGroupByAvgR(t *testing.T) {
	t.Parallel()

	withR := riskTrade(100, 90, 1, 20) // r 2
	withR.Strategy = "breakout"
	noR := strategyTrade("2024-01-03", "breakout", 15) // no stop → excluded

	groups := GroupBy([]trade.Trade{withR, noR}, ByStrategy(), trade.Multiplier)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].HasR)
	assert.InDelta(t, 2, groups[0].AvgR, 1e-9)
}

func TestSortByPnL(t *testing.T) {
	t.Parallel()

	groups := []Group{
		{Key: "a", PnL: 10},
		{Key: "b", PnL: 300},
		{Key: "c", PnL: -50},
	}
	SortByPnL(groups)
	assert.Equal(t, []string{"b", "a", "c"}, []string{groups[0].Key, groups[1].Key, groups[2].Key})
}

func TestSortByWeekday(t *testing.T) {
	t.Parallel()

	// 2024-01-01 is a Monday.
	trades := []trade.Trade{
		closedTrade("2024-01-03", 10), // Wednesday
		closedTrade("2024-01-01", 20), // Monday
		closedTrade("2024-01-07", 5),  // Sunday
	}

	groups := GroupBy(trades, ByWeekday(), nil)
	SortByWeekday(groups)
	require.Len(t, groups, 3)
	assert.Equal(t, "Sunday", groups[0].Key)
	assert.Equal(t, "Monday", groups[1].Key)
	assert.Equal(t, "Wednesday", groups[2].Key)
}

func TestTopN(t *testing.T) {
	t.Parallel()

	groups := []Group{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	assert.Len(t, TopN(groups, 2), 2)
	assert.Len(t, TopN(groups, 10), 3)
}
