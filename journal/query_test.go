package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

func seedTrades(t *testing.T, s *Store) {
	t.Helper()

	days := []struct {
		id       string
		symbol   string
		strategy string
		day      time.Time
		pnl      *float64
	}{
		{"T1", "EUR_USD", "breakout", time.Date(2024, 4, 8, 9, 0, 0, 0, time.UTC), ptr(120)},
		{"T2", "GBP_USD", "reversal", time.Date(2024, 4, 9, 10, 0, 0, 0, time.UTC), ptr(-60)},
		{"T3", "EUR_USD", "breakout", time.Date(2024, 4, 10, 11, 0, 0, 0, time.UTC), ptr(40)},
		{"T4", "USD_JPY", "", time.Date(2024, 4, 11, 12, 0, 0, 0, time.UTC), nil},
	}

	for _, d := range days {
		tr := sampleTrade(d.id)
		tr.Symbol = d.symbol
		tr.Strategy = d.strategy
		tr.EntryTime = d.day
		tr.PnL = d.pnl
		if d.pnl != nil {
			tr.Outcome = trade.OutcomeFromPnL(*d.pnl)
		}
		require.NoError(t, s.SaveTrade(tr))
	}
}

func TestListTradesChronological(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	defer s.Close()
	seedTrades(t, s)

	trades, err := s.ListTrades()
	require.NoError(t, err)
	require.Len(t, trades, 4)

	for i := 1; i < len(trades); i++ {
		assert.True(t, !trades[i].EntryTime.Before(trades[i-1].EntryTime))
	}
	assert.Equal(t, "T1", trades[0].ID)
	assert.Equal(t, "T4", trades[3].ID)
}

func TestListTradesBetween(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	defer s.Close()
	seedTrades(t, s)

	start := time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 11, 0, 0, 0, 0, time.UTC)

	trades, err := s.ListTradesBetween(start, end)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "T2", trades[0].ID)
	assert.Equal(t, "T3", trades[1].ID)
}

func TestListTradesBetweenEmptyRange(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	defer s.Close()
	seedTrades(t, s)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trades, err := s.ListTradesBetween(start, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestListTradesBySymbol(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	defer s.Close()
	seedTrades(t, s)

	trades, err := s.ListTradesBySymbol("EUR_USD")
	require.NoError(t, err)
	require.Len(t, trades, 2)
	for _, tr := range trades {
		assert.Equal(t, "EUR_USD", tr.Symbol)
	}
}

func TestListTradesByStrategy(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	defer s.Close()
	seedTrades(t, s)

	trades, err := s.ListTradesByStrategy("breakout")
	require.NoError(t, err)
	assert.Len(t, trades, 2)

	unlabeled, err := s.ListTradesByStrategy("")
	require.NoError(t, err)
	require.Len(t, unlabeled, 1)
	assert.Equal(t, "T4", unlabeled[0].ID)
}

func TestListOpenTrades(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	defer s.Close()
	seedTrades(t, s)

	open, err := s.ListOpenTrades()
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "T4", open[0].ID)
	assert.Nil(t, open[0].PnL)
}
