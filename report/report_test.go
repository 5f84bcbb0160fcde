package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

func ptr(v float64) *float64 { return &v }

func sampleTrades() []trade.Trade {
	mk := func(id, day, strategy string, pnl float64) trade.Trade {
		ts, _ := time.Parse("2006-01-02", day)
		return trade.Trade{
			ID:         id,
			Symbol:     "EUR_USD",
			Direction:  trade.Long,
			EntryTime:  ts.Add(10 * time.Hour),
			EntryPrice: 1.0850,
			StopLoss:   ptr(1.0830),
			Lot:        1,
			PnL:        ptr(pnl),
			Outcome:    trade.OutcomeFromPnL(pnl),
			Strategy:   strategy,
		}
	}

	return []trade.Trade{
		mk("T1", "2024-01-02", "breakout", 100),
		mk("T2", "2024-01-03", "breakout", -300),
		mk("T3", "2024-01-04", "", 200),
	}
}

func anchor() time.Time {
	d, _ := time.Parse("2006-01-02", "2024-01-01")
	return d
}

func TestBuildPerformance(t *testing.T) {
	t.Parallel()

	p := Build(sampleTrades(), "ACCT-007", "USD", 1000, anchor(), nil)

	assert.Equal(t, 3, p.Summary.Trades)
	assert.InDelta(t, 0, p.Summary.NetPnL, 1e-9)
	require.Len(t, p.Equity, 4)
	assert.InDelta(t, 1000, p.Equity[0].Value, 1e-9)
	require.Len(t, p.RBuckets, 7)
	assert.True(t, p.From.Format("2006-01-02") == "2024-01-02")
	assert.True(t, p.To.Format("2006-01-02") == "2024-01-04")

	// Strategies sorted by P/L descending, fallback group included.
	require.Len(t, p.Strategies, 2)
	assert.Equal(t, "no strategy assigned", p.Strategies[0].Key)
}

func TestRenderContainsBadges(t *testing.T) {
	t.Parallel()

	p := Build(sampleTrades(), "ACCT-007", "USD", 1000, anchor(), nil)

	out, err := p.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "* PERFORMANCE: ACCT-007")
	assert.Contains(t, out, ":TRADES:      3")
	assert.Contains(t, out, ":NET_PL:      0.00")
	assert.Contains(t, out, "-27.27%")
	assert.Contains(t, out, "| 2024-01-01 | 1000.00 |")
	assert.Contains(t, out, "| no strategy assigned |")
	assert.Contains(t, out, "| >3R |")
}

func TestRenderEmptyJournal(t *testing.T) {
	t.Parallel()

	p := Build(nil, "ACCT-007", "USD", 1000, anchor(), nil)

	out, err := p.Render()
	require.NoError(t, err)
	assert.Contains(t, out, ":TRADES:      0")
	assert.Contains(t, out, "(profit-factor?)")
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "performance.org")
	p := Build(sampleTrades(), "ACCT-007", "USD", 1000, anchor(), nil)
	require.NoError(t, p.WriteOrg(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "** Performance Summary"))
}
