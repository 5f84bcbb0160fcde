package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestEquityCurveAppliesDailyPnLInOrder(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		closedTrade("2024-01-02", 100),
		closedTrade("2024-01-03", -300),
	}

	curve := EquityCurve(trades, 1000, day("2024-01-01"))
	require.Len(t, curve, 3)

	assert.True(t, curve[0].Time.Equal(day("2024-01-01")))
	assert.InDelta(t, 1000, curve[0].Value, 1e-9)
	assert.True(t, curve[1].Time.Equal(day("2024-01-02")))
	assert.InDelta(t, 1100, curve[1].Value, 1e-9)
	assert.True(t, curve[2].Time.Equal(day("2024-01-03")))
	assert.InDelta(t, 800, curve[2].Value, 1e-9)
}

func TestEquityCurveEmptyTrades(t *testing.T) {
	t.Parallel()

	curve := EquityCurve(nil, 2500, day("2024-06-01"))
	require.Len(t, curve, 1)
	assert.True(t, curve[0].Time.Equal(day("2024-06-01")))
	assert.InDelta(t, 2500, curve[0].Value, 1e-9)
}

func TestEquityCurveAlwaysStartsAtInitialBalance(t *testing.T) {
	t.Parallel()

	cases := [][]trade.Trade{
		nil,
		{closedTrade("2024-01-01", -500)},
		{closedTrade("2023-12-28", 50)}, // trades before the anchor date
		{closedTrade("2024-03-01", 10), closedTrade("2024-03-02", 20)},
	}

	for _, trades := range cases {
		curve := EquityCurve(trades, 1000, day("2024-01-01"))
		require.NotEmpty(t, curve)
		assert.InDelta(t, 1000, curve[0].Value, 1e-9)
	}
}

func TestEquityCurveSyntheticLeadPoint(t *testing.T) {
	t.Parallel()

	// Activity on the anchor day itself: the lead point moves one day
	// earlier so the curve still originates at starting capital.
	trades := []trade.Trade{closedTrade("2024-01-01", 75)}
	curve := EquityCurve(trades, 1000, day("2024-01-01"))
	require.Len(t, curve, 2)

	assert.True(t, curve[0].Time.Equal(day("2023-12-31")))
	assert.InDelta(t, 1000, curve[0].Value, 1e-9)
	assert.InDelta(t, 1075, curve[1].Value, 1e-9)
}

func TestEquityCurveChronological(t *testing.T) {
	t.Parallel()

	// Input order must not matter.
	trades := []trade.Trade{
		closedTrade("2024-02-10", 30),
		closedTrade("2024-02-05", -10),
		closedTrade("2024-02-08", 20),
	}

	curve := EquityCurve(trades, 500, day("2024-02-01"))
	require.Len(t, curve, 4)
	for i := 1; i < len(curve); i++ {
		assert.True(t, curve[i-1].Time.Before(curve[i].Time))
	}
	assert.InDelta(t, 540, curve[len(curve)-1].Value, 1e-9)
}
