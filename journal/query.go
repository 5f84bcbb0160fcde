// journal/query.go
package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// GetTrade returns a single trade by ID.
func (s *Store) GetTrade(id string) (trade.Trade, error) {
	row := s.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return trade.Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
		}
		return trade.Trade{}, err
	}
	return t, nil
}

// ListTrades returns every trade ordered by entry time ascending.
func (s *Store) ListTrades() ([]trade.Trade, error) {
	return s.listTrades(`SELECT ` + tradeColumns + ` FROM trades ORDER BY entry_time ASC, id ASC`)
}

// ListTradesBetween returns trades entered within [start, end).
func (s *Store) ListTradesBetween(start, end time.Time) ([]trade.Trade, error) {
	return s.listTrades(`
		SELECT `+tradeColumns+` FROM trades
		WHERE entry_time >= ? AND entry_time < ?
		ORDER BY entry_time ASC, id ASC`, start.UTC(), end.UTC())
}

// ListTradesBySymbol returns a single instrument's trades.
func (s *Store) ListTradesBySymbol(symbol string) ([]trade.Trade, error) {
	return s.listTrades(`
		SELECT `+tradeColumns+` FROM trades
		WHERE symbol = ?
		ORDER BY entry_time ASC, id ASC`, symbol)
}

// ListTradesByStrategy returns trades carrying the strategy label. An empty
// label matches the unlabeled trades.
func (s *Store) ListTradesByStrategy(strategy string) ([]trade.Trade, error) {
	return s.listTrades(`
		SELECT `+tradeColumns+` FROM trades
		WHERE strategy = ?
		ORDER BY entry_time ASC, id ASC`, strategy)
}

// ListOpenTrades returns trades without a realized P/L yet.
func (s *Store) ListOpenTrades() ([]trade.Trade, error) {
	return s.listTrades(`
		SELECT ` + tradeColumns + ` FROM trades
		WHERE pnl IS NULL
		ORDER BY entry_time ASC, id ASC`)
}

func (s *Store) listTrades(query string, args ...any) ([]trade.Trade, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (trade.Trade, error) {
	var (
		t          trade.Trade
		direction  string
		outcome    string
		exitTime   sql.NullTime
		exitPrice  sql.NullFloat64
		stopLoss   sql.NullFloat64
		takeProfit sql.NullFloat64
		pnl        sql.NullFloat64
		tags       string
	)

	err := row.Scan(
		&t.ID, &t.Symbol, &direction, &t.EntryTime, &exitTime,
		&t.EntryPrice, &exitPrice, &stopLoss, &takeProfit, &t.Lot,
		&pnl, &outcome, &t.Strategy, &t.Setup, &tags, &t.Notes,
	)
	if err != nil {
		return trade.Trade{}, err
	}

	t.Direction = trade.Direction(direction)
	t.Outcome = trade.Outcome(outcome)
	t.EntryTime = t.EntryTime.UTC()
	if exitTime.Valid {
		ts := exitTime.Time.UTC()
		t.ExitTime = &ts
	}
	if exitPrice.Valid {
		v := exitPrice.Float64
		t.ExitPrice = &v
	}
	if stopLoss.Valid {
		v := stopLoss.Float64
		t.StopLoss = &v
	}
	if takeProfit.Valid {
		v := takeProfit.Float64
		t.TakeProfit = &v
	}
	if pnl.Valid {
		v := pnl.Float64
		t.PnL = &v
	}
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	return t, nil
}
