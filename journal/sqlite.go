// journal/sqlite.go
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/trade"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store is the SQLite-backed journal: trades, playbooks, and daily notes.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const tradeColumns = `id, symbol, direction, entry_time, exit_time, entry_price, exit_price,
	stop_loss, take_profit, lot, pnl, outcome, strategy, setup, tags, notes`

func (s *Store) SaveTrade(t trade.Trade) error {
	_, err := s.db.Exec(`
		INSERT INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, string(t.Direction), t.EntryTime.UTC(),
		nullTime(t.ExitTime), t.EntryPrice, nullFloat(t.ExitPrice),
		nullFloat(t.StopLoss), nullFloat(t.TakeProfit), t.Lot,
		nullFloat(t.PnL), string(t.Outcome), t.Strategy, t.Setup,
		strings.Join(t.Tags, ","), t.Notes,
	)
	return err
}

func (s *Store) UpdateTrade(t trade.Trade) error {
	res, err := s.db.Exec(`
		UPDATE trades SET
			symbol = ?, direction = ?, entry_time = ?, exit_time = ?,
			entry_price = ?, exit_price = ?, stop_loss = ?, take_profit = ?,
			lot = ?, pnl = ?, outcome = ?, strategy = ?, setup = ?,
			tags = ?, notes = ?
		WHERE id = ?`,
		t.Symbol, string(t.Direction), t.EntryTime.UTC(),
		nullTime(t.ExitTime), t.EntryPrice, nullFloat(t.ExitPrice),
		nullFloat(t.StopLoss), nullFloat(t.TakeProfit), t.Lot,
		nullFloat(t.PnL), string(t.Outcome), t.Strategy, t.Setup,
		strings.Join(t.Tags, ","), t.Notes, t.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteTrade(id string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return nil
}

// CloseTrade marks an open trade closed, deriving its outcome from the
// realized P/L sign.
func (s *Store) CloseTrade(id string, ts time.Time, exitPrice, pnl float64) (trade.Trade, error) {
	t, err := s.GetTrade(id)
	if err != nil {
		return trade.Trade{}, err
	}
	t.Close(ts.UTC(), exitPrice, pnl)
	if err := s.UpdateTrade(t); err != nil {
		return trade.Trade{}, err
	}
	return t, nil
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return p.UTC()
}
