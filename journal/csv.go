// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

var csvHeader = []string{
	"id", "symbol", "direction", "entry_time", "exit_time",
	"entry_price", "exit_price", "stop_loss", "take_profit",
	"lot", "pnl", "outcome", "strategy", "setup", "tags", "notes",
}

// ExportCSV writes the trade list to path. Optional fields are written as
// empty cells so a round-trip preserves open trades.
func ExportCSV(path string, trades []trade.Trade) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		rec := []string{
			t.ID,
			t.Symbol,
			string(t.Direction),
			t.EntryTime.UTC().Format(time.RFC3339),
			optTime(t.ExitTime),
			f(t.EntryPrice),
			optF(t.ExitPrice),
			optF(t.StopLoss),
			optF(t.TakeProfit),
			f(t.Lot),
			optF(t.PnL),
			string(t.Outcome),
			t.Strategy,
			t.Setup,
			strings.Join(t.Tags, ","),
			t.Notes,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ImportCSV reads trades from a file previously written by ExportCSV.
func ImportCSV(path string) ([]trade.Trade, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if len(records[0]) != len(csvHeader) || records[0][0] != "id" {
		return nil, fmt.Errorf("%s: unrecognized header", path)
	}

	var out []trade.Trade
	for i, rec := range records[1:] {
		t, err := parseCSVRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseCSVRecord(rec []string) (trade.Trade, error) {
	if len(rec) != len(csvHeader) {
		return trade.Trade{}, fmt.Errorf("want %d fields, got %d", len(csvHeader), len(rec))
	}

	entryTime, err := time.Parse(time.RFC3339, rec[3])
	if err != nil {
		return trade.Trade{}, fmt.Errorf("entry_time: %w", err)
	}
	entryPrice, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return trade.Trade{}, fmt.Errorf("entry_price: %w", err)
	}
	lot, err := strconv.ParseFloat(rec[9], 64)
	if err != nil {
		return trade.Trade{}, fmt.Errorf("lot: %w", err)
	}

	t := trade.Trade{
		ID:         rec[0],
		Symbol:     rec[1],
		Direction:  trade.Direction(rec[2]),
		EntryTime:  entryTime,
		EntryPrice: entryPrice,
		Lot:        lot,
		Outcome:    trade.Outcome(rec[11]),
		Strategy:   rec[12],
		Setup:      rec[13],
		Notes:      rec[15],
	}
	if rec[4] != "" {
		ts, err := time.Parse(time.RFC3339, rec[4])
		if err != nil {
			return trade.Trade{}, fmt.Errorf("exit_time: %w", err)
		}
		t.ExitTime = &ts
	}
	if t.ExitPrice, err = parseOptF(rec[6], "exit_price"); err != nil {
		return trade.Trade{}, err
	}
	if t.StopLoss, err = parseOptF(rec[7], "stop_loss"); err != nil {
		return trade.Trade{}, err
	}
	if t.TakeProfit, err = parseOptF(rec[8], "take_profit"); err != nil {
		return trade.Trade{}, err
	}
	if t.PnL, err = parseOptF(rec[10], "pnl"); err != nil {
		return trade.Trade{}, err
	}
	if rec[14] != "" {
		t.Tags = strings.Split(rec[14], ",")
	}
	return t, nil
}

func parseOptF(s, field string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &v, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func optF(p *float64) string {
	if p == nil {
		return ""
	}
	return f(*p)
}

func optTime(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}
