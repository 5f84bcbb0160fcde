// report/report.go
package report

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/trade"
)

// Performance is everything the org report renders: the badge summary plus
// the derived series behind the charts.
type Performance struct {
	AccountID string
	Currency  string
	Generated time.Time
	From      time.Time
	To        time.Time

	Summary    analytics.Summary
	Equity     []analytics.Point
	Drawdown   []analytics.Point
	RBuckets   []analytics.RBucket
	Strategies []analytics.Group
	Weekdays   []analytics.Group
	Assets     []analytics.Group
}

// Build assembles the full performance report from a trade snapshot. mult
// may be nil to use the builtin instrument table.
func Build(trades []trade.Trade, accountID, currency string, balance float64, anchor time.Time, mult trade.MultiplierFunc) Performance {
	p := Performance{
		AccountID: accountID,
		Currency:  currency,
		Generated: time.Now().UTC(),

		Summary:  analytics.Summarize(trades, balance, anchor),
		Equity:   analytics.EquityCurve(trades, balance, anchor),
		Drawdown: analytics.DrawdownCurve(trades, balance, anchor),
		RBuckets: analytics.RDistribution(trades, mult),
	}

	if len(trades) > 0 {
		p.From = trade.Day(trades[0].EntryTime)
		p.To = trade.Day(trades[len(trades)-1].EntryTime)
		for _, t := range trades {
			d := trade.Day(t.EntryTime)
			if d.Before(p.From) {
				p.From = d
			}
			if d.After(p.To) {
				p.To = d
			}
		}
	}

	p.Strategies = analytics.GroupBy(trades, analytics.ByStrategy(), mult)
	analytics.SortByPnL(p.Strategies)

	p.Weekdays = analytics.GroupBy(trades, analytics.ByWeekday(), nil)
	analytics.SortByWeekday(p.Weekdays)

	assets := analytics.GroupBy(trades, analytics.BySymbol(), nil)
	analytics.SortByPnL(assets)
	p.Assets = analytics.TopN(assets, 10)

	return p
}

var orgFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// Render executes the org template.
func (p Performance) Render() (string, error) {
	t, err := template.New("performance").Funcs(orgFuncs).Parse(OrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteOrg renders the report and writes it to path.
func (p Performance) WriteOrg(path string) error {
	out, err := p.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}
