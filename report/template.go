// report/template.go
package report

const OrgTemplate = `
* PERFORMANCE: {{.AccountID}}
:PROPERTIES:
:CURRENCY:    {{.Currency}}
{{- if not .From.IsZero}}
:START_DATE:  {{.From.Format "2006-01-02"}}
:END_DATE:    {{.To.Format "2006-01-02"}}
{{- end}}
:START_BAL:   {{printf "%.2f" .Summary.StartBalance}}
:END_BAL:     {{printf "%.2f" .Summary.EndBalance}}
:NET_PL:      {{printf "%.2f" .Summary.NetPnL}}
:RETURN_PCT:  {{printf "%.2f" .Summary.ReturnPct}}
:MAX_DD_PCT:  {{printf "%.2f" .Summary.MaxDDPct}}
:TRADES:      {{.Summary.Trades}}
:WINS:        {{.Summary.Wins}}
:LOSSES:      {{.Summary.Losses}}
:WIN_RATE:    {{printf "%.2f" (mul100 .Summary.WinRate)}}
:PROFIT_FAC:  {{if ne .Summary.ProfitFactor 0.0}}{{printf "%.2f" .Summary.ProfitFactor}}{{else}}(profit-factor?){{end}}
:CREATED:     [{{(orTime .Generated).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Net P/L:          *{{printf "%.2f" .Summary.NetPnL}} {{.Currency}}*
- Return:           *{{printf "%.2f" .Summary.ReturnPct}}%*
- Max Drawdown:     *{{printf "%.2f" .Summary.MaxDDPct}}%*
- Win Rate:         *{{printf "%.2f" (mul100 .Summary.WinRate)}}%*
- Expectancy:       *{{printf "%.2f" .Summary.Expectancy}} {{.Currency}}/trade*
- Open Positions:   {{.Summary.Open}}

** Equity Curve
| Date | Balance |
|------+---------|
{{- range .Equity}}
| {{.Time.Format "2006-01-02"}} | {{printf "%.2f" .Value}} |
{{- end}}

** Drawdown
| Date | Decline From Peak |
|------+-------------------|
{{- range .Drawdown}}
| {{.Time.Format "2006-01-02"}} | {{printf "%.2f" .Value}}% |
{{- end}}

** R-Multiple Distribution
| Bucket | Count |
|--------+-------|
{{- range .RBuckets}}
| {{.Label}} | {{.Count}} |
{{- end}}

** Strategy Comparison
| Strategy | Trades | Wins | Losses | Win Rate | P/L {{if .Currency}}({{.Currency}}){{end}} |
|----------+--------+------+--------+----------+-----|
{{- range .Strategies}}
| {{.Key}} | {{.Trades}} | {{.Wins}} | {{.Losses}} | {{printf "%.0f" (mul100 .WinRate)}}% | {{printf "%.2f" .PnL}} |
{{- end}}

** Weekday Win Rate
| Weekday | Trades | Win Rate | P/L |
|---------+--------+----------+-----|
{{- range .Weekdays}}
| {{.Key}} | {{.Trades}} | {{printf "%.0f" (mul100 .WinRate)}}% | {{printf "%.2f" .PnL}} |
{{- end}}

** Asset Performance (top 10)
| Symbol | Trades | Win Rate | P/L |
|--------+--------+----------+-----|
{{- range .Assets}}
| {{.Key}} | {{.Trades}} | {{printf "%.0f" (mul100 .WinRate)}}% | {{printf "%.2f" .PnL}} |
{{- end}}
`
