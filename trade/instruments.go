// trade/instruments.go
package trade

type InstrumentMeta struct {
	Name       string
	Currency   string
	Multiplier float64 // price-distance to account-currency conversion
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {
		Name:       "EUR_USD",
		Currency:   "USD",
		Multiplier: 100000,
	},
	"GBP_USD": {
		Name:       "GBP_USD",
		Currency:   "USD",
		Multiplier: 100000,
	},
	"USD_JPY": {
		Name:       "USD_JPY",
		Currency:   "JPY",
		Multiplier: 1000,
	},
	"XAU_USD": {
		Name:       "XAU_USD",
		Currency:   "USD",
		Multiplier: 100,
	},
	"ES": {
		Name:       "ES",
		Currency:   "USD",
		Multiplier: 50,
	},
	"NQ": {
		Name:       "NQ",
		Currency:   "USD",
		Multiplier: 20,
	},
}

// MultiplierFunc resolves a symbol to its price-to-currency multiplier.
type MultiplierFunc func(symbol string) float64

// Multiplier returns the instrument's multiplier, or 1 for unknown symbols
// (stocks and anything priced directly in account currency).
func Multiplier(symbol string) float64 {
	if meta, ok := Instruments[symbol]; ok {
		return meta.Multiplier
	}
	return 1
}

// MultiplierWith overlays per-symbol overrides (from config) on the builtin
// instrument table.
func MultiplierWith(overrides map[string]float64) MultiplierFunc {
	return func(symbol string) float64 {
		if m, ok := overrides[symbol]; ok {
			return m
		}
		return Multiplier(symbol)
	}
}
