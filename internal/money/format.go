package money

import "fmt"

// Formatter renders an amount for display. The boolean reports whether a
// rendering exists; callers display an empty string when it does not.
type Formatter interface {
	Format(m Money) (string, bool)
}

// symbols lists the currencies SymbolFormatter can render.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// SymbolFormatter renders amounts with a leading currency symbol, e.g.
// "$14.49". Unknown currencies yield no rendering rather than an error.
type SymbolFormatter struct {
	Currency string
}

func NewSymbolFormatter(currency string) SymbolFormatter {
	return SymbolFormatter{Currency: currency}
}

func (f SymbolFormatter) Format(m Money) (string, bool) {
	symbol, ok := symbols[f.Currency]
	if !ok {
		return "", false
	}

	sign := ""
	if m < 0 {
		sign = "-"
	}
	major, minor := m.Units()
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, major, minor), true
}
