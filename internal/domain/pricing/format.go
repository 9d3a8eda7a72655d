package pricing

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const DefaultCurrencyPrefix = "A$"

// Formatter arma el texto de moneda para mostrar. No modifica el monto guardado.
type Formatter struct {
	Prefix string
}

func NewFormatter(prefix string) Formatter {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultCurrencyPrefix
	}
	return Formatter{Prefix: prefix}
}

// Format agrupa miles y deja hasta 3 decimales: 1234.5 -> "A$1,234.5".
func (f Formatter) Format(v float64) string {
	rounded := decimal.NewFromFloat(finite(v)).Round(3).InexactFloat64()
	return f.Prefix + humanize.Commaf(rounded)
}

func FormatCurrency(v float64) string {
	return NewFormatter(DefaultCurrencyPrefix).Format(v)
}
