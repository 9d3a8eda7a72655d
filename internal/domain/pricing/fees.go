package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// DiscountFactor = max(0, 1 - pct/100).
// pct no se recorta a [0,100]: validar el rango es responsabilidad de quien llama.
func DiscountFactor(discountPercent float64) decimal.Decimal {
	f := one.Sub(decimal.NewFromFloat(finite(discountPercent)).Div(hundred))
	if f.IsNegative() {
		return decimal.Zero
	}
	return f
}

// StayFee = unitPrice × days × DiscountFactor(discountPercent).
// Un unitPrice negativo se multiplica igual; entradas no finitas valen 0.
func StayFee(unitPrice float64, days int, discountPercent float64) float64 {
	return decimal.NewFromFloat(finite(unitPrice)).
		Mul(decimal.NewFromInt(int64(days))).
		Mul(DiscountFactor(discountPercent)).
		InexactFloat64()
}

// VisitFee = unitPrice × count. Las visitas no llevan descuento del dueño.
func VisitFee(unitPrice float64, count int) float64 {
	return decimal.NewFromFloat(finite(unitPrice)).
		Mul(decimal.NewFromInt(int64(count))).
		InexactFloat64()
}

// Sum suma montos tratando NaN/Inf como 0.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(finite(v)))
	}
	return total.InexactFloat64()
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
