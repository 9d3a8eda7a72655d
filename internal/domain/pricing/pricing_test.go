package pricing

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStayFee(t *testing.T) {
	require.InDelta(t, 105.0, StayFee(35, 3, 0), 1e-9)
	require.Equal(t, 94.5, StayFee(35, 3, 10))
	require.Equal(t, 0.0, StayFee(35, 3, 100))
	require.Equal(t, 0.0, StayFee(35, 3, 150), "factor floors at 0")
	require.Equal(t, 115.5, StayFee(35, 3, -10), "negative discount is not clamped")
	require.Equal(t, -105.0, StayFee(-35, 3, 0), "negative price multiplies through")
}

func TestStayFee_NonFiniteInputsAreZero(t *testing.T) {
	require.Equal(t, 0.0, StayFee(math.NaN(), 3, 0))
	require.Equal(t, 105.0, StayFee(35, 3, math.Inf(1)))
}

func TestVisitFee(t *testing.T) {
	require.Equal(t, 60.0, VisitFee(20, 3))
	require.Equal(t, 0.0, VisitFee(20, 0))
	require.Equal(t, 0.0, VisitFee(math.Inf(-1), 4))
}

func TestDiscountFactor(t *testing.T) {
	require.Equal(t, "0.9", DiscountFactor(10).String())
	require.Equal(t, "1", DiscountFactor(0).String())
	require.Equal(t, "0", DiscountFactor(250).String())
}

func TestSum(t *testing.T) {
	require.Equal(t, 0.3, Sum(0.1, 0.2))
	require.Equal(t, 5.0, Sum(5, math.NaN()))
}

func TestAmount_UnmarshalLenient(t *testing.T) {
	var in struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
		E Amount `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 35, "b": "12.5", "c": "abc", "d": null, "e": ""}`), &in)
	require.NoError(t, err)
	require.Equal(t, 35.0, in.A.Float64())
	require.Equal(t, 12.5, in.B.Float64())
	require.Equal(t, 0.0, in.C.Float64())
	require.Equal(t, 0.0, in.D.Float64())
	require.Equal(t, 0.0, in.E.Float64())
}

func TestCoerce(t *testing.T) {
	require.Equal(t, 7.0, Coerce(" 7 "))
	require.Equal(t, 0.0, Coerce("NaN"))
	require.Equal(t, 0.0, Coerce("Inf"))
	require.Equal(t, 0.0, Coerce("1,5"))
}

func TestFormatCurrency(t *testing.T) {
	require.Equal(t, "A$94.5", FormatCurrency(94.5))
	require.Equal(t, "A$1,234,567", FormatCurrency(1234567))
	require.Equal(t, "A$0.3", FormatCurrency(0.1+0.2))
	require.Equal(t, "A$1.235", FormatCurrency(1.23456))
	require.Equal(t, "A$0", FormatCurrency(math.NaN()))

	f := NewFormatter("¥")
	require.Equal(t, "¥12,000", f.Format(12000))
	require.Equal(t, "A$5", NewFormatter("  ").Format(5))
}
