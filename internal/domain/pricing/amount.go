package pricing

import (
	"strconv"
	"strings"
)

// Amount es un número que viene de formularios: acepta JSON numérico o string.
// Lo que no se pueda interpretar vale 0; nunca devuelve error al decodificar.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(Coerce(string(b)))
	return nil
}

func (a Amount) Float64() float64 {
	return finite(float64(a))
}

// Coerce interpreta s como número; vacío, "null" o texto inválido devuelven 0.
func Coerce(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(v)
}
