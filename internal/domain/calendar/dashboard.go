package calendar

import (
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/domain/schedule"
)

// Summary son los números del mes en curso.
type Summary struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Revenue     float64 `json:"revenue"`
	CatsCount   int     `json:"cats_count"` // estadías, no gatos distintos
	VisitsCount int     `json:"visits_count"`
}

// MonthlySummary filtra estadías y visitas cuyo start cae en el mes de today
// y suma sus fees. today debe venir ya en la zona horaria del negocio: el mes
// sale de today.Date(), no de UTC.
func MonthlySummary(today time.Time, stays []ledger.Stay, visits []ledger.Visit) Summary {
	year, month, _ := today.Date()
	out := Summary{Year: year, Month: int(month)}

	fees := make([]float64, 0, len(stays)+len(visits))
	for _, s := range stays {
		if schedule.InMonth(s.Start, year, month) {
			out.CatsCount++
			fees = append(fees, s.Fee)
		}
	}
	for _, v := range visits {
		if schedule.InMonth(v.Start, year, month) {
			out.VisitsCount++
			fees = append(fees, v.Fee)
		}
	}
	out.Revenue = pricing.Sum(fees...)
	return out
}
