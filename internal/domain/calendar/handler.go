package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/pricing"

	"github.com/go-chi/chi/v5"
)

// Options: Location es la zona del negocio (define "hoy" y el mes por defecto).
type Options struct {
	Location *time.Location
	Now      func() time.Time
	Money    pricing.Formatter
}

func (o Options) today() time.Time {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// SnapshotSource es lo único que el calendario necesita del ledger.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (ledger.Snapshot, error)
}

func RegisterRoutes(r chi.Router, src SnapshotSource, opts Options) {
	r.Get("/calendar", monthHandler(src, opts))
	r.Get("/calendar.ics", icsHandler(src, opts))
	r.Get("/dashboard", dashboardHandler(src, opts))
}

// monthHandler godoc
// @Summary Vista mensual del calendario
// @Description Devuelve la grilla del mes (celdas vacías iniciales + un día por celda) con estadías, visitas y marcas de cuidado. Sin month usa el mes actual.
// @Tags calendar
// @Produce json
// @Param month query string false "Mes YYYY-MM"
// @Success 200 {object} MonthView
// @Failure 400 {string} string "month must be YYYY-MM"
// @Router /calendar [get]
func monthHandler(src SnapshotSource, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, err := parseMonth(r.URL.Query().Get("month"), opts.today())
		if err != nil {
			http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
			return
		}

		snap, err := src.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, AggregateMonth(year, month, snap))
	}
}

// icsHandler godoc
// @Summary Feed ICS
// @Description Calendario suscribible con estadías, visitas y marcas de cuidado como eventos de día completo.
// @Tags calendar
// @Produce text/calendar
// @Success 200 {string} string "VCALENDAR"
// @Router /calendar.ics [get]
func icsHandler(src SnapshotSource, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := src.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(ExportICS(snap, opts.Money, opts.today())))
	}
}

type dashboardResponse struct {
	Summary
	RevenueLabel string `json:"revenue_label"`
}

// dashboardHandler godoc
// @Summary Resumen del mes en curso
// @Description Ingresos, cantidad de estadías y de visitas cuyo inicio cae en el mes actual. No depende del mes que se esté navegando en el calendario.
// @Tags calendar
// @Produce json
// @Success 200 {object} dashboardResponse
// @Router /dashboard [get]
func dashboardHandler(src SnapshotSource, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := src.Snapshot(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		s := MonthlySummary(opts.today(), snap.Stays, snap.Visits)
		writeJSON(w, http.StatusOK, dashboardResponse{
			Summary:      s,
			RevenueLabel: opts.Money.Format(s.Revenue),
		})
	}
}

func parseMonth(s string, today time.Time) (int, time.Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return today.Year(), today.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
