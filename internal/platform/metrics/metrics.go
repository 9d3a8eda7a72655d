package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "boarding"

// HTTPMetrics agrupa los collectors de las requests HTTP.
type HTTPMetrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// LedgerMetrics refleja el resumen del mes en curso (lo actualiza el digest).
type LedgerMetrics struct {
	MonthlyRevenue prometheus.Gauge
	MonthlyStays   prometheus.Gauge
	MonthlyVisits  prometheus.Gauge
	DigestRuns     *prometheus.CounterVec
}

type Metrics struct {
	Registry *prometheus.Registry
	HTTP     *HTTPMetrics
	Ledger   *LedgerMetrics
}

// New registra todo en reg. Con reg nil crea un registry propio, así cada
// router (y cada test) tiene sus collectors sin chocar con el global.
func New(reg *prometheus.Registry, buckets []float64) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if len(buckets) == 0 {
		buckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500}
	} else {
		sort.Float64s(buckets)
	}

	h := &HTTPMetrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   buckets,
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
	}

	l := &LedgerMetrics{
		MonthlyRevenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monthly_revenue",
			Help:      "Revenue of stays and visits starting in the current month.",
		}),
		MonthlyStays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monthly_stays",
			Help:      "Stays starting in the current month.",
		}),
		MonthlyVisits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monthly_visits",
			Help:      "Home visit plans starting in the current month.",
		}),
		DigestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digest_runs_total",
			Help:      "Monthly digest executions by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		h.ReqTotal, h.ReqDur, h.InFlight,
		l.MonthlyRevenue, l.MonthlyStays, l.MonthlyVisits, l.DigestRuns,
	)

	return &Metrics{Registry: reg, HTTP: h, Ledger: l}
}

// DurationMillis convierte una duración a milisegundos para los histogramas.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
