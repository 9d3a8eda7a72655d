package middleware

import (
	"net/http"
	"strconv"
	"time"

	"pet-boarding-ledger/internal/platform/logger"
	"pet-boarding-ledger/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Observe loguea cada request y alimenta los collectors HTTP.
// m o log pueden ser nil.
func Observe(log logger.Logger, m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			if m != nil {
				m.InFlight.Inc()
			}

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := "unknown"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}

			if m != nil {
				m.InFlight.Dec()
				m.ReqTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
				m.ReqDur.WithLabelValues(r.Method, route).Observe(metrics.DurationMillis(elapsed))
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": metrics.DurationMillis(elapsed),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}
