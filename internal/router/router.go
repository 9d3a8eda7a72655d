package router

import (
	"net/http"
	"time"

	_ "pet-boarding-ledger/docs"
	mem "pet-boarding-ledger/internal/adapters/storage/memory"
	"pet-boarding-ledger/internal/domain/calendar"
	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/middleware"
	"pet-boarding-ledger/internal/platform/logger"
	"pet-boarding-ledger/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil = sin logs
	Metrics *metrics.Metrics // nil = registry propio

	// Opcional: si no viene, in-memory.
	Repo ledger.Repository

	// Location define "hoy" para el dashboard y el mes por defecto del calendario.
	Location *time.Location
	Now      func() time.Time
	Money    pricing.Formatter

	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New(nil, nil)
	}
	repo := opts.Repo
	if repo == nil {
		repo = mem.NewLedgerRepo()
	}
	money := opts.Money
	if money.Prefix == "" {
		money = pricing.NewFormatter("")
	}
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.Observe(log, m.HTTP))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := ledger.NewService(repo)

	ledger.RegisterRoutes(r, svc, money)
	ledger.RegisterQuoteRoutes(r, svc, money)
	calendar.RegisterRoutes(r, svc, calendar.Options{
		Location: opts.Location,
		Now:      opts.Now,
		Money:    money,
	})

	return r
}
