package scheduler

import (
	"context"
	"time"

	"pet-boarding-ledger/internal/domain/calendar"
	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/platform/logger"
	"pet-boarding-ledger/internal/platform/metrics"

	"github.com/robfig/cron/v3"
)

// Scheduler corre el digest mensual: recalcula el resumen del mes en curso,
// actualiza los gauges y lo deja en el log.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	src     calendar.SnapshotSource
	metrics *metrics.LedgerMetrics
	money   pricing.Formatter
	loc     *time.Location
	now     func() time.Time
	log     logger.Logger
}

type Options struct {
	Spec     string // cron estándar de 5 campos
	Location *time.Location
	Money    pricing.Formatter
	Metrics  *metrics.LedgerMetrics
	Logger   logger.Logger
}

func New(src calendar.SnapshotSource, opts Options) *Scheduler {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		spec:    opts.Spec,
		src:     src,
		metrics: opts.Metrics,
		money:   opts.Money,
		loc:     loc,
		now:     time.Now,
		log:     log.With(map[string]any{"component": "digest"}),
	}
}

// Start agenda el digest y lo corre una vez al arrancar para que los gauges
// no queden en cero hasta el primer tick.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.log.Info("starting scheduler", map[string]any{"cron": s.spec, "timezone": s.loc.String()})
	s.run()
	s.cron.Start()
	return nil
}

// Stop espera a que termine un digest en curso.
func (s *Scheduler) Stop() {
	s.log.Info("stopping scheduler", nil)
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.Digest(ctx); err != nil {
		s.log.Error("digest failed", map[string]any{"error": err.Error()})
	}
}

// Digest calcula el resumen del mes actual en la zona del negocio.
func (s *Scheduler) Digest(ctx context.Context) (calendar.Summary, error) {
	snap, err := s.src.Snapshot(ctx)
	if err != nil {
		s.count("error")
		return calendar.Summary{}, err
	}

	sum := calendar.MonthlySummary(s.now().In(s.loc), snap.Stays, snap.Visits)

	if s.metrics != nil {
		s.metrics.MonthlyRevenue.Set(sum.Revenue)
		s.metrics.MonthlyStays.Set(float64(sum.CatsCount))
		s.metrics.MonthlyVisits.Set(float64(sum.VisitsCount))
	}
	s.count("ok")

	s.log.Info("monthly digest", map[string]any{
		"month":   calendar.MonthTitle(sum.Year, time.Month(sum.Month)),
		"revenue": s.money.Format(sum.Revenue),
		"stays":   sum.CatsCount,
		"visits":  sum.VisitsCount,
	})
	return sum, nil
}

func (s *Scheduler) count(result string) {
	if s.metrics != nil {
		s.metrics.DigestRuns.WithLabelValues(result).Inc()
	}
}
