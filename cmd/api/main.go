// @title Pet Boarding Ledger API
// @version 1.0
// @description Registro de dueños, gatos, estadías, visitas a domicilio y cuidados especiales de un hotel de gatos.
// @BasePath /
package main

//go:generate swag init -g main.go -d ./,../../internal -o ../../docs --outputTypes go

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-boarding-ledger/internal/adapters/storage/file"
	mem "pet-boarding-ledger/internal/adapters/storage/memory"
	pg "pet-boarding-ledger/internal/adapters/storage/postgres"
	"pet-boarding-ledger/internal/config"
	"pet-boarding-ledger/internal/domain/ledger"
	"pet-boarding-ledger/internal/domain/pricing"
	"pet-boarding-ledger/internal/platform/logger"
	"pet-boarding-ledger/internal/platform/metrics"
	"pet-boarding-ledger/internal/router"
	"pet-boarding-ledger/internal/scheduler"
)

func main() {
	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"path": cfgPath, "error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid timezone", map[string]any{"timezone": cfg.Timezone, "error": err.Error()})
		os.Exit(1)
	}

	repo, db, err := openRepo(cfg, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": cfg.Storage.Driver, "error": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	money := pricing.NewFormatter(cfg.CurrencyPrefix)
	m := metrics.New(nil, nil)

	r := router.NewRouter(router.Options{
		Logger:             log,
		Metrics:            m,
		Repo:               repo,
		Location:           loc,
		Money:              money,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	var digest *scheduler.Scheduler
	if cfg.DigestCron != "" {
		digest = scheduler.New(ledger.NewService(repo), scheduler.Options{
			Spec:     cfg.DigestCron,
			Location: loc,
			Money:    money,
			Metrics:  m.Ledger,
			Logger:   log,
		})
		if err := digest.Start(); err != nil {
			log.Error("scheduler start failed", map[string]any{"cron": cfg.DigestCron, "error": err.Error()})
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"storage":  cfg.Storage.Driver,
			"timezone": loc.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	if digest != nil {
		digest.Stop()
	}
	log.Info("server stopped", nil)
}

// openRepo elige el almacenamiento. Con postgres también devuelve el *sql.DB
// para cerrarlo al salir.
func openRepo(cfg *config.Config, log logger.Logger) (ledger.Repository, *sql.DB, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		repo, err := file.Open(cfg.Storage.DataFile, log)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	case config.DriverPostgres:
		db, err := pg.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pg.NewLedgerRepo(db), db, nil
	default:
		return mem.NewLedgerRepo(), nil, nil
	}
}
