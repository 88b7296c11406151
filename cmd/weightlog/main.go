package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	adapthttp "weightlog/internal/adapter/http"
	"weightlog/internal/adapter/memory"
	"weightlog/internal/adapter/postgres"
	"weightlog/internal/adapter/sqlite"
	"weightlog/internal/app"
	"weightlog/internal/config"
	"weightlog/internal/domain"
	"weightlog/internal/logging"
	"weightlog/internal/metrics"
	"weightlog/internal/sample"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})

	loc, _ := cfg.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	repo, closer, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("open %s backend: %v", cfg.DataBackend, err)
	}
	defer func() { _ = closer.Close() }()

	ctx := context.Background()
	if cfg.SeedSample {
		if err := seedIfEmpty(ctx, repo, clock(), cfg.SampleSeed); err != nil {
			log.Fatalf("seed sample data: %v", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewManager("weightlog", "server", reg)

	h := adapthttp.New(
		app.NewEntryService(repo),
		app.NewChartsService(repo),
		app.NewShareService(repo),
		m, reg,
	).WithClock(clock).Handler()

	srv := &http.Server{Addr: cfg.Addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (backend=%s, tz=%s)", cfg.Addr, cfg.DataBackend, loc)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case err := <-serveErr:
		log.Errorf("http server: %v", err)
		return
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func openRepository(cfg *config.Config) (domain.EntryRepository, io.Closer, error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return memory.New(), closerFunc(func() error { return nil }), nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func seedIfEmpty(ctx context.Context, repo domain.EntryRepository, now time.Time, seed int64) error {
	existing, err := repo.ListEntries(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	if seed == 0 {
		seed = now.UnixNano()
	}
	entries := sample.Generate(now, seed)
	log.WithField("count", len(entries)).Info("seeding sample entries")
	return sample.Seed(ctx, repo, entries)
}
