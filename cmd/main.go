package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"affiliate-tracker/internal/adapter/cache"
	"affiliate-tracker/internal/adapter/events"
	"affiliate-tracker/internal/adapter/geoip"
	httpadapter "affiliate-tracker/internal/adapter/http"
	"affiliate-tracker/internal/adapter/memory"
	"affiliate-tracker/internal/adapter/postgres"
	"affiliate-tracker/internal/adapter/usecase"
	"affiliate-tracker/internal/adapter/worker"
	"affiliate-tracker/internal/config"
	"affiliate-tracker/internal/core/port"
	"affiliate-tracker/internal/db"
)

// main loads configuration, wires the store, cache, geo lookup and event
// publisher around the tracking use case, then serves HTTP and runs the
// retention worker until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("tracker stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("tracker stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i].Close()
		}
	}()

	deps := usecase.Dependencies{Logger: logger}

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		if cfg.SeedDemoData {
			if err := db.SeedStore(ctx, store, cfg.Fees.Split()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
		deps.Applications, deps.Ledger, deps.Analytics, deps.FraudChecks = store, store, store, store
		logger.Warn("using in-memory store; data is lost on restart")
	default:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		if cfg.SeedDemoData {
			if err := db.Seed(ctx, pool, cfg.Fees.Split()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
		deps.Applications = postgres.NewApplicationRepository(pool)
		deps.Ledger = postgres.NewLedgerRepository(pool)
		deps.Analytics = postgres.NewAnalyticsRepository(pool)
		deps.FraudChecks = postgres.NewFraudCheckRepository(pool)
	}

	if cfg.Redis.Enabled() {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("redis unavailable, tracking cache disabled", slog.Any("error", err))
		} else {
			closers = append(closers, client)
			deps.Applications = cache.NewCachedApplications(deps.Applications, client, cfg.Redis.TTL, logger)
		}
	}

	if cfg.GeoIP.DBPath != "" {
		locator, err := geoip.Open(cfg.GeoIP.DBPath, logger)
		if err != nil {
			logger.Warn("geoip disabled", slog.Any("error", err))
		} else {
			closers = append(closers, locator)
			deps.Geo = locator
		}
	}

	var publisher port.EventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		kp, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.BatchTimeout)
		if err != nil {
			return fmt.Errorf("kafka publisher: %w", err)
		}
		closers = append(closers, kp)
		publisher = kp
	}
	deps.Events = publisher

	svc := usecase.NewTrackingUseCase(deps, usecase.Settings{
		RateLimitWindow:    cfg.Fraud.RateLimitWindow,
		RateLimitThreshold: cfg.Fraud.RateLimitThreshold,
		RepeatWindow:       cfg.Fraud.RepeatWindow,
		RepeatThreshold:    cfg.Fraud.RepeatThreshold,
		GeoLookupTimeout:   cfg.GeoIP.LookupTimeout,
		PublishTimeout:     cfg.Kafka.PublishTimeout,
		FeeSplit:           cfg.Fees.Split(),
		RetentionDays:      cfg.Retention.Days,
		RetentionBatchSize: cfg.Retention.BatchSize,
	})

	var limiter *httpadapter.IPRateLimiter
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter = httpadapter.NewIPRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	}
	ips, err := httpadapter.NewClientIPResolver(cfg.HTTP.TrustedProxies)
	if err != nil {
		return fmt.Errorf("http config: %w", err)
	}
	handler := httpadapter.NewHandler(svc, limiter, ips, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if limiter != nil {
		g.Go(func() error {
			limiter.RunSweeper(gctx, time.Minute)
			return nil
		})
	}

	if cfg.Retention.Interval > 0 {
		w := worker.NewRetentionWorker(logger, svc, cfg.Retention.Interval, cfg.Retention.Days)
		g.Go(func() error {
			if err := w.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
