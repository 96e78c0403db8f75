package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/metrics"
	"github.com/passgen/passgen-go/internal/repository"
	"github.com/passgen/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closer := openStatsStore(ctx, cfg)
	defer closer.Close()

	m := metrics.New()
	statsService := service.NewStatsService(store, m)
	genService := service.NewGeneratorService(crypto.NewGenerator(nil), statsService, service.GeneratorConfig{
		MinLength:     cfg.MinLength,
		MaxLength:     cfg.MaxLength,
		DefaultLength: cfg.DefaultLength,
		LegacyPatch:   cfg.LegacyPatch,
	})
	strengthService := service.NewStrengthService(statsService)
	authService := service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry)

	if !cfg.AdminEnabled() {
		slog.Warn("ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	r := handler.NewRouter(ctx, handler.RouterConfig{
		Service:        "passgen",
		Env:            cfg.Env,
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Generator:      handler.NewGeneratorHandler(genService),
		Strength:       handler.NewStrengthHandler(strengthService),
		Auth:           handler.NewAuthHandler(authService),
		Stats:          handler.NewStatsHandler(statsService),
		Web:            handler.NewWebHandler(genService),
		Metrics:        m.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "stats_backend", store.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStatsStore connects the configured backend. Connection failures fall
// back to the in-memory store so generation keeps working.
func openStatsStore(ctx context.Context, cfg config.Config) (repository.StatsStore, io.Closer) {
	switch cfg.StatsBackend {
	case config.BackendRedis:
		client, err := repository.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("redis connection failed, using in-memory stats", "error", err)
			break
		}
		return repository.NewRedisStatsRepository(client), client

	case config.BackendMySQL:
		db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, using in-memory stats", "error", err)
			break
		}
		repo := repository.NewMySQLStatsRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			slog.Warn("creating stats table failed, using in-memory stats", "error", err)
			db.Close()
			break
		}
		return repo, db
	}

	return repository.NewMemoryStatsRepository(), nopCloser{}
}
