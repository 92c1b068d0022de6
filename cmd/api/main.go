package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rewearhq/rewear-backend/api/routes"
	"github.com/rewearhq/rewear-backend/internal/auth"
	"github.com/rewearhq/rewear-backend/internal/items"
	"github.com/rewearhq/rewear-backend/internal/moderation"
	"github.com/rewearhq/rewear-backend/internal/points"
	"github.com/rewearhq/rewear-backend/internal/swaps"
	"github.com/rewearhq/rewear-backend/internal/users"
	"github.com/rewearhq/rewear-backend/pkg/auth/session"
	"github.com/rewearhq/rewear-backend/pkg/config"
	"github.com/rewearhq/rewear-backend/pkg/db"
	"github.com/rewearhq/rewear-backend/pkg/logger"
	"github.com/rewearhq/rewear-backend/pkg/metrics"
	"github.com/rewearhq/rewear-backend/pkg/migrate"
	"github.com/rewearhq/rewear-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	platformMetrics := metrics.NewPlatformMetrics(registry)

	usersRepo := users.NewRepository(dbClient.DB())

	pointsService, err := points.NewService(dbClient, points.NewRepository(dbClient.DB()), platformMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create points service", err)
		os.Exit(1)
	}

	itemsService, err := items.NewService(dbClient, items.NewRepository(dbClient.DB()), pointsService, cfg.Points)
	if err != nil {
		logg.Error(context.Background(), "failed to create items service", err)
		os.Exit(1)
	}

	swapsService, err := swaps.NewService(dbClient, swaps.NewRepository(dbClient.DB()), pointsService, cfg.Points, platformMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create swaps service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		DB:             dbClient,
		Users:          usersRepo,
		Points:         pointsService,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Awards:         cfg.Points,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	moderationService, err := moderation.NewService(usersRepo, itemsService, swapsService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create moderation service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			sessionManager,
			registry,
			authService,
			usersRepo,
			itemsService,
			swapsService,
			pointsService,
			moderationService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
