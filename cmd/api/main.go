package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/almashriq-motors/dealership-backend/api/routes"
	"github.com/almashriq-motors/dealership-backend/internal/cars"
	"github.com/almashriq-motors/dealership-backend/internal/contacts"
	"github.com/almashriq-motors/dealership-backend/internal/uploads"
	"github.com/almashriq-motors/dealership-backend/pkg/config"
	"github.com/almashriq-motors/dealership-backend/pkg/db"
	"github.com/almashriq-motors/dealership-backend/pkg/logger"
	"github.com/almashriq-motors/dealership-backend/pkg/metrics"
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

	var (
		dbPinger    db.Pinger
		carRepo     cars.Repository
		contactRepo contacts.Repository
	)
	if cfg.DB.IsMemory() {
		carRepo = cars.NewMemoryRepository()
		contactRepo = contacts.NewMemoryRepository()
	} else {
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
		dbPinger = dbClient

		if carRepo, err = cars.NewGormRepository(dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to create car repository", err)
			os.Exit(1)
		}
		if contactRepo, err = contacts.NewGormRepository(dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to create contact repository", err)
			os.Exit(1)
		}
	}

	carService, err := cars.NewService(carRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create car service", err)
		os.Exit(1)
	}
	contactService, err := contacts.NewService(contactRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}
	uploadService, err := uploads.NewService(cfg.Media)
	if err != nil {
		logg.Error(context.Background(), "failed to create upload service", err)
		os.Exit(1)
	}

	if cfg.Catalog.SeedSampleData {
		seeded, err := cars.SeedSampleData(context.Background(), carService)
		if err != nil {
			logg.Error(context.Background(), "failed to seed sample catalog", err)
			os.Exit(1)
		}
		if seeded > 0 {
			ctx := logg.WithField(context.Background(), "count", seeded)
			logg.Info(ctx, "sample catalog seeded")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": cfg.DB.Driver,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, dbPinger, registry, httpMetrics,
			carService, contactService, uploadService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
