package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prasetya/siaklake/internal/config"
	"github.com/prasetya/siaklake/internal/dashboard"
	"github.com/prasetya/siaklake/internal/pkg/logger"
	"github.com/prasetya/siaklake/internal/warehouse"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	db, err := warehouse.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if cfg.Dashboard.JWTSecret != "" {
		auth := dashboard.NewAuthMiddleware(cfg.Dashboard.JWTSecret)
		token, err := auth.IssueToken("dashboard", 24*time.Hour)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to issue API token")
		}
		logger.Info().Str("token", token).Msg("Metrics API token (valid 24h)")
	}

	router := dashboard.NewRouter(cfg, db.Pool)

	server := &http.Server{
		Addr:         ":" + cfg.Dashboard.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Dashboard.Port).Msg("Dashboard listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down dashboard")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Dashboard stopped")
}
