package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/openquorum/ballot-service/internal/app"
	"github.com/openquorum/ballot-service/internal/config"
	"github.com/openquorum/ballot-service/utils"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/local.yaml"
	}

	cfg := config.Load(path)
	logger := utils.New(cfg.Env)

	application := app.NewApp(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := application.HTTPServer.Run(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("HTTP server closed gracefully")
			} else {
				log.Fatal("failed to run HTTP server", slog.String("error", err.Error()))
			}
		}
	}()

	application.StartCron()

	logger.Info("ballot service started",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.HTTP.Port),
	)

	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Fatal("failed to stop application", slog.String("error", err.Error()))
	}
}
