package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"sogrinha/internal/app"
	"sogrinha/internal/config"
	"sogrinha/internal/logging"
	"sogrinha/internal/otel"
)

// @title Sogrinha API
// @version 0.1.0
// @description Privileged attachment bridge and records API of the sogrinha desktop shell.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.Location)

	if err := run(cfg, log); err != nil {
		log.Error("server_failed", zap.Error(err))
		_ = log.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer shutdown(context.Background())

	return app.Serve(ctx, cfg, log)
}
