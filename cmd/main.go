package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"house_price/internal/application"
	"house_price/internal/config"
	"house_price/pkg/contextx"
	"house_price/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.New(os.Stdout, cfg.App.LogLevel, cfg.App.Name, cfg.App.Version)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
