package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/config"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/dataset"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yml", "path to the YAML config file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting Tanzania Political Sentiment Dashboard...")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to resolve dataset timezone", zap.Error(err))
	}

	// The dataset is loaded exactly once; a changed file on disk is not
	// observed until restart.
	store, err := dataset.Open(cfg.Dataset.Path, loc, logger)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.NewServer(store, loc, logger)
	if err := srv.Run(ctx, cfg.Server.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}

	logger.Info("Server exited")
}
