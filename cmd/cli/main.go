package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/taskboard/internal/buildinfo"
	"github.com/dmitrijs2005/taskboard/internal/client/cli"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/storage"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	repo, closeStorage, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, repo, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error(ctx, err.Error())
		return
	}

	// Run blocks on stdin, so a signal ends main without waiting for it.
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Info(context.Background(), "interrupted, shutting down")
	}
}
