package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/stockdesk/internal/client/cli"
	"github.com/dmitrijs2005/stockdesk/internal/client/config"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return
	}

	app.Run(ctx)

}
