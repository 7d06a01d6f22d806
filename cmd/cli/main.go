package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/noclaf/internal/client/cli"
	"github.com/dmitrijs2005/noclaf/internal/client/client"
	"github.com/dmitrijs2005/noclaf/internal/client/config"
	"github.com/dmitrijs2005/noclaf/internal/client/services"
	"github.com/dmitrijs2005/noclaf/internal/client/session"
	"github.com/dmitrijs2005/noclaf/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	store, err := session.NewStore(ctx, session.NewSQLiteBackend(db), logger)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	apiClient, err := client.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		log.Fatalf("http client: %v", err)
	}

	app := cli.NewApp(
		services.NewAuthService(apiClient, store, logger),
		services.NewResourceService(apiClient, store, logger),
		logger,
	)
	app.Run(ctx)
}
