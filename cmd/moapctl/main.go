package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"moap_dashboard/internal/bootstrap"
	"moap_dashboard/internal/cli"
	"moap_dashboard/internal/config"
	"moap_dashboard/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.Configure(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Commands save synchronously, so the debounced writer stays off.
	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	defer app.Close(context.Background())

	root := cli.NewRootCmd(&cli.App{
		Snapshot:  app.Snapshot,
		Dashboard: app.Dashboard,
		Budgets:   app.Budgets,
	})
	return root.ExecuteContext(ctx)
}
