package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "moap_dashboard/docs"
	"moap_dashboard/internal/adapter/http/routes"
	"moap_dashboard/internal/bootstrap"
	"moap_dashboard/internal/config"
	"moap_dashboard/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MOAP Dashboard API
// @version         1.0
// @description     Construction budget dashboard: materials, budgets, obras, visits, tenders and team collaboration.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  admin@moap.pt

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().WithError(err).Fatal("invalid configuration")
	}
	log := logger.Configure(cfg.LogLevel, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{Writer: true})
	if err != nil {
		log.WithError(err).Fatal("bootstrap failed")
	}

	runErr := routes.Run(ctx, app)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Close(closeCtx); err != nil {
		log.WithError(err).Error("flushing state on shutdown")
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("server stopped")
	}
}
