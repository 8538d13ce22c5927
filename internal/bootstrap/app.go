// Package bootstrap assembles the store, its persistence and the use cases
// shared by the API server and the admin CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"moap_dashboard/internal/adapter/persistence/memory"
	"moap_dashboard/internal/adapter/persistence/repository"
	"moap_dashboard/internal/adapter/persistence/snapshot"
	"moap_dashboard/internal/config"
	"moap_dashboard/internal/domain/idgen"
	"moap_dashboard/internal/infrastructure/export"
	"moap_dashboard/internal/infrastructure/logger"
	"moap_dashboard/internal/infrastructure/metrics"
	"moap_dashboard/internal/infrastructure/pricing"
	"moap_dashboard/internal/usecase"
	"moap_dashboard/internal/usecase/interfaces"
)

// Options tune what New wires. Nil fields fall back to the configured
// implementations.
type Options struct {
	// Writer attaches the debounced snapshot writer to the store.
	Writer bool
	// KV replaces the backend selected by the configuration.
	KV interfaces.IKeyValueStore
	// Gateway replaces the configured price provider client.
	Gateway interfaces.IPriceGateway
	Clock   idgen.Clock
}

// App holds the wired dependencies.
type App struct {
	Config    config.Config
	Store     *memory.Store
	Snapshots *snapshot.Repository
	Writer    *snapshot.Writer
	Metrics   *metrics.Metrics

	Auth          *usecase.AuthUseCase
	Notifications *usecase.NotificationUseCase
	Materials     *usecase.MaterialUseCase
	PriceSync     *usecase.PriceSyncUseCase
	Budgets       *usecase.BudgetUseCase
	Obras         *usecase.ObraUseCase
	Visitas       *usecase.VisitaUseCase
	Concursos     *usecase.ConcursoUseCase
	Users         *usecase.UserUseCase
	Messages      *usecase.MessageUseCase
	Invitations   *usecase.InvitationUseCase
	Dashboard     *usecase.DashboardUseCase
	Snapshot      *usecase.SnapshotUseCase

	closeKV func() error
}

// New opens the key-value backend, rebuilds the store from the last snapshot
// and wires every use case against it.
func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	log := logger.For("bootstrap")

	kv, closeKV := opts.KV, func() error { return nil }
	if kv == nil {
		var err error
		kv, closeKV, err = repository.OpenKeyValueStore(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("opening %s key-value store: %w", cfg.PersistenceDriver, err)
		}
	}

	store := memory.New()
	if cfg.SeedOnStart {
		store.Seed()
	} else {
		store.SeedRoster()
	}
	snapRepo := snapshot.NewRepository(kv, cfg.PersistenceKey, logger.For("snapshot.repository"))
	if snap, ok := snapRepo.Load(ctx); ok {
		store.Restore(snap)
		log.WithField("key", snapRepo.Key()).Info("state restored from snapshot")
	}

	m := metrics.New()
	store.Subscribe(func(c memory.Change) {
		m.RecordMutation(c.Collection, string(c.Op), c.Count)
	})

	var writer *snapshot.Writer
	if opts.Writer {
		writer = snapshot.NewWriter(snapRepo, store, cfg.PersistenceDebounce, logger.For("snapshot.writer")).WithObserver(m)
		writer.Attach(store)
	}

	auth, err := usecase.NewAuthUseCase(kv, usecase.AuthConfig{
		Username:   cfg.AdminUsername,
		Password:   cfg.AdminPassword,
		SessionKey: cfg.SessionKey,
	}, logger.For("usecase.auth"))
	if err != nil {
		_ = closeKV()
		return nil, err
	}
	auth.Restore(ctx)

	gateway := opts.Gateway
	if gateway == nil {
		gateway = newPriceGateway(cfg, logger.For("pricing.gateway"))
	}

	ids := idgen.UUIDGenerator{}
	clock := opts.Clock
	if clock == nil {
		clock = idgen.SystemClock{}
	}

	notifications := usecase.NewNotificationUseCase(store.Notifications(), ids, clock, logger.For("usecase.notification"))
	app := &App{
		Config:        cfg,
		Store:         store,
		Snapshots:     snapRepo,
		Writer:        writer,
		Metrics:       m,
		Auth:          auth,
		Notifications: notifications,
		Materials:     usecase.NewMaterialUseCase(store.Materials(), notifications, ids, clock),
		PriceSync:     usecase.NewPriceSyncUseCase(store.Materials(), gateway, notifications, m, clock, logger.For("usecase.price_sync")),
		Budgets:       usecase.NewBudgetUseCase(store.Budgets(), store.Materials(), store.Obras(), notifications, export.NewXLSXBudgetExporter(), ids, clock),
		Obras:         usecase.NewObraUseCase(store.Obras(), store.Budgets(), store.Visitas(), store.Users(), notifications, ids, clock),
		Visitas:       usecase.NewVisitaUseCase(store.Visitas(), store.Obras(), notifications, ids),
		Concursos:     usecase.NewConcursoUseCase(store.Concursos(), store.Users(), notifications, clock),
		Users:         usecase.NewUserUseCase(store.Users()),
		Messages:      usecase.NewMessageUseCase(store.Conversations(), store.Messages(), auth, ids, clock),
		Invitations:   usecase.NewInvitationUseCase(store.Invitations(), notifications, auth, ids, clock),
		Dashboard:     usecase.NewDashboardUseCase(store.Obras(), store.Budgets(), store.Visitas(), store.Conversations(), store.Notifications()),
		Snapshot:      usecase.NewSnapshotUseCase(store, snapRepo, writer),
		closeKV:       closeKV,
	}
	return app, nil
}

// newPriceGateway keeps a nil client when the provider is not configured; the
// gateway then reports ErrPriceGatewayNotConfigured on every sync.
func newPriceGateway(cfg config.Config, log *logrus.Entry) interfaces.IPriceGateway {
	g, err := pricing.NewMarketPriceGateway(pricing.Config{
		Endpoint: cfg.PriceSyncEndpoint,
		Mock:     cfg.PriceSyncMock,
		Timeout:  cfg.PriceSyncTimeout,
	}, log)
	if err != nil {
		log.WithError(err).Warn("price provider not configured")
	}
	return g
}

// Close flushes pending state and releases the key-value backend.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Writer != nil {
		if err := a.Writer.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing snapshot: %w", err))
		}
	}
	if a.closeKV != nil {
		if err := a.closeKV(); err != nil {
			errs = append(errs, fmt.Errorf("closing key-value store: %w", err))
		}
	}
	return errors.Join(errs...)
}
