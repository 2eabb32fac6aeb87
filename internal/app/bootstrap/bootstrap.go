package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	contactservice "apikit/contexts/directory/contact-service"
	contactpostgres "apikit/contexts/directory/contact-service/adapters/postgres"
	contacthttp "apikit/contexts/directory/contact-service/transport/http"
	"apikit/internal/platform/config"
	"apikit/internal/platform/db"
	"apikit/internal/platform/httpserver"
	"apikit/internal/shared/messages"
	"apikit/internal/shared/response"

	"golang.org/x/sync/errgroup"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	watcher  *messages.Watcher
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return BuildAPIFromConfig(ctx, cfg, slog.Default())
}

// BuildAPIFromConfig wires the API against cfg. Without a Postgres DSN the
// contact service runs on the in-memory store.
func BuildAPIFromConfig(ctx context.Context, cfg config.Config, base *slog.Logger) (*APIApp, error) {
	if base == nil {
		base = slog.Default()
	}
	logger := base.With("service", cfg.ServiceName, "process", "api")

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	store := messages.NewStore(catalog)

	app := &APIApp{logger: logger}
	if cfg.WatchMessages {
		app.watcher, err = messages.NewWatcher(cfg.MessagesPath, cfg.DefaultLocale, store,
			messages.WithWatcherLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("message catalog watcher: %w", err)
		}
	}

	registry := response.NewRegistry()
	contacthttp.RegisterResources(registry)
	normalizer := response.NewNormalizer(registry,
		response.WithCatalog(store),
		response.WithLogger(logger),
	)

	module, err := app.buildContacts(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app.server = httpserver.New(module, normalizer, logger, normalizeAddr(cfg.HTTPPort))
	return app, nil
}

func (a *APIApp) buildContacts(ctx context.Context, cfg config.Config, logger *slog.Logger) (contactservice.Module, error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("postgres dsn not set, contacts are kept in memory",
			"event", "bootstrap_contacts_in_memory",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		return contactservice.NewInMemoryModule(nil, logger), nil
	}

	pg, err := db.Connect(ctx, cfg.PostgresDSN, db.PoolConfig{})
	if err != nil {
		return contactservice.Module{}, err
	}
	if cfg.AutoMigrate {
		if err := pg.Migrate(ctx, contactpostgres.Models()...); err != nil {
			_ = pg.Close()
			return contactservice.Module{}, err
		}
	}
	a.postgres = pg

	return contactservice.NewModule(contactservice.Dependencies{
		Contacts:    contactpostgres.NewRepository(pg.DB, logger),
		Clock:       contactpostgres.SystemClock{},
		IDGenerator: contactpostgres.UUIDGenerator{},
		Logger:      logger,
	}), nil
}

func loadCatalog(cfg config.Config) (*messages.Bundle, error) {
	if cfg.MessagesPath == "" {
		return messages.Default(cfg.DefaultLocale)
	}
	return messages.Load(cfg.MessagesPath, cfg.DefaultLocale)
}

// Run serves HTTP, and watches the message catalog when enabled, until ctx
// is cancelled or either stops with an error.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"catalog_watch", a.watcher != nil,
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return a.server.Start(groupCtx)
	})
	if a.watcher != nil {
		group.Go(func() error {
			return a.watcher.Run(groupCtx)
		})
	}
	return group.Wait()
}

func (a *APIApp) Server() *httpserver.Server {
	return a.server
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.Contains(value, ":") {
		return value
	}
	return ":" + value
}
