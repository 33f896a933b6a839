package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/travelmate-app/backend/internal/adapter/postgres"
	categoryrepo "github.com/travelmate-app/backend/internal/adapter/postgres/category"
	threadrepo "github.com/travelmate-app/backend/internal/adapter/postgres/thread"
	translationrepo "github.com/travelmate-app/backend/internal/adapter/postgres/translation"
	"github.com/travelmate-app/backend/internal/config"
	catalogsvc "github.com/travelmate-app/backend/internal/service/catalog"
	threadsvc "github.com/travelmate-app/backend/internal/service/thread"
	translationsvc "github.com/travelmate-app/backend/internal/service/translation"
)

// App owns the database pool and the assembled services. Transport is out
// of scope here: whatever host process embeds App exposes the services.
type App struct {
	Log *slog.Logger

	Catalog      *catalogsvc.Service
	Threads      *threadsvc.Service
	Translations *translationsvc.Service

	pool *pgxpool.Pool
}

// New loads configuration, connects to the database, selects providers, and
// assembles the services.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	providers := BuildProviders(cfg, logger)

	categories := categoryrepo.New(pool)
	threads := threadrepo.New(pool)
	translations := translationrepo.New(pool)

	catalog := catalogsvc.NewService(logger, categories)

	return &App{
		Log:     logger,
		Catalog: catalog,
		Threads: threadsvc.NewService(logger, threads, translations, catalog, postgres.NewTxManager(pool), cfg.Limits),
		Translations: translationsvc.NewService(
			logger,
			translations,
			threads,
			catalog,
			providers.Translator,
			providers.CtxTranslator,
			providers.STT,
			providers.TTS,
			providers.Storage,
			cfg.Limits,
		),
		pool: pool,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}
