package mindora

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/mindora/mindora/internal/cache"
	"github.com/mindora/mindora/internal/config"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/migrations"
	"github.com/mindora/mindora/internal/services/auth"
	"github.com/mindora/mindora/internal/services/journal"
	"github.com/mindora/mindora/internal/services/mood"
	"github.com/mindora/mindora/internal/services/session"
	"github.com/mindora/mindora/internal/services/support"
	"github.com/mindora/mindora/internal/storage"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-приложение со всеми зависимостями.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New подключается к PostgreSQL и Redis, применяет миграции, заполняет
// каталог статей и собирает HTTP-сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "mindora.New"

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	version, err := migrations.Run(db.DB, cfg.MigrationsPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("migrations applied", slog.Uint64("version", uint64(version)))

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sessions := session.NewManager(cacheRedis, cfg.Session.TTL, logger)
	supportService := support.NewService(db, cacheRedis, cfg.CacheTTL, logger)
	if _, err := supportService.SeedDefaults(ctx); err != nil {
		logger.Error("failed to seed support articles", sl.Err(err))
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, Services{
		Auth:     auth.NewService(db, sessions, logger),
		Sessions: sessions,
		Moods:    mood.NewService(db, logger),
		Journal:  journal.NewService(db, logger),
		Support:  supportService,
		Health:   db,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает сервер и блокируется до отмены ctx, после чего корректно
// завершает обработку запросов и закрывает соединения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
