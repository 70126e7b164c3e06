package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ratechat/ratechat-server/internal/config"
	"github.com/ratechat/ratechat-server/internal/core"
	"github.com/ratechat/ratechat-server/internal/exchange"
	"github.com/ratechat/ratechat-server/internal/store"
	"github.com/ratechat/ratechat-server/internal/store/filelog"
	"github.com/ratechat/ratechat-server/internal/store/sqlite"
	transporthttp "github.com/ratechat/ratechat-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	audit           store.AuditStore
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	audit, err := newAuditStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("init audit store: %w", err)
	}
	logger.Info().Str("backend", cfg.AuditBackend).Msg("audit store initialized")

	rates := exchange.NewClient(cfg.ExchangeAPIURL, cfg.ExchangeTimeout, logger)
	dates := exchange.NewDateValidator(cfg.MaxLookbackDays)

	hub := core.NewHub(logger)
	router := core.NewRouter(rates, dates, audit, logger)
	server := transporthttp.NewServer(hub, router, *cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		audit:           audit,
		log:             logger,
	}, nil
}

func newAuditStore(cfg *config.Config) (store.AuditStore, error) {
	switch cfg.AuditBackend {
	case config.AuditBackendSQLite:
		return sqlite.New(cfg.DatabasePath)
	case config.AuditBackendFile:
		return filelog.New(cfg.AuditPath)
	default:
		return nil, fmt.Errorf("unknown audit backend %q", cfg.AuditBackend)
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the audit store and other resources.
func (a *App) cleanup() {
	if a.audit != nil {
		if err := a.audit.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close audit store")
		} else {
			a.log.Info().Msg("audit store closed")
		}
	}
}
