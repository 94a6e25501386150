// Package main is the entry point for the currency conversion service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thehungrycoder225/convertsvc/internal/config"
	"github.com/thehungrycoder225/convertsvc/internal/engine"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	engine     *engine.Engine
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initEngine(); err != nil {
		return nil, err
	}
	app.initHTTP(app.engine)

	return app, nil
}

// initEngine builds the immutable rate table and the conversion engine over it.
// The table is loaded once at startup and never mutated afterwards.
func (app *App) initEngine() error {
	entries := ratesFromConfig(app.cfg)

	table, skipped, err := engine.NewRateTable(entries)
	if err != nil {
		return fmt.Errorf("build rate table: %w", err)
	}
	for _, s := range skipped {
		app.logger.Warnw("Skipping rate entry without a usable multiplier",
			"base", s.Base, "quote", s.Quote, "rate", s.Rate)
	}
	if table.Len() == 0 {
		return fmt.Errorf("rate table is empty: every configured entry was skipped")
	}

	app.engine = engine.New(table)
	app.logger.Infow("Rate table loaded", "pairs", table.Len(), "skipped", len(skipped))
	return nil
}

// ratesFromConfig returns the configured rate entries, falling back to the
// built-in defaults when the config file defines none.
func ratesFromConfig(cfg *config.Config) []engine.Rate {
	if len(cfg.Rates) == 0 {
		return engine.DefaultRates()
	}
	entries := make([]engine.Rate, 0, len(cfg.Rates))
	for _, r := range cfg.Rates {
		entries = append(entries, engine.Rate{Base: r.Base, Quote: r.Quote, Rate: r.Rate})
	}
	return entries
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or component failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting new HTTP requests and drains in-flight ones.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
