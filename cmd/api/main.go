package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "patitas-eternas/docs"
	"patitas-eternas/internal/config"
	"patitas-eternas/internal/platform/logger"
	"patitas-eternas/internal/platform/metrics"
	"patitas-eternas/internal/router"
)

// @title Patitas Eternas API
// @version 1.0
// @description API de adopción de mascotas: catálogo, solicitudes, cuentas, donaciones e imágenes.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backends, err := router.OpenBackends(ctx, cfg, log)
	if err != nil {
		log.Error("backends error", map[string]any{"err": err})
		os.Exit(1)
	}

	verifier, err := router.NewVerifier(cfg)
	if err != nil {
		log.Error("auth verifier error", map[string]any{"err": err})
		os.Exit(1)
	}
	if verifier == nil {
		log.Warn("no auth verifier configured; accepting debug headers (dev mode)", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:  verifier,
		Backends:      backends,
		Logger:        log,
		Metrics:       metrics.New(),
		RatePerSecond: cfg.Limits.RatePerSecond,
		Burst:         cfg.Limits.Burst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"err": err})
	}
	if err := backends.Close(shutdownCtx); err != nil {
		log.Error("closing backends", map[string]any{"err": err})
	}
}
