package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/occlusa/dental-web/internal/content"
	"github.com/occlusa/dental-web/internal/handlers"
	"github.com/occlusa/dental-web/internal/images"
	"github.com/occlusa/dental-web/internal/platform/config"
	"github.com/occlusa/dental-web/internal/platform/observability"
	"github.com/occlusa/dental-web/internal/store"
)

const (
	shutdownTimeout  = 15 * time.Second
	compressionLevel = 5
)

func main() {
	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, baseLogger.Named("web"))
	stop()
	if err != nil {
		baseLogger.Error("content api stopped", zap.Error(err))
	}
	_ = baseLogger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run serves the content API until ctx is cancelled. Every resource opened here is
// closed before it returns.
func run(ctx context.Context, logger *zap.Logger) error {
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	client, closeStore, err := store.Open(ctx, cfg, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("initialise content store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close content store", zap.Error(err))
		}
	}()

	resolver := content.New(client,
		content.WithLogger(logger.Named("content")),
		content.WithImages(images.NewBuilder(cfg.Store.ProjectID, cfg.Store.Dataset, cfg.Images.BaseURL)),
		content.WithTimeout(cfg.Store.Timeout),
	)

	router := handlers.NewRouter(
		handlers.WithLogger(logger),
		handlers.WithTimeout(cfg.Server.WriteTimeout),
		handlers.WithMiddlewares(middleware.Compress(compressionLevel)),
		handlers.WithContentRoutes(handlers.NewContentHandlers(resolver).Routes),
		handlers.WithJSONLDRoutes(handlers.NewJSONLDHandlers(resolver, cfg.Site.BaseURL).Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	serveErr := make(chan error, 1)
	go func() {
		serverLogger.Info("content api listening",
			zap.String("store_backend", cfg.Store.Backend),
			zap.String("cache_backend", cfg.Cache.Backend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
