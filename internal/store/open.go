package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/occlusa/dental-web/internal/platform/config"
)

// Open builds the Client selected by cfg, wrapped with the configured cache. The returned
// close function releases backend connections and is never nil.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Client, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	closers := []func() error{}
	closeAll := func() error {
		var first error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	var client Client
	switch cfg.Store.Backend {
	case config.BackendHTTP:
		httpClient, err := NewHTTPClient(HTTPOptions{
			ProjectID:  cfg.Store.ProjectID,
			Dataset:    cfg.Store.Dataset,
			APIVersion: cfg.Store.APIVersion,
			Token:      cfg.Store.Token,
			UseCDN:     cfg.Store.UseCDN,
			Timeout:    cfg.Store.Timeout,
		})
		if err != nil {
			return nil, closeAll, err
		}
		client = httpClient
	case config.BackendFirestore:
		fs := NewFirestoreClient(FirestoreOptions{
			ProjectID:    cfg.Firestore.ProjectID,
			EmulatorHost: cfg.Firestore.EmulatorHost,
		})
		closers = append(closers, fs.Close)
		client = fs
	case config.BackendFile:
		fileClient, err := NewFileClient(cfg.Store.ContentDir)
		if err != nil {
			return nil, closeAll, err
		}
		client = fileClient
	case config.BackendMemory:
		client = NewMemory()
	default:
		return nil, closeAll, fmt.Errorf("store: unknown backend %q", cfg.Store.Backend)
	}

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		client = NewCached(client, NewMemoryCache(), cfg.Cache.TTL, WithCacheLogger(logger))
	case config.CacheRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis cache unreachable at startup", zap.String("addr", cfg.Cache.RedisAddr), zap.Error(err))
		}
		closers = append(closers, rdb.Close)
		client = NewCached(client, NewRedisCache(rdb), cfg.Cache.TTL, WithCacheLogger(logger))
	}

	logger.Info("content store ready",
		zap.String("backend", cfg.Store.Backend),
		zap.String("cache", cfg.Cache.Backend),
	)
	return client, closeAll, nil
}
