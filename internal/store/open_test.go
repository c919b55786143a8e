package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/occlusa/dental-web/internal/platform/config"
)

func TestOpenSelectsBackendAndCache(t *testing.T) {
	cfg := config.Config{
		Store: config.StoreConfig{Backend: config.BackendMemory},
		Cache: config.CacheConfig{Backend: config.CacheMemory, TTL: 1},
	}
	client, closeFn, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.IsType(t, &Cached{}, client)
	require.NoError(t, closeFn())

	cfg.Cache.Backend = config.CacheNone
	client, _, err = Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.IsType(t, &Memory{}, client)

	cfg.Store = config.StoreConfig{Backend: config.BackendFile, ContentDir: t.TempDir()}
	client, _, err = Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.IsType(t, &FileClient{}, client)

	cfg.Store = config.StoreConfig{Backend: config.BackendFirestore}
	cfg.Firestore = config.FirestoreConfig{ProjectID: "clinic"}
	client, closeFn, err = Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.IsType(t, &FirestoreClient{}, client)
	require.NoError(t, closeFn())

	cfg.Store = config.StoreConfig{Backend: "graphql"}
	_, closeFn, err = Open(context.Background(), cfg, nil)
	require.Error(t, err)
	require.NotNil(t, closeFn)
}

func TestFirestoreCollectionMapping(t *testing.T) {
	client := NewFirestoreClient(FirestoreOptions{Collections: map[string]string{"faq": "faqs"}})
	require.Equal(t, "faqs", client.Collection("faq"))
	require.Equal(t, "hero", client.Collection("hero"))
	require.NoError(t, client.Close())

	_, err := client.Query(context.Background(), Query{Type: "hero"})
	require.ErrorIs(t, err, ErrClientClosed)
}

func TestFirestoreEmulatorLeavesEnvironmentUntouched(t *testing.T) {
	t.Setenv(envEmulatorHost, "")
	client := NewFirestoreClient(FirestoreOptions{ProjectID: "clinic", EmulatorHost: "localhost:8681"})
	t.Cleanup(func() { _ = client.Close() })

	fs, err := client.connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, fs)
	require.Empty(t, os.Getenv(envEmulatorHost))
}

func TestWrapFirestoreError(t *testing.T) {
	err := wrapFirestoreError("op", status.Error(codes.NotFound, "missing"))
	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	require.True(t, storeErr.IsNotFound())
	require.ErrorIs(t, err, ErrNotFound)

	err = wrapFirestoreError("op", status.Error(codes.Unavailable, "down"))
	require.ErrorAs(t, err, &storeErr)
	require.True(t, storeErr.IsUnavailable())

	require.ErrorIs(t, wrapFirestoreError("op", status.Error(codes.Canceled, "x")), context.Canceled)
	require.Nil(t, wrapFirestoreError("op", nil))
}
