package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCachedServesRepeatQueriesFromCache(t *testing.T) {
	mem := NewMemory(Document{"_id": "f1", "_type": "faq", "question": "Q?"})
	cached := NewCached(mem, NewMemoryCache(), time.Minute)
	q := Query{Type: "faq"}

	first, err := cached.Query(context.Background(), q)
	require.NoError(t, err)
	second, err := cached.Query(context.Background(), q)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, mem.Calls("faq"))

	first[0]["question"] = "mutated"
	third, err := cached.Query(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, "Q?", third[0]["question"])
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	mem := NewMemory(Document{"_id": "h", "_type": "hero"})
	cache := NewMemoryCache()
	cached := NewCached(mem, cache, time.Minute)

	mem.FailWith("hero", errors.New("offline"))
	_, err := cached.Query(context.Background(), Query{Type: "hero"})
	require.Error(t, err)
	require.Equal(t, 0, cache.Len())

	mem.FailWith("hero", nil)
	docs, err := cached.Query(context.Background(), Query{Type: "hero"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, 2, mem.Calls("hero"))
}

func TestCachedKeyDependsOnQuery(t *testing.T) {
	cached := NewCached(NewMemory(), NewMemoryCache(), time.Minute, WithCachePrefix("test:"))
	a := cached.Key(Query{Type: "faq"})
	b := cached.Key(Query{Type: "faq", Limit: 1})
	require.NotEqual(t, a, b)
	require.Equal(t, a, cached.Key(Query{Type: "faq"}))
	require.Contains(t, a, "test:")
}

func TestMemoryCacheExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(context.Background(), "k", []byte("v"), time.Second))
	value, ok, err := cache.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), value)

	now = now.Add(2 * time.Second)
	_, ok, err = cache.Get(context.Background(), "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, cache.Len())
}
