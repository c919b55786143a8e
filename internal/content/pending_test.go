package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/occlusa/dental-web/internal/store"
)

func TestPendingReportsFallbackUntilResolved(t *testing.T) {
	release := make(chan struct{})
	fallback := Hero{Title: "fallback"}

	p := Load(context.Background(), fallback, func(context.Context) Result[Hero] {
		<-release
		return Result[Hero]{Data: Hero{Title: "resolved"}}
	})

	snap := p.Snapshot()
	require.True(t, snap.Loading)
	require.Equal(t, "fallback", snap.Data.Title)

	close(release)
	res, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.False(t, res.Loading)
	require.Equal(t, "resolved", res.Data.Title)
	require.Equal(t, res, p.Snapshot())
}

func TestPendingDiscardsResultAfterCancel(t *testing.T) {
	release := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	fallback := []FAQ{{ID: "fallback"}}

	p := Load(ctx, fallback, func(context.Context) Result[[]FAQ] {
		<-release
		return Result[[]FAQ]{Data: []FAQ{{ID: "late"}}}
	})
	cancel()
	close(release)

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("pending did not finish")
	}
	res := p.Snapshot()
	require.False(t, res.Loading)
	require.ErrorIs(t, res.Err, context.Canceled)
	require.Equal(t, fallback, res.Data)
}

func TestPendingWaitHonoursCallerDeadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	p := Load(context.Background(), Hero{Title: "fallback"}, func(context.Context) Result[Hero] {
		<-release
		return Result[Hero]{}
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res, err := p.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, res.Loading)
	require.Equal(t, "fallback", res.Data.Title)
}

func TestLoadWithResolverHeroScenario(t *testing.T) {
	r := New(store.NewMemory())
	p := Load(context.Background(), r.Defaults().Hero, r.Hero)

	res, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.False(t, res.Loading)
	require.Equal(t, "Architect Your Perfect Occlusion", res.Data.Title)
}
