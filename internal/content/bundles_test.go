package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/occlusa/dental-web/internal/store"
)

func TestHomeBundleUsesDefaultsForEmptyStore(t *testing.T) {
	res := New(store.NewMemory()).Home(context.Background())
	def := DefaultTables()

	require.NoError(t, res.Err)
	require.Equal(t, def.SiteSettings, res.Data.Settings)
	require.Equal(t, def.Hero, res.Data.Hero)
	require.Equal(t, def.HomePage, res.Data.Page)
	require.Equal(t, def.Services, res.Data.Services)
	require.Equal(t, def.FAQs, res.Data.FAQs)
	require.Empty(t, res.Data.Videos)
	requireNoNulls(t, res.Data)
}

func TestTourismBundleCollectsFailures(t *testing.T) {
	boom := errors.New("pricing unavailable")
	mem := store.NewMemory(
		store.Document{"_id": "v1", "_type": TypeYoutubeVideo, "title": "Tour", "videoId": "x1", "category": TourismVideoCategory},
		store.Document{"_id": "v2", "_type": TypeYoutubeVideo, "title": "Implants", "videoId": "x2", "category": "implants"},
	)
	mem.FailWith(TypeTourismPricing, boom)

	res := New(mem).Tourism(context.Background())
	require.ErrorIs(t, res.Err, boom)
	require.Equal(t, DefaultTables().TourismPricing, res.Data.Pricing)
	require.Len(t, res.Data.Videos, 1)
	require.Equal(t, "x1", res.Data.Videos[0].VideoID)
	require.Equal(t, 1, mem.Calls(TypeTourismPricing))
}
