package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/occlusa/dental-web/internal/store"
)

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		" Dental Implants ":   "dental-implants",
		"porcelain_veneers":   "porcelain-veneers",
		"Diş İmplantı":        "dis-implanti",
		"--digital--smile--":  "digital-smile",
		"Teeth Whitening!!":   "teeth-whitening",
		"":                    "",
		"Café Crème Brûlée 2": "cafe-creme-brulee-2",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeSlug(in), in)
	}
}

func TestServicePillarUnknownSlugFallsBack(t *testing.T) {
	r := New(store.NewMemory())
	res := r.ServicePillar(context.Background(), "nonexistent-slug")

	require.NoError(t, res.Err)
	require.Equal(t, DefaultTables().ServicePillars[FallbackPillarSlug], res.Data)
	require.Equal(t, "dental-implants", res.Data.Slug)
}

func TestServicePillarKnownSlugUsesItsDefault(t *testing.T) {
	r := New(store.NewMemory())
	res := r.ServicePillar(context.Background(), "Porcelain Veneers")
	require.Equal(t, DefaultTables().ServicePillars["porcelain-veneers"], res.Data)
}

func TestServicePillarMergesStoreDocument(t *testing.T) {
	mem := store.NewMemory(
		store.Document{
			"_id":       "pillar-veneers",
			"_type":     TypeServicePillar,
			"slug":      map[string]any{"_type": "slug", "current": "porcelain-veneers"},
			"heroTitle": "Veneers by Occlusa",
			"seo":       map[string]any{"title": "Custom SEO title"},
			"faqs":      []any{map[string]any{"question": "Q?", "answer": "A."}},
		},
		store.Document{
			"_id":       "pillar-other",
			"_type":     TypeServicePillar,
			"slug":      map[string]any{"current": "dental-implants"},
			"heroTitle": "Wrong document",
		},
	)
	def := DefaultTables().ServicePillars["porcelain-veneers"]
	res := New(mem).ServicePillar(context.Background(), "porcelain-veneers")

	require.NoError(t, res.Err)
	got := res.Data
	require.Equal(t, "porcelain-veneers", got.Slug)
	require.Equal(t, "Veneers by Occlusa", got.HeroTitle)
	require.Equal(t, "Custom SEO title", got.SEO.Title)
	require.Equal(t, def.SEO.Description, got.SEO.Description)
	require.Equal(t, def.HeroSubtitle, got.HeroSubtitle)
	require.Equal(t, def.Sections, got.Sections)
	require.Equal(t, []QA{{Question: "Q?", Answer: "A."}}, got.FAQs)
	require.Equal(t, def.PrimaryCTA, got.PrimaryCTA)
}

func TestServicePillarStoreOnlySlugMergesOverFallback(t *testing.T) {
	mem := store.NewMemory(store.Document{
		"_id":       "pillar-gums",
		"_type":     TypeServicePillar,
		"slug":      map[string]any{"current": "gum-contouring"},
		"heroTitle": "Gum Contouring",
	})
	def := DefaultTables().ServicePillars[FallbackPillarSlug]
	got := New(mem).ServicePillar(context.Background(), "gum-contouring").Data

	require.Equal(t, "gum-contouring", got.Slug)
	require.Equal(t, "Gum Contouring", got.HeroTitle)
	require.Equal(t, def.Benefits, got.Benefits)
}

func TestServicePillarWithoutFallbackEntryStaysComplete(t *testing.T) {
	custom := DefaultTables()
	custom.ServicePillars = map[string]ServicePillar{}
	got := New(store.NewMemory(), WithDefaults(custom)).ServicePillar(context.Background(), "anything").Data

	require.Equal(t, FallbackPillarSlug, got.Slug)
	requireNoNulls(t, got)
}

func TestPillarSlugsSorted(t *testing.T) {
	slugs := New(nil).PillarSlugs()
	require.Equal(t, []string{"dental-implants", "digital-smile-design", "porcelain-veneers", "teeth-whitening"}, slugs)
}
