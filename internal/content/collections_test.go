package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/occlusa/dental-web/internal/images"
	"github.com/occlusa/dental-web/internal/store"
)

func TestServicesReplaceDefaultsWhenStoreHasItems(t *testing.T) {
	require.Len(t, DefaultTables().Services, 6)

	mem := store.NewMemory(
		store.Document{"_id": "a", "_type": TypeService, "title": "Implants", "icon": "implant", "order": 1},
		store.Document{"_id": "b", "_type": TypeService, "title": "Veneers", "order": 2},
	)
	res := New(mem).Services(context.Background())

	require.NoError(t, res.Err)
	require.Len(t, res.Data, 2)
	require.Equal(t, "Implants", res.Data[0].Title)
	require.Equal(t, "implant", res.Data[0].Icon.Key)
	require.Equal(t, "sparkles", res.Data[1].Icon.Key)
	require.Equal(t, DefaultTables().Placeholders.Service, res.Data[1].ImageURL)
}

func TestServicesUseDefaultsWhenStoreEmpty(t *testing.T) {
	res := New(store.NewMemory()).Services(context.Background())
	require.Equal(t, DefaultTables().Services, res.Data)
}

func TestServiceImagesResolveThroughBuilder(t *testing.T) {
	mem := store.NewMemory(store.Document{
		"_id":   "a",
		"_type": TypeService,
		"title": "Implants",
		"image": map[string]any{"_type": "image", "asset": map[string]any{"_ref": "image-abc123-800x600-jpg"}},
	})
	r := New(mem, WithImages(images.NewBuilder("occlusa7d", "production", "")))
	res := r.Services(context.Background())

	require.Len(t, res.Data, 1)
	require.Equal(t, "https://cdn.sanity.io/images/occlusa7d/production/abc123-800x600.jpg?auto=format&w=800", res.Data[0].ImageURL)
}

// unordered ignores OrderBy so the resolver's own ordering is exercised.
func unordered(docs ...store.Document) store.Client {
	return store.ClientFunc(func(_ context.Context, q store.Query) ([]store.Document, error) {
		var out []store.Document
		for _, doc := range docs {
			if doc.Type() == q.Type {
				out = append(out, doc)
			}
		}
		return out, nil
	})
}

func TestTourismPricingIsOrdered(t *testing.T) {
	client := unordered(
		store.Document{"_id": "p3", "_type": TypeTourismPricing, "treatment": "Crown", "order": 3, "priceTR": "€250", "priceUK": "£800"},
		store.Document{"_id": "p1b", "_type": TypeTourismPricing, "treatment": "Veneer", "order": 1, "priceTR": "€350", "priceUK": "£900"},
		store.Document{"_id": "p1a", "_type": TypeTourismPricing, "treatment": "Implant", "order": 1, "priceTR": "€650", "priceUK": "£2,500"},
		store.Document{"_id": "p2", "_type": TypeTourismPricing, "treatment": "Whitening", "order": 2, "priceTR": "€200", "priceUK": "£450"},
	)
	res := New(client).TourismPricing(context.Background())

	var ids []string
	for _, p := range res.Data {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"p1a", "p1b", "p2", "p3"}, ids)
	require.Equal(t, "", res.Data[0].PriceUS)
}

func TestFAQsAreOrdered(t *testing.T) {
	client := unordered(
		store.Document{"_id": "f2", "_type": TypeFAQ, "question": "Beta?", "answer": "b", "order": 2},
		store.Document{"_id": "f1", "_type": TypeFAQ, "question": "Zeta?", "answer": "z", "order": 1},
		store.Document{"_id": "f0", "_type": TypeFAQ, "question": "Alpha?", "answer": "a", "order": 1},
	)
	res := New(client).FAQs(context.Background())

	require.Len(t, res.Data, 3)
	require.Equal(t, "Alpha?", res.Data[0].Question)
	require.Equal(t, "Zeta?", res.Data[1].Question)
	require.Equal(t, "Beta?", res.Data[2].Question)

	defaults := New(store.NewMemory()).FAQs(context.Background()).Data
	for i := 1; i < len(defaults); i++ {
		require.LessOrEqual(t, defaults[i-1].Order, defaults[i].Order)
	}
}

func TestTestimonialsNormaliseRatingAndFlag(t *testing.T) {
	mem := store.NewMemory(
		store.Document{"_id": "t1", "_type": TypeTestimonial, "name": "Anna", "country": "Germany", "rating": 9},
		store.Document{"_id": "t2", "_type": TypeTestimonial, "name": "Ben", "country": "Atlantis", "rating": 0},
		store.Document{"_id": "t3", "_type": TypeTestimonial, "name": "Cem", "flag": "🇹🇷"},
	)
	res := New(mem).Testimonials(context.Background())

	require.Len(t, res.Data, 3)
	require.Equal(t, "🇩🇪", res.Data[0].Flag)
	require.Equal(t, 5, res.Data[0].Rating)
	require.Equal(t, defaultFlag, res.Data[1].Flag)
	require.Equal(t, 1, res.Data[1].Rating)
	require.Equal(t, "🇹🇷", res.Data[2].Flag)
	require.Equal(t, 5, res.Data[2].Rating)
}

func TestTeamMembersDecodeRichTextBio(t *testing.T) {
	mem := store.NewMemory(store.Document{
		"_id":   "m1",
		"_type": TypeTeamMember,
		"name":  "Dr. Demir",
		"bio": []any{map[string]any{
			"_type":    "block",
			"_key":     "k1",
			"style":    "normal",
			"children": []any{map[string]any{"_type": "span", "text": "Prosthodontist.", "marks": []any{"strong"}}},
			"custom":   "kept",
		}},
	})
	res := New(mem).TeamMembers(context.Background())

	require.Len(t, res.Data, 1)
	bio := res.Data[0].Bio
	require.Len(t, bio, 1)
	require.Equal(t, "Prosthodontist.", bio[0].Children[0].Text)
	require.Equal(t, []string{"strong"}, bio[0].Children[0].Marks)
	require.Contains(t, bio[0].Extra, "custom")
}

func TestTeamMemberBioSurvivesResolution(t *testing.T) {
	bio := `[{"_key":"k1","_type":"block","children":[{"_type":"span","custom":"keep-me","text":"Prosthodontist."},{"_key":"i1","_type":"inlineIcon","name":"tooth"}],"style":"normal"},{"_key":"k2","_type":"block"}]`
	mem := store.NewMemory(store.Document{
		"_id":   "m1",
		"_type": TypeTeamMember,
		"name":  "Dr. Demir",
		"bio":   json.RawMessage(bio),
	})
	res := New(mem).TeamMembers(context.Background())

	require.NoError(t, res.Err)
	require.Len(t, res.Data, 1)
	encoded, err := json.Marshal(res.Data[0].Bio)
	require.NoError(t, err)
	require.Equal(t, bio, string(encoded))
}

func TestBeforeAfterCasesFallbackPerImage(t *testing.T) {
	mem := store.NewMemory(store.Document{
		"_id":        "c1",
		"_type":      TypeBeforeAfterCase,
		"label":      "Veneers",
		"afterImage": map[string]any{"asset": map[string]any{"url": "https://cdn.example.com/after.jpg"}},
		"sortOrder":  1,
	})
	res := New(mem).BeforeAfterCases(context.Background())

	require.Len(t, res.Data, 1)
	require.Equal(t, DefaultTables().Placeholders.BeforeAfter, res.Data[0].BeforeURL)
	require.Equal(t, "https://cdn.example.com/after.jpg?auto=format&w=1200", res.Data[0].AfterURL)
}

func TestYoutubeVideosHaveNoDefaults(t *testing.T) {
	res := New(store.NewMemory()).YoutubeVideos(context.Background(), "")
	require.NoError(t, res.Err)
	require.NotNil(t, res.Data)
	require.Empty(t, res.Data)
}

func TestYoutubeVideosFilterByCategory(t *testing.T) {
	mem := store.NewMemory(
		store.Document{"_id": "v1", "_type": TypeYoutubeVideo, "title": "Clinic tour", "videoId": "aaa", "category": "tourism", "sortOrder": 2},
		store.Document{"_id": "v2", "_type": TypeYoutubeVideo, "title": "Arrival", "videoId": "bbb", "category": "tourism", "sortOrder": 1},
		store.Document{"_id": "v3", "_type": TypeYoutubeVideo, "title": "Implant steps", "videoId": "ccc", "category": "implants"},
		store.Document{"_id": "v4", "_type": TypeYoutubeVideo, "title": "Broken", "category": "tourism"},
	)
	r := New(mem)

	tourism := r.YoutubeVideos(context.Background(), "tourism").Data
	require.Len(t, tourism, 2)
	require.Equal(t, "bbb", tourism[0].VideoID)
	require.Equal(t, "https://www.youtube.com/watch?v=bbb", tourism[0].WatchURL())
	require.Equal(t, "https://i.ytimg.com/vi/bbb/hqdefault.jpg", tourism[0].ThumbnailURL())

	all := r.YoutubeVideos(context.Background(), " ").Data
	require.Len(t, all, 3)
}
