package content

import (
	"context"
	"sort"
	"strings"

	"github.com/occlusa/dental-web/internal/icons"
	"github.com/occlusa/dental-web/internal/store"
)

// Document types queried by the collection accessors.
const (
	TypeService         = "service"
	TypeTestimonial     = "testimonial"
	TypeTeamMember      = "teamMember"
	TypeTourismPricing  = "tourismPricing"
	TypeFAQ             = "faq"
	TypeBeforeAfterCase = "beforeAfterCase"
	TypeYoutubeVideo    = "youtubeVideo"
)

const (
	serviceImageWidth     = 800
	testimonialImageWidth = 160
	teamImageWidth        = 600
	caseImageWidth        = 1200
)

// collection resolves a collection category: a non-empty store list replaces fallback
// entirely, anything else yields fallback.
func collection[T any](ctx context.Context, r *Resolver, category string, q store.Query, fallback []T, item func(fields) T) ([]T, error) {
	docs, err := r.fetch(ctx, category, q)
	if err != nil || len(docs) == 0 {
		if fallback == nil {
			fallback = []T{}
		}
		return fallback, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		out = append(out, item(doc))
	}
	return out, nil
}

// Services resolves the treatment cards ordered by order then title.
func (r *Resolver) Services(ctx context.Context) Result[[]Service] {
	placeholder := r.defaults.Placeholders.Service
	out, err := collection(ctx, r, "services", store.Query{
		Type:    TypeService,
		OrderBy: []store.Order{store.Asc("order"), store.Asc("title")},
		Fields:  []string{"title", "description", "icon", "image", "order"},
	}, clone(r.defaults.Services), func(f fields) Service {
		image := f.image("image")
		return Service{
			ID:          f.str("_id", ""),
			Title:       f.str("title", ""),
			Description: f.str("description", ""),
			Icon:        icons.Resolve(iconKey(f)),
			Image:       image,
			ImageURL:    r.imageURL(image, serviceImageWidth, placeholder),
			Order:       f.integer("order", 0),
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[j].Order, out[i].Title, out[j].Title)
	})
	return done(out, err)
}

// Testimonials resolves patient reviews in store order.
func (r *Resolver) Testimonials(ctx context.Context) Result[[]Testimonial] {
	placeholder := r.defaults.Placeholders.Testimonial
	out, err := collection(ctx, r, "testimonials", store.Query{
		Type:   TypeTestimonial,
		Fields: []string{"name", "country", "flag", "text", "rating", "image"},
	}, clone(r.defaults.Testimonials), func(f fields) Testimonial {
		image := f.image("image")
		country := f.str("country", "")
		return Testimonial{
			ID:       f.str("_id", ""),
			Name:     f.str("name", ""),
			Country:  country,
			Flag:     f.str("flag", flagFor(country)),
			Text:     f.str("text", ""),
			Rating:   clampRating(f.integer("rating", maxRating)),
			Image:    image,
			ImageURL: r.imageURL(image, testimonialImageWidth, placeholder),
		}
	})
	return done(out, err)
}

// TeamMembers resolves clinician profiles ordered by order then name.
func (r *Resolver) TeamMembers(ctx context.Context) Result[[]TeamMember] {
	placeholder := r.defaults.Placeholders.TeamMember
	out, err := collection(ctx, r, "teamMembers", store.Query{
		Type:    TypeTeamMember,
		OrderBy: []store.Order{store.Asc("order"), store.Asc("name")},
		Fields:  []string{"name", "role", "bio", "image", "order"},
	}, clone(r.defaults.TeamMembers), func(f fields) TeamMember {
		image := f.image("image")
		return TeamMember{
			ID:       f.str("_id", ""),
			Name:     f.str("name", ""),
			Role:     f.str("role", ""),
			Bio:      f.blocks("bio", nil),
			Image:    image,
			ImageURL: r.imageURL(image, teamImageWidth, placeholder),
			Order:    f.integer("order", 0),
		}
	})
	for i := range out {
		if out[i].Bio == nil {
			out[i].Bio = emptyBlocks()
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[j].Order, out[i].Name, out[j].Name)
	})
	return done(out, err)
}

// TourismPricing resolves the price comparison table ordered by order then treatment.
func (r *Resolver) TourismPricing(ctx context.Context) Result[[]TourismPrice] {
	out, err := collection(ctx, r, "tourismPricing", store.Query{
		Type:    TypeTourismPricing,
		OrderBy: []store.Order{store.Asc("order"), store.Asc("treatment")},
		Fields:  []string{"treatment", "priceTR", "priceUK", "priceUS", "priceDE", "savings", "order"},
	}, clone(r.defaults.TourismPricing), func(f fields) TourismPrice {
		return TourismPrice{
			ID:        f.str("_id", ""),
			Treatment: f.str("treatment", ""),
			PriceTR:   f.str("priceTR", ""),
			PriceUK:   f.str("priceUK", ""),
			PriceUS:   f.str("priceUS", ""),
			PriceDE:   f.str("priceDE", ""),
			Savings:   f.str("savings", ""),
			Order:     f.integer("order", 0),
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[j].Order, out[i].Treatment, out[j].Treatment)
	})
	return done(out, err)
}

// FAQs resolves the general FAQ list ordered by order then question.
func (r *Resolver) FAQs(ctx context.Context) Result[[]FAQ] {
	out, err := collection(ctx, r, "faqs", store.Query{
		Type:    TypeFAQ,
		OrderBy: []store.Order{store.Asc("order"), store.Asc("question")},
		Fields:  []string{"question", "answer", "order"},
	}, clone(r.defaults.FAQs), func(f fields) FAQ {
		return FAQ{
			ID:       f.str("_id", ""),
			Question: f.str("question", ""),
			Answer:   f.str("answer", ""),
			Order:    f.integer("order", 0),
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[j].Order, out[i].Question, out[j].Question)
	})
	return done(out, err)
}

// BeforeAfterCases resolves the results gallery ordered by sortOrder then label.
func (r *Resolver) BeforeAfterCases(ctx context.Context) Result[[]BeforeAfterCase] {
	placeholder := r.defaults.Placeholders.BeforeAfter
	out, err := collection(ctx, r, "beforeAfterCases", store.Query{
		Type:    TypeBeforeAfterCase,
		OrderBy: []store.Order{store.Asc("sortOrder"), store.Asc("label")},
		Fields:  []string{"label", "beforeImage", "afterImage", "treatment", "sortOrder"},
	}, clone(r.defaults.BeforeAfterCases), func(f fields) BeforeAfterCase {
		before := f.image("beforeImage")
		after := f.image("afterImage")
		return BeforeAfterCase{
			ID:          f.str("_id", ""),
			Label:       f.str("label", ""),
			BeforeImage: before,
			AfterImage:  after,
			BeforeURL:   r.imageURL(before, caseImageWidth, placeholder),
			AfterURL:    r.imageURL(after, caseImageWidth, placeholder),
			Treatment:   f.str("treatment", ""),
			SortOrder:   f.integer("sortOrder", 0),
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].SortOrder, out[j].SortOrder, out[i].Label, out[j].Label)
	})
	return done(out, err)
}

// YoutubeVideos resolves videos for category, or every video when category is empty.
// There is no default table: an empty store yields an empty list.
func (r *Resolver) YoutubeVideos(ctx context.Context, category string) Result[[]YoutubeVideo] {
	q := store.Query{
		Type:    TypeYoutubeVideo,
		OrderBy: []store.Order{store.Asc("sortOrder"), store.Asc("title")},
		Fields:  []string{"title", "videoId", "description", "category", "sortOrder"},
	}
	if category = strings.TrimSpace(category); category != "" {
		q.Filter = map[string]string{"category": category}
	}
	out, err := collection(ctx, r, "youtubeVideos", q, []YoutubeVideo{}, func(f fields) YoutubeVideo {
		return YoutubeVideo{
			ID:          f.str("_id", ""),
			Title:       f.str("title", ""),
			VideoID:     f.str("videoId", ""),
			Description: f.str("description", ""),
			Category:    f.str("category", ""),
			SortOrder:   f.integer("sortOrder", 0),
		}
	})
	filtered := out[:0]
	for _, v := range out {
		if strings.TrimSpace(v.VideoID) != "" {
			filtered = append(filtered, v)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return orderedBefore(filtered[i].SortOrder, filtered[j].SortOrder, filtered[i].Title, filtered[j].Title)
	})
	return done(filtered, err)
}

func orderedBefore(orderA, orderB int, keyA, keyB string) bool {
	if orderA != orderB {
		return orderA < orderB
	}
	return strings.ToLower(keyA) < strings.ToLower(keyB)
}

const (
	minRating = 1
	maxRating = 5
)

func clampRating(n int) int {
	switch {
	case n < minRating:
		return minRating
	case n > maxRating:
		return maxRating
	}
	return n
}

var countryFlags = map[string]string{
	"united kingdom": "🇬🇧",
	"uk":             "🇬🇧",
	"england":        "🇬🇧",
	"germany":        "🇩🇪",
	"united states":  "🇺🇸",
	"usa":            "🇺🇸",
	"netherlands":    "🇳🇱",
	"france":         "🇫🇷",
	"ireland":        "🇮🇪",
	"sweden":         "🇸🇪",
	"norway":         "🇳🇴",
	"denmark":        "🇩🇰",
	"switzerland":    "🇨🇭",
	"turkey":         "🇹🇷",
	"türkiye":        "🇹🇷",
}

const defaultFlag = "🌍"

func flagFor(country string) string {
	if flag, ok := countryFlags[strings.ToLower(strings.TrimSpace(country))]; ok {
		return flag
	}
	return defaultFlag
}
