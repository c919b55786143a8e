package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/occlusa/dental-web/internal/content"
	"github.com/occlusa/dental-web/internal/platform/httpx"
	"github.com/occlusa/dental-web/internal/portable"
	"github.com/occlusa/dental-web/internal/seo"
)

const bioExcerptRunes = 200

// JSONLDHandlers serves schema.org descriptors and page metadata built from resolved content.
type JSONLDHandlers struct {
	resolver *content.Resolver
	baseURL  string
}

// NewJSONLDHandlers constructs structured data handlers. baseURL is the public site origin
// used for canonical and breadcrumb URLs.
func NewJSONLDHandlers(resolver *content.Resolver, baseURL string) *JSONLDHandlers {
	if resolver == nil {
		resolver = content.New(nil)
	}
	return &JSONLDHandlers{resolver: resolver, baseURL: strings.TrimRight(baseURL, "/")}
}

// Routes registers structured data endpoints against the provided router.
func (h *JSONLDHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/jsonld/faq", h.faq)
	r.Get("/jsonld/business", h.business)
	r.Get("/jsonld/organization", h.organization)
	r.Get("/jsonld/website", h.website)
	r.Get("/jsonld/rating", h.rating)
	r.Get("/jsonld/breadcrumbs", h.breadcrumbs)
	r.Get("/jsonld/doctor/{id}", h.doctor)
	r.Get("/jsonld/procedure/{slug}", h.procedure)
	r.Get("/jsonld/videos", h.videos)
	r.Get("/meta", h.pageMeta)
	r.Get("/meta/services/{slug}", h.pillarMeta)
}

// faq builds an FAQPage from the general FAQ list, or from one pillar's FAQs when the
// pillar query parameter is set.
func (h *JSONLDHandlers) faq(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if slug := strings.TrimSpace(r.URL.Query().Get("pillar")); slug != "" {
		pillar := h.resolver.ServicePillar(ctx, slug)
		writeResolved(w, resolved{data: seo.FAQPage(seo.PillarQA(pillar.Data.FAQs)), err: pillar.Err})
		return
	}
	faqs := h.resolver.FAQs(ctx)
	writeResolved(w, resolved{data: seo.FAQPage(seo.FAQsToQA(faqs.Data)), err: faqs.Err})
}

func (h *JSONLDHandlers) business(w http.ResponseWriter, r *http.Request) {
	settings := h.resolver.SiteSettings(r.Context())
	writeResolved(w, resolved{data: seo.LocalBusiness(settings.Data, h.baseURL), err: settings.Err})
}

func (h *JSONLDHandlers) organization(w http.ResponseWriter, r *http.Request) {
	settings := h.resolver.SiteSettings(r.Context())
	doc := seo.Organization(settings.Data.ClinicName, h.baseURL, settings.Data.OGImageURL)
	writeResolved(w, resolved{data: doc, err: settings.Err})
}

func (h *JSONLDHandlers) website(w http.ResponseWriter, r *http.Request) {
	settings := h.resolver.SiteSettings(r.Context())
	writeResolved(w, resolved{data: seo.WebSite(settings.Data.ClinicName, h.baseURL), err: settings.Err})
}

func (h *JSONLDHandlers) rating(w http.ResponseWriter, r *http.Request) {
	testimonials := h.resolver.Testimonials(r.Context())
	rating := seo.RatingFromTestimonials(testimonials.Data)
	writeResolved(w, resolved{data: seo.AggregateRating(rating), err: testimonials.Err})
}

func (h *JSONLDHandlers) breadcrumbs(w http.ResponseWriter, r *http.Request) {
	trail := seo.Trail(h.baseURL, r.URL.Query().Get("path"))
	writeResolved(w, resolved{data: seo.BreadcrumbList(trail)})
}

func (h *JSONLDHandlers) doctor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	team := h.resolver.TeamMembers(ctx)
	for _, member := range team.Data {
		if member.ID != id {
			continue
		}
		person := seo.Person{
			Name:       member.Name,
			Role:       member.Role,
			BioExcerpt: portable.Excerpt(member.Bio, bioExcerptRunes),
			ImageURL:   member.ImageURL,
		}
		writeResolved(w, resolved{data: seo.Physician(person), err: team.Err})
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("doctor_not_found", fmt.Sprintf("no team member %q", id), http.StatusNotFound))
}

func (h *JSONLDHandlers) procedure(w http.ResponseWriter, r *http.Request) {
	pillar := h.resolver.ServicePillar(r.Context(), chi.URLParam(r, "slug"))
	pageURL := seo.Canonical(h.baseURL, "/services/"+pillar.Data.Slug)
	writeResolved(w, resolved{data: seo.MedicalProcedure(pillar.Data, pageURL), err: pillar.Err})
}

func (h *JSONLDHandlers) videos(w http.ResponseWriter, r *http.Request) {
	videos := h.resolver.YoutubeVideos(r.Context(), r.URL.Query().Get("category"))
	out := make([]map[string]any, 0, len(videos.Data))
	for _, v := range videos.Data {
		out = append(out, seo.VideoObject(v))
	}
	writeResolved(w, resolved{data: out, err: videos.Err})
}

// pageMeta builds head metadata for an arbitrary path with optional title and description
// overrides.
func (h *JSONLDHandlers) pageMeta(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	settings := h.resolver.SiteSettings(r.Context())
	meta := seo.MetaFor(settings.Data, h.baseURL, q.Get("path"), seo.PageMeta{
		Title:       strings.TrimSpace(q.Get("title")),
		Description: strings.TrimSpace(q.Get("description")),
	})
	writeResolved(w, resolved{data: meta, err: settings.Err})
}

func (h *JSONLDHandlers) pillarMeta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		settings content.Result[content.SiteSettings]
		pillar   content.Result[content.ServicePillar]
	)
	var g errgroup.Group
	g.Go(func() error {
		settings = h.resolver.SiteSettings(ctx)
		return nil
	})
	g.Go(func() error {
		pillar = h.resolver.ServicePillar(ctx, chi.URLParam(r, "slug"))
		return nil
	})
	_ = g.Wait()

	err := settings.Err
	if err == nil {
		err = pillar.Err
	}
	writeResolved(w, resolved{data: seo.PillarMeta(settings.Data, h.baseURL, pillar.Data), err: err})
}
