package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/occlusa/dental-web/internal/content"
	"github.com/occlusa/dental-web/internal/platform/httpx"
	"github.com/occlusa/dental-web/internal/portable"
)

const (
	contentCacheControl = "public, max-age=60"
	formatJSON          = "json"
	formatHTML          = "html"
)

// resolved is a content.Result with its type erased for encoding.
type resolved struct {
	data    any
	loading bool
	err     error
}

func fromResult[T any](res content.Result[T]) resolved {
	return resolved{data: res.Data, loading: res.Loading, err: res.Err}
}

type categoryResolver func(ctx context.Context, res *content.Resolver, format string) resolved

var contentCategories = map[string]categoryResolver{
	"site-settings": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.SiteSettings(ctx))
	},
	"hero": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.Hero(ctx))
	},
	"about-page": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.AboutPage(ctx))
	},
	"technology-page": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.TechnologyPage(ctx))
	},
	"home-page": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.HomePage(ctx))
	},
	"services-page": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.ServicesPage(ctx))
	},
	"dsd-page": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.DSDPage(ctx))
	},
	"tourism-page": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.TourismPage(ctx))
	},
	"services": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.Services(ctx))
	},
	"testimonials": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.Testimonials(ctx))
	},
	"team-members": func(ctx context.Context, res *content.Resolver, format string) resolved {
		result := res.TeamMembers(ctx)
		if format != formatHTML {
			return fromResult(result)
		}
		out := make([]teamMemberHTML, 0, len(result.Data))
		for _, member := range result.Data {
			out = append(out, teamMemberHTML{TeamMember: member, BioHTML: portable.HTML(member.Bio)})
		}
		return resolved{data: out, loading: result.Loading, err: result.Err}
	},
	"tourism-pricing": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.TourismPricing(ctx))
	},
	"faqs": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.FAQs(ctx))
	},
	"before-after-cases": func(ctx context.Context, res *content.Resolver, _ string) resolved {
		return fromResult(res.BeforeAfterCases(ctx))
	},
}

// ContentCategories lists the category names served by /content/{category}.
func ContentCategories() []string {
	names := make([]string, 0, len(contentCategories))
	for name := range contentCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type teamMemberHTML struct {
	content.TeamMember
	BioHTML string `json:"bioHtml"`
}

type pillarSectionHTML struct {
	content.PillarSection
	BodyHTML string `json:"bodyHtml"`
}

type servicePillarHTML struct {
	content.ServicePillar
	Sections []pillarSectionHTML `json:"sections"`
}

// ContentHandlers serves resolved view models as JSON envelopes.
type ContentHandlers struct {
	resolver *content.Resolver
}

// NewContentHandlers constructs content handlers backed by resolver.
func NewContentHandlers(resolver *content.Resolver) *ContentHandlers {
	if resolver == nil {
		resolver = content.New(nil)
	}
	return &ContentHandlers{resolver: resolver}
}

// Routes registers content endpoints against the provided router.
func (h *ContentHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/content", h.listCategories)
	r.Get("/content/service-pillars", h.listPillars)
	r.Get("/content/service-pillars/{slug}", h.getPillar)
	r.Get("/content/videos", h.listVideos)
	r.Get("/content/{category}", h.getCategory)
	r.Get("/pages/home", h.homePage)
	r.Get("/pages/tourism", h.tourismPage)
}

func (h *ContentHandlers) listCategories(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", contentCacheControl)
	httpx.WriteEnvelope(w, ContentCategories(), false, nil)
}

func (h *ContentHandlers) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "category")))
	resolve, ok := contentCategories[name]
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("category_not_found", fmt.Sprintf("unknown content category %q", name), http.StatusNotFound))
		return
	}
	format, ok := requestFormat(r)
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_format", "format must be json or html", http.StatusBadRequest))
		return
	}
	writeResolved(w, resolve(ctx, h.resolver, format))
}

func (h *ContentHandlers) listPillars(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", contentCacheControl)
	httpx.WriteEnvelope(w, h.resolver.PillarSlugs(), false, nil)
}

func (h *ContentHandlers) getPillar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format, ok := requestFormat(r)
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_format", "format must be json or html", http.StatusBadRequest))
		return
	}
	result := h.resolver.ServicePillar(ctx, chi.URLParam(r, "slug"))
	if format != formatHTML {
		writeResolved(w, fromResult(result))
		return
	}
	payload := servicePillarHTML{ServicePillar: result.Data}
	payload.Sections = make([]pillarSectionHTML, 0, len(result.Data.Sections))
	for _, section := range result.Data.Sections {
		payload.Sections = append(payload.Sections, pillarSectionHTML{PillarSection: section, BodyHTML: portable.HTML(section.Body)})
	}
	writeResolved(w, resolved{data: payload, loading: result.Loading, err: result.Err})
}

func (h *ContentHandlers) listVideos(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	writeResolved(w, fromResult(h.resolver.YoutubeVideos(r.Context(), category)))
}

func (h *ContentHandlers) homePage(w http.ResponseWriter, r *http.Request) {
	writeResolved(w, fromResult(h.resolver.Home(r.Context())))
}

func (h *ContentHandlers) tourismPage(w http.ResponseWriter, r *http.Request) {
	writeResolved(w, fromResult(h.resolver.Tourism(r.Context())))
}

func requestFormat(r *http.Request) (string, bool) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	switch format {
	case "", formatJSON:
		return formatJSON, true
	case formatHTML:
		return formatHTML, true
	default:
		return "", false
	}
}

// writeResolved always answers 200: a store failure still yields complete default data,
// so the error only travels in the envelope. Failed responses are not cacheable.
func writeResolved(w http.ResponseWriter, res resolved) {
	if res.err == nil {
		w.Header().Set("Cache-Control", contentCacheControl)
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	httpx.WriteEnvelope(w, res.data, res.loading, res.err)
}
