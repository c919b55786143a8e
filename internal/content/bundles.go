package content

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TourismVideoCategory tags videos shown on the tourism page.
const TourismVideoCategory = "tourism"

// HomeBundle is everything the homepage renders.
type HomeBundle struct {
	Settings     SiteSettings      `json:"settings"`
	Hero         Hero              `json:"hero"`
	Page         HomePage          `json:"page"`
	Services     []Service         `json:"services"`
	Testimonials []Testimonial     `json:"testimonials"`
	Team         []TeamMember      `json:"team"`
	FAQs         []FAQ             `json:"faqs"`
	Cases        []BeforeAfterCase `json:"cases"`
	Videos       []YoutubeVideo    `json:"videos"`
}

// TourismBundle is everything the dental tourism page renders.
type TourismBundle struct {
	Settings     SiteSettings   `json:"settings"`
	Page         TourismPage    `json:"page"`
	Pricing      []TourismPrice `json:"pricing"`
	Testimonials []Testimonial  `json:"testimonials"`
	FAQs         []FAQ          `json:"faqs"`
	Videos       []YoutubeVideo `json:"videos"`
}

// errCollector joins the fallback errors of concurrently resolved categories.
type errCollector struct {
	mu   sync.Mutex
	errs []error
}

func (c *errCollector) add(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

func (c *errCollector) err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errors.Join(c.errs...)
}

func assign[T any](g *errgroup.Group, errs *errCollector, dst *T, fn func() Result[T]) {
	g.Go(func() error {
		res := fn()
		*dst = res.Data
		errs.add(res.Err)
		return nil
	})
}

// Home resolves the homepage categories concurrently.
func (r *Resolver) Home(ctx context.Context) Result[HomeBundle] {
	var (
		out  HomeBundle
		g    errgroup.Group
		errs errCollector
	)
	assign(&g, &errs, &out.Settings, func() Result[SiteSettings] { return r.SiteSettings(ctx) })
	assign(&g, &errs, &out.Hero, func() Result[Hero] { return r.Hero(ctx) })
	assign(&g, &errs, &out.Page, func() Result[HomePage] { return r.HomePage(ctx) })
	assign(&g, &errs, &out.Services, func() Result[[]Service] { return r.Services(ctx) })
	assign(&g, &errs, &out.Testimonials, func() Result[[]Testimonial] { return r.Testimonials(ctx) })
	assign(&g, &errs, &out.Team, func() Result[[]TeamMember] { return r.TeamMembers(ctx) })
	assign(&g, &errs, &out.FAQs, func() Result[[]FAQ] { return r.FAQs(ctx) })
	assign(&g, &errs, &out.Cases, func() Result[[]BeforeAfterCase] { return r.BeforeAfterCases(ctx) })
	assign(&g, &errs, &out.Videos, func() Result[[]YoutubeVideo] { return r.YoutubeVideos(ctx, "") })
	_ = g.Wait()
	return done(out, errs.err())
}

// Tourism resolves the dental tourism page categories concurrently.
func (r *Resolver) Tourism(ctx context.Context) Result[TourismBundle] {
	var (
		out  TourismBundle
		g    errgroup.Group
		errs errCollector
	)
	assign(&g, &errs, &out.Settings, func() Result[SiteSettings] { return r.SiteSettings(ctx) })
	assign(&g, &errs, &out.Page, func() Result[TourismPage] { return r.TourismPage(ctx) })
	assign(&g, &errs, &out.Pricing, func() Result[[]TourismPrice] { return r.TourismPricing(ctx) })
	assign(&g, &errs, &out.Testimonials, func() Result[[]Testimonial] { return r.Testimonials(ctx) })
	assign(&g, &errs, &out.FAQs, func() Result[[]FAQ] { return r.FAQs(ctx) })
	assign(&g, &errs, &out.Videos, func() Result[[]YoutubeVideo] { return r.YoutubeVideos(ctx, TourismVideoCategory) })
	_ = g.Wait()
	return done(out, errs.err())
}
