package content

import (
	"context"
	"fmt"

	"github.com/occlusa/dental-web/internal/icons"
	"github.com/occlusa/dental-web/internal/store"
)

// Document types queried by the singleton accessors.
const (
	TypeSiteSettings   = "siteSettings"
	TypeHero           = "hero"
	TypeAboutPage      = "aboutPageSettings"
	TypeTechnologyPage = "technologyPageSettings"
	TypeHomePage       = "homepageSettings"
	TypeServicesPage   = "servicesPageSettings"
	TypeDSDPage        = "dsdPageSettings"
	TypeTourismPage    = "tourismPageSettings"
)

const (
	ogImageWidth   = 1200
	heroImageWidth = 1920
)

// singleton fetches the first document of a singleton category.
func (r *Resolver) singleton(ctx context.Context, category, docType string, projection ...string) (fields, bool, error) {
	docs, err := r.fetch(ctx, category, store.Query{Type: docType, Fields: projection, Limit: 1})
	if err != nil || len(docs) == 0 {
		return nil, false, err
	}
	return docs[0], true, nil
}

// SiteSettings resolves clinic-wide settings.
func (r *Resolver) SiteSettings(ctx context.Context) Result[SiteSettings] {
	def := clone(r.defaults.SiteSettings)
	f, ok, err := r.singleton(ctx, "siteSettings", TypeSiteSettings,
		"clinicName", "phone", "whatsapp", "email", "address", "socialLinks",
		"workingHours", "seoTitle", "seoDescription", "ogImage", "geo")
	if !ok {
		return done(completeSiteSettings(def), err)
	}

	out := SiteSettings{
		ClinicName:     f.str("clinicName", def.ClinicName),
		Phone:          f.str("phone", def.Phone),
		WhatsApp:       f.str("whatsapp", def.WhatsApp),
		Email:          f.str("email", def.Email),
		Address:        f.str("address", def.Address),
		SocialLinks:    list(f, "socialLinks", def.SocialLinks, mapSocialLink),
		WorkingHours:   f.str("workingHours", def.WorkingHours),
		SEOTitle:       f.str("seoTitle", def.SEOTitle),
		SEODescription: f.str("seoDescription", def.SEODescription),
		OGImage:        def.OGImage,
		Geo:            def.Geo,
	}
	if ref := f.image("ogImage"); ref != nil {
		out.OGImage = ref
	}
	out.OGImageURL = r.imageURL(out.OGImage, ogImageWidth, def.OGImageURL)
	if geo, ok := f.object("geo"); ok {
		out.Geo = GeoPoint{
			Lat: geo.number("lat", def.Geo.Lat),
			Lng: geo.number("lng", def.Geo.Lng),
		}
	}
	return done(completeSiteSettings(out), nil)
}

func mapSocialLink(f fields) SocialLink {
	return SocialLink{
		Platform: f.str("platform", ""),
		URL:      f.str("url", ""),
	}
}

// Hero resolves the landing banner.
func (r *Resolver) Hero(ctx context.Context) Result[Hero] {
	def := clone(r.defaults.Hero)
	f, ok, err := r.singleton(ctx, "hero", TypeHero,
		"title", "subtitle", "ctaText", "ctaLink", "backgroundImage", "backgroundAlt")
	if !ok {
		return done(def, err)
	}

	out := Hero{
		Title:           f.str("title", def.Title),
		Subtitle:        f.str("subtitle", def.Subtitle),
		CTAText:         f.str("ctaText", def.CTAText),
		CTALink:         f.str("ctaLink", def.CTALink),
		BackgroundImage: def.BackgroundImage,
		BackgroundAlt:   f.str("backgroundAlt", def.BackgroundAlt),
	}
	if ref := f.image("backgroundImage"); ref != nil {
		out.BackgroundImage = ref
	}
	out.BackgroundImageURL = r.imageURL(out.BackgroundImage, heroImageWidth, def.BackgroundImageURL)
	return done(out, nil)
}

// AboutPage resolves the about page settings.
func (r *Resolver) AboutPage(ctx context.Context) Result[AboutPage] {
	def := clone(r.defaults.AboutPage)
	f, ok, err := r.singleton(ctx, "aboutPage", TypeAboutPage,
		"heroTitle", "heroSubtitle", "mission", "values", "stats", "timeline")
	if !ok {
		return done(completeAboutPage(def), err)
	}
	return done(completeAboutPage(AboutPage{
		HeroTitle:    f.str("heroTitle", def.HeroTitle),
		HeroSubtitle: f.str("heroSubtitle", def.HeroSubtitle),
		Mission:      f.str("mission", def.Mission),
		Values:       list(f, "values", def.Values, mapFeature),
		Stats:        list(f, "stats", def.Stats, mapStat),
		Timeline:     list(f, "timeline", def.Timeline, mapStep),
	}), nil)
}

// TechnologyPage resolves the technology page settings.
func (r *Resolver) TechnologyPage(ctx context.Context) Result[TechnologyPage] {
	def := clone(r.defaults.TechnologyPage)
	f, ok, err := r.singleton(ctx, "technologyPage", TypeTechnologyPage,
		"heroTitle", "heroSubtitle", "technologies", "stats")
	if !ok {
		return done(completeTechnologyPage(def), err)
	}
	return done(completeTechnologyPage(TechnologyPage{
		HeroTitle:    f.str("heroTitle", def.HeroTitle),
		HeroSubtitle: f.str("heroSubtitle", def.HeroSubtitle),
		Technologies: list(f, "technologies", def.Technologies, mapFeature),
		Stats:        list(f, "stats", def.Stats, mapStat),
	}), nil)
}

// HomePage resolves homepage settings.
func (r *Resolver) HomePage(ctx context.Context) Result[HomePage] {
	def := clone(r.defaults.HomePage)
	f, ok, err := r.singleton(ctx, "homePage", TypeHomePage,
		"features", "stats", "process", "ctaTitle", "ctaSubtitle")
	if !ok {
		return done(completeHomePage(def), err)
	}
	return done(completeHomePage(HomePage{
		Features:    list(f, "features", def.Features, mapFeature),
		Stats:       list(f, "stats", def.Stats, mapStat),
		Process:     list(f, "process", def.Process, mapStep),
		CTATitle:    f.str("ctaTitle", def.CTATitle),
		CTASubtitle: f.str("ctaSubtitle", def.CTASubtitle),
	}), nil)
}

// ServicesPage resolves the services overview settings.
func (r *Resolver) ServicesPage(ctx context.Context) Result[ServicesPage] {
	def := clone(r.defaults.ServicesPage)
	f, ok, err := r.singleton(ctx, "servicesPage", TypeServicesPage,
		"heroTitle", "heroSubtitle", "highlights", "process")
	if !ok {
		return done(completeServicesPage(def), err)
	}
	return done(completeServicesPage(ServicesPage{
		HeroTitle:    f.str("heroTitle", def.HeroTitle),
		HeroSubtitle: f.str("heroSubtitle", def.HeroSubtitle),
		Highlights:   list(f, "highlights", def.Highlights, mapFeature),
		Process:      list(f, "process", def.Process, mapStep),
	}), nil)
}

// DSDPage resolves the digital smile design page settings.
func (r *Resolver) DSDPage(ctx context.Context) Result[DSDPage] {
	def := clone(r.defaults.DSDPage)
	f, ok, err := r.singleton(ctx, "dsdPage", TypeDSDPage,
		"heroTitle", "heroSubtitle", "benefits", "process", "stats")
	if !ok {
		return done(completeDSDPage(def), err)
	}
	return done(completeDSDPage(DSDPage{
		HeroTitle:    f.str("heroTitle", def.HeroTitle),
		HeroSubtitle: f.str("heroSubtitle", def.HeroSubtitle),
		Benefits:     list(f, "benefits", def.Benefits, mapFeature),
		Process:      list(f, "process", def.Process, mapStep),
		Stats:        list(f, "stats", def.Stats, mapStat),
	}), nil)
}

// TourismPage resolves the dental tourism page settings.
func (r *Resolver) TourismPage(ctx context.Context) Result[TourismPage] {
	def := clone(r.defaults.TourismPage)
	f, ok, err := r.singleton(ctx, "tourismPage", TypeTourismPage,
		"heroTitle", "heroSubtitle", "included", "journey", "stats")
	if !ok {
		return done(completeTourismPage(def), err)
	}
	return done(completeTourismPage(TourismPage{
		HeroTitle:    f.str("heroTitle", def.HeroTitle),
		HeroSubtitle: f.str("heroSubtitle", def.HeroSubtitle),
		Included:     list(f, "included", def.Included, mapFeature),
		Journey:      list(f, "journey", def.Journey, mapStep),
		Stats:        list(f, "stats", def.Stats, mapStat),
	}), nil)
}

// The complete functions replace absent lists with empty ones so injected defaults
// without a list still encode as [].

func completeSiteSettings(v SiteSettings) SiteSettings {
	v.SocialLinks = orEmpty(v.SocialLinks)
	return v
}

func completeAboutPage(v AboutPage) AboutPage {
	v.Values = orEmpty(v.Values)
	v.Stats = orEmpty(v.Stats)
	v.Timeline = orEmpty(v.Timeline)
	return v
}

func completeTechnologyPage(v TechnologyPage) TechnologyPage {
	v.Technologies = orEmpty(v.Technologies)
	v.Stats = orEmpty(v.Stats)
	return v
}

func completeHomePage(v HomePage) HomePage {
	v.Features = orEmpty(v.Features)
	v.Stats = orEmpty(v.Stats)
	v.Process = orEmpty(v.Process)
	return v
}

func completeServicesPage(v ServicesPage) ServicesPage {
	v.Highlights = orEmpty(v.Highlights)
	v.Process = orEmpty(v.Process)
	return v
}

func completeDSDPage(v DSDPage) DSDPage {
	v.Benefits = orEmpty(v.Benefits)
	v.Process = orEmpty(v.Process)
	v.Stats = orEmpty(v.Stats)
	return v
}

func completeTourismPage(v TourismPage) TourismPage {
	v.Included = orEmpty(v.Included)
	v.Journey = orEmpty(v.Journey)
	v.Stats = orEmpty(v.Stats)
	return v
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// mapFeature accepts both "icon" and "iconName" keys.
func mapFeature(f fields) Feature {
	return Feature{
		Title:       f.str("title", ""),
		Description: f.str("description", ""),
		Icon:        icons.Resolve(iconKey(f)),
	}
}

func mapStat(f fields) Stat {
	return Stat{
		Value: f.str("value", ""),
		Label: f.str("label", ""),
	}
}

func mapStep(f fields) Step {
	number := f.str("number", "")
	if number == "" {
		if n := f.integer("number", -1); n >= 0 {
			number = fmt.Sprintf("%02d", n)
		}
	}
	return Step{
		Number:      number,
		Title:       f.str("title", ""),
		Description: f.str("description", ""),
		Icon:        icons.Resolve(iconKey(f)),
	}
}

func iconKey(f fields) string {
	return f.str("iconName", f.str("icon", ""))
}

