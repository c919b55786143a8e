// Package seo builds JSON-LD documents and page metadata from resolved content.
// Every builder is a pure function returning a fresh map.
package seo

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/occlusa/dental-web/internal/content"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	setString(m, "url", url)
	setString(m, "logo", logoURL)
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
	}
	setString(m, "url", url)
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string `json:"name"`
	Item string `json:"url"`
}

// BreadcrumbList builds a schema.org BreadcrumbList. Positions start at 1 and follow input order.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Trail derives breadcrumbs for path: Home followed by one crumb per segment, named
// from the segment slug.
func Trail(baseURL, path string) []BreadcrumbItem {
	baseURL = strings.TrimRight(baseURL, "/")
	items := []BreadcrumbItem{{Name: "Home", Item: baseURL + "/"}}
	current := baseURL
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" {
			continue
		}
		current += "/" + segment
		items = append(items, BreadcrumbItem{Name: titleFromSlug(segment), Item: current})
	}
	return items
}

func titleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// QA is one question and answer in an FAQ page.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQPage builds a schema.org FAQPage. An empty input yields an empty mainEntity list.
func FAQPage(items []QA) map[string]any {
	questions := make([]map[string]any, 0, len(items))
	for _, it := range items {
		questions = append(questions, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": questions,
	}
}

// FAQsToQA adapts resolved FAQs.
func FAQsToQA(faqs []content.FAQ) []QA {
	out := make([]QA, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, QA{Question: f.Question, Answer: f.Answer})
	}
	return out
}

// PillarQA adapts service pillar FAQs.
func PillarQA(faqs []content.QA) []QA {
	out := make([]QA, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, QA{Question: f.Question, Answer: f.Answer})
	}
	return out
}

const (
	defaultBestRating = 5.0
	worstRating       = 1
)

// Rating is the input for AggregateRating. BestRating defaults to 5 when zero.
type Rating struct {
	RatingValue float64
	ReviewCount int
	BestRating  float64
}

// AggregateRating builds a schema.org AggregateRating. Values are not range checked.
func AggregateRating(r Rating) map[string]any {
	best := r.BestRating
	if best == 0 {
		best = defaultBestRating
	}
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "AggregateRating",
		"ratingValue": r.RatingValue,
		"reviewCount": r.ReviewCount,
		"bestRating":  best,
		"worstRating": worstRating,
	}
}

// RatingFromTestimonials averages testimonial ratings to one decimal place.
func RatingFromTestimonials(items []content.Testimonial) Rating {
	if len(items) == 0 {
		return Rating{}
	}
	total := 0
	for _, t := range items {
		total += t.Rating
	}
	avg := float64(total) / float64(len(items))
	return Rating{RatingValue: math.Round(avg*10) / 10, ReviewCount: len(items)}
}

// BusinessBaseline is the static descriptor LocalBusiness fills in.
func BusinessBaseline() map[string]any {
	return map[string]any{
		"@context":           schemaContext,
		"@type":              "Dentist",
		"name":               "Occlusa Dental Clinic",
		"url":                "https://www.occlusadental.com",
		"telephone":          "+90 212 555 01 23",
		"email":              "hello@occlusadental.com",
		"priceRange":         "€€",
		"medicalSpecialty":   "Dentistry",
		"currenciesAccepted": "EUR, GBP, USD, TRY",
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   "Abdi İpekçi Cad. No: 42, Nişantaşı",
			"addressLocality": "İstanbul",
			"postalCode":      "34367",
			"addressCountry":  "TR",
		},
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  41.0519,
			"longitude": 28.9947,
		},
		"openingHours": "Mo-Sa 09:00-19:00",
	}
}

// LocalBusiness merges site settings over BusinessBaseline. Empty settings fields keep
// the baseline value. siteURL may be empty.
func LocalBusiness(settings content.SiteSettings, siteURL string) map[string]any {
	m := BusinessBaseline()
	setString(m, "name", settings.ClinicName)
	setString(m, "url", siteURL)
	setString(m, "telephone", settings.Phone)
	setString(m, "email", settings.Email)
	setString(m, "description", settings.SEODescription)
	setString(m, "image", settings.OGImageURL)
	if settings.WorkingHours != "" {
		m["openingHoursDescription"] = settings.WorkingHours
	}
	if settings.Address != "" {
		address := m["address"].(map[string]any)
		address["streetAddress"] = settings.Address
	}
	if settings.Geo.Lat != 0 || settings.Geo.Lng != 0 {
		m["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  settings.Geo.Lat,
			"longitude": settings.Geo.Lng,
		}
	}
	sameAs := make([]string, 0, len(settings.SocialLinks))
	for _, link := range settings.SocialLinks {
		if link.URL != "" {
			sameAs = append(sameAs, link.URL)
		}
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// Person is the input for Physician.
type Person struct {
	Name       string
	Role       string
	BioExcerpt string
	ImageURL   string
}

// PhysicianBaseline is the static descriptor Physician fills in.
func PhysicianBaseline() map[string]any {
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "Person",
		"name":        "Occlusa Dental Team",
		"jobTitle":    "Dentist",
		"description": "Specialist dentist at Occlusa Dental Clinic, Istanbul.",
		"worksFor": map[string]any{
			"@type": "Dentist",
			"name":  "Occlusa Dental Clinic",
		},
		"knowsAbout": []string{"Dental implants", "Porcelain veneers", "Digital smile design", "Occlusion"},
	}
}

// Physician merges p over PhysicianBaseline.
func Physician(p Person) map[string]any {
	m := PhysicianBaseline()
	setString(m, "name", p.Name)
	setString(m, "jobTitle", p.Role)
	setString(m, "description", p.BioExcerpt)
	setString(m, "image", p.ImageURL)
	return m
}

// MedicalProcedure describes a service pillar page.
func MedicalProcedure(p content.ServicePillar, pageURL string) map[string]any {
	m := map[string]any{
		"@context":      schemaContext,
		"@type":         "MedicalProcedure",
		"name":          p.HeroTitle,
		"description":   firstNonEmpty(p.SEO.Description, p.HeroSubtitle),
		"procedureType": "https://schema.org/TherapeuticProcedure",
	}
	setString(m, "url", pageURL)
	return m
}

// VideoObject describes an embedded video.
func VideoObject(v content.YoutubeVideo) map[string]any {
	m := map[string]any{
		"@context":     schemaContext,
		"@type":        "VideoObject",
		"name":         v.Title,
		"thumbnailUrl": v.ThumbnailURL(),
		"embedUrl":     v.EmbedURL(),
		"contentUrl":   v.WatchURL(),
	}
	setString(m, "description", v.Description)
	return m
}

func setString(m map[string]any, key, value string) {
	if strings.TrimSpace(value) != "" {
		m[key] = value
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
