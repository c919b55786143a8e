package content

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/occlusa/dental-web/internal/icons"
	"github.com/occlusa/dental-web/internal/portable"
	"github.com/occlusa/dental-web/internal/store"
)

// TypeServicePillar is the document type of service detail pages.
const TypeServicePillar = "servicePillar"

var slugFolding = strings.NewReplacer("ı", "i", "İ", "i", "ß", "ss", "ø", "o", "æ", "ae", "ł", "l")

// NormalizeSlug lower-cases s, strips diacritics and joins words with single hyphens.
func NormalizeSlug(s string) string {
	s = slugFolding.Replace(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// PillarSlugs lists the slugs that have default content, sorted.
func (r *Resolver) PillarSlugs() []string {
	slugs := make([]string, 0, len(r.defaults.ServicePillars))
	for slug := range r.defaults.ServicePillars {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// ServicePillar resolves a service detail page. Unknown slugs are served the
// dental-implants content; a store document for the slug is merged over that default.
func (r *Resolver) ServicePillar(ctx context.Context, slug string) Result[ServicePillar] {
	key := NormalizeSlug(slug)
	def, ok := r.defaults.ServicePillars[key]
	if !ok {
		def = r.defaults.ServicePillars[FallbackPillarSlug]
		if def.Slug == "" {
			def.Slug = FallbackPillarSlug
		}
	}
	def = clone(def)
	if key == "" {
		key = def.Slug
	}

	docs, err := r.fetch(ctx, "servicePillar", store.Query{
		Type:   TypeServicePillar,
		Filter: map[string]string{"slug.current": key},
		Fields: []string{"slug", "seo", "heroTitle", "heroSubtitle", "sections", "technologies", "benefits", "faqs", "primaryCta", "secondaryCta"},
		Limit:  1,
	})
	if err != nil || len(docs) == 0 {
		return done(completePillar(def), err)
	}

	f := docs[0]
	out := ServicePillar{
		Slug:         NormalizeSlug(f.slug("slug", def.Slug)),
		SEO:          def.SEO,
		HeroTitle:    f.str("heroTitle", def.HeroTitle),
		HeroSubtitle: f.str("heroSubtitle", def.HeroSubtitle),
		Sections:     list(f, "sections", def.Sections, mapPillarSection),
		Technologies: list(f, "technologies", def.Technologies, mapFeature),
		Benefits:     list(f, "benefits", def.Benefits, mapFeature),
		FAQs:         list(f, "faqs", def.FAQs, mapQA),
		PrimaryCTA:   f.str("primaryCta", def.PrimaryCTA),
		SecondaryCTA: f.str("secondaryCta", def.SecondaryCTA),
	}
	if seo, ok := f.object("seo"); ok {
		out.SEO = PillarSEO{
			Title:       seo.str("title", def.SEO.Title),
			Description: seo.str("description", def.SEO.Description),
		}
	}
	if out.Slug == "" {
		out.Slug = key
	}
	return done(completePillar(out), nil)
}

func mapPillarSection(f fields) PillarSection {
	return PillarSection{
		Heading: f.str("heading", ""),
		Body:    f.blocks("body", emptyBlocks()),
		Icon:    icons.Resolve(iconKey(f)),
	}
}

func mapQA(f fields) QA {
	return QA{
		Question: f.str("question", ""),
		Answer:   f.str("answer", ""),
	}
}

// completePillar replaces nil lists so injected defaults cannot leak nulls.
func completePillar(p ServicePillar) ServicePillar {
	p.Sections = orEmpty(p.Sections)
	for i := range p.Sections {
		if p.Sections[i].Body == nil {
			p.Sections[i].Body = emptyBlocks()
		}
	}
	p.Technologies = orEmpty(p.Technologies)
	p.Benefits = orEmpty(p.Benefits)
	p.FAQs = orEmpty(p.FAQs)
	return p
}

func emptyBlocks() portable.Blocks {
	return portable.Blocks{}
}
