package content

import (
	"fmt"
	"net/url"

	"github.com/occlusa/dental-web/internal/icons"
	"github.com/occlusa/dental-web/internal/images"
	"github.com/occlusa/dental-web/internal/portable"
)

// SocialLink is a profile on an external network.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SiteSettings holds clinic-wide contact and SEO data.
type SiteSettings struct {
	ClinicName     string       `json:"clinicName"`
	Phone          string       `json:"phone"`
	WhatsApp       string       `json:"whatsapp"`
	Email          string       `json:"email"`
	Address        string       `json:"address"`
	SocialLinks    []SocialLink `json:"socialLinks"`
	WorkingHours   string       `json:"workingHours"`
	SEOTitle       string       `json:"seoTitle"`
	SEODescription string       `json:"seoDescription"`
	OGImage        *images.Ref  `json:"ogImage,omitempty"`
	OGImageURL     string       `json:"ogImageUrl"`
	Geo            GeoPoint     `json:"geo"`
}

// Hero is the landing banner.
type Hero struct {
	Title              string      `json:"title"`
	Subtitle           string      `json:"subtitle"`
	CTAText            string      `json:"ctaText"`
	CTALink            string      `json:"ctaLink"`
	BackgroundImage    *images.Ref `json:"backgroundImage,omitempty"`
	BackgroundImageURL string      `json:"backgroundImageUrl"`
	BackgroundAlt      string      `json:"backgroundAlt"`
}

// Service is a treatment card.
type Service struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        icons.Icon  `json:"icon"`
	Image       *images.Ref `json:"image,omitempty"`
	ImageURL    string      `json:"imageUrl"`
	Order       int         `json:"order"`
}

// Testimonial is a patient review.
type Testimonial struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	Flag     string      `json:"flag"`
	Text     string      `json:"text"`
	Rating   int         `json:"rating"`
	Image    *images.Ref `json:"image,omitempty"`
	ImageURL string      `json:"imageUrl"`
}

// TeamMember is a clinician profile.
type TeamMember struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Bio      portable.Blocks `json:"bio"`
	Image    *images.Ref     `json:"image,omitempty"`
	ImageURL string          `json:"imageUrl"`
	Order    int             `json:"order"`
}

// TourismPrice compares one treatment's price at home against abroad. PriceTR and PriceUK
// are always set; the remaining comparisons may be empty.
type TourismPrice struct {
	ID        string `json:"id"`
	Treatment string `json:"treatment"`
	PriceTR   string `json:"priceTR"`
	PriceUK   string `json:"priceUK"`
	PriceUS   string `json:"priceUS"`
	PriceDE   string `json:"priceDE"`
	Savings   string `json:"savings"`
	Order     int    `json:"order"`
}

// FAQ is a question and answer pair shown in accordions.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

// QA is an unordered question and answer pair.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Feature is a {title, description, icon} card used across page settings.
type Feature struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        icons.Icon `json:"icon"`
}

// Stat is a headline figure such as "15+ / Years of experience".
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Step is a numbered process or timeline entry.
type Step struct {
	Number      string     `json:"number"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        icons.Icon `json:"icon"`
}

// AboutPage holds the about page settings.
type AboutPage struct {
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Mission      string    `json:"mission"`
	Values       []Feature `json:"values"`
	Stats        []Stat    `json:"stats"`
	Timeline     []Step    `json:"timeline"`
}

// TechnologyPage holds the technology page settings.
type TechnologyPage struct {
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Technologies []Feature `json:"technologies"`
	Stats        []Stat    `json:"stats"`
}

// HomePage holds homepage sections that are not covered by their own category.
type HomePage struct {
	Features    []Feature `json:"features"`
	Stats       []Stat    `json:"stats"`
	Process     []Step    `json:"process"`
	CTATitle    string    `json:"ctaTitle"`
	CTASubtitle string    `json:"ctaSubtitle"`
}

// ServicesPage holds the services overview settings.
type ServicesPage struct {
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Highlights   []Feature `json:"highlights"`
	Process      []Step    `json:"process"`
}

// DSDPage holds the digital smile design page settings.
type DSDPage struct {
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Benefits     []Feature `json:"benefits"`
	Process      []Step    `json:"process"`
	Stats        []Stat    `json:"stats"`
}

// TourismPage holds the dental tourism page settings.
type TourismPage struct {
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Included     []Feature `json:"included"`
	Journey      []Step    `json:"journey"`
	Stats        []Stat    `json:"stats"`
}

// PillarSEO overrides page metadata for a service pillar.
type PillarSEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PillarSection is a long-form content section.
type PillarSection struct {
	Heading string          `json:"heading"`
	Body    portable.Blocks `json:"body"`
	Icon    icons.Icon      `json:"icon"`
}

// ServicePillar is the content of one service detail page.
type ServicePillar struct {
	Slug         string          `json:"slug"`
	SEO          PillarSEO       `json:"seo"`
	HeroTitle    string          `json:"heroTitle"`
	HeroSubtitle string          `json:"heroSubtitle"`
	Sections     []PillarSection `json:"sections"`
	Technologies []Feature       `json:"technologies"`
	Benefits     []Feature       `json:"benefits"`
	FAQs         []QA            `json:"faqs"`
	PrimaryCTA   string          `json:"primaryCta"`
	SecondaryCTA string          `json:"secondaryCta"`
}

// BeforeAfterCase is a treatment result gallery entry.
type BeforeAfterCase struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	BeforeImage *images.Ref `json:"beforeImage,omitempty"`
	AfterImage  *images.Ref `json:"afterImage,omitempty"`
	BeforeURL   string      `json:"beforeUrl"`
	AfterURL    string      `json:"afterUrl"`
	Treatment   string      `json:"treatment"`
	SortOrder   int         `json:"sortOrder"`
}

// YoutubeVideo is an embedded video.
type YoutubeVideo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	VideoID     string `json:"videoId"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SortOrder   int    `json:"sortOrder"`
}

// WatchURL returns the public watch page.
func (v YoutubeVideo) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(v.VideoID)
}

// EmbedURL returns the privacy-enhanced embed URL.
func (v YoutubeVideo) EmbedURL() string {
	return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(v.VideoID)
}

// ThumbnailURL returns the high quality thumbnail.
func (v YoutubeVideo) ThumbnailURL() string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", url.PathEscape(v.VideoID))
}
