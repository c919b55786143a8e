package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/occlusa/dental-web/internal/content"
	"github.com/occlusa/dental-web/internal/seo"
	"github.com/occlusa/dental-web/internal/store"
)

func TestJSONLDFAQFromDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	var doc map[string]any
	env := decodeEnvelope(t, get(t, router, "/api/jsonld/faq"), &doc)

	require.Empty(t, env.Error)
	require.Equal(t, "FAQPage", doc["@type"])
	require.Len(t, doc["mainEntity"], len(content.DefaultTables().FAQs))
}

func TestJSONLDFAQForPillar(t *testing.T) {
	router, _ := newTestRouter(t)

	var doc map[string]any
	decodeEnvelope(t, get(t, router, "/api/jsonld/faq?pillar=porcelain-veneers"), &doc)

	want := content.DefaultTables().ServicePillars["porcelain-veneers"].FAQs
	require.Len(t, doc["mainEntity"], len(want))
}

func TestJSONLDBreadcrumbs(t *testing.T) {
	router, _ := newTestRouter(t)

	var doc struct {
		Items []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
			Item     string `json:"item"`
		} `json:"itemListElement"`
	}
	decodeEnvelope(t, get(t, router, "/api/jsonld/breadcrumbs?path=/services/dental-implants"), &doc)

	require.Len(t, doc.Items, 3)
	for i, item := range doc.Items {
		require.Equal(t, i+1, item.Position)
	}
}

func TestJSONLDRatingFromStoreTestimonials(t *testing.T) {
	router, _ := newTestRouter(t,
		store.Document{"_id": "t1", "_type": content.TypeTestimonial, "name": "Anna", "text": "Great", "rating": 5},
		store.Document{"_id": "t2", "_type": content.TypeTestimonial, "name": "Ben", "text": "Good", "rating": 4},
	)

	var doc map[string]any
	decodeEnvelope(t, get(t, router, "/api/jsonld/rating"), &doc)

	require.Equal(t, "AggregateRating", doc["@type"])
	require.EqualValues(t, 4.5, doc["ratingValue"])
	require.EqualValues(t, 2, doc["reviewCount"])
}

func TestJSONLDBusinessMasksOutage(t *testing.T) {
	router, mem := newTestRouter(t)
	mem.FailWith(content.TypeSiteSettings, errors.New("connection refused"))

	var doc map[string]any
	env := decodeEnvelope(t, get(t, router, "/api/jsonld/business"), &doc)

	require.Contains(t, env.Error, "connection refused")
	require.Equal(t, seo.BusinessBaseline()["@type"], doc["@type"])
	require.NotEmpty(t, doc["name"])
}

func TestJSONLDOrganizationFromSettings(t *testing.T) {
	router, _ := newTestRouter(t, store.Document{
		"_id":        "settings",
		"_type":      content.TypeSiteSettings,
		"clinicName": "Occlusa Dental",
	})

	var doc map[string]any
	env := decodeEnvelope(t, get(t, router, "/api/jsonld/organization"), &doc)

	require.Empty(t, env.Error)
	require.Equal(t, "Organization", doc["@type"])
	require.Equal(t, "Occlusa Dental", doc["name"])
	require.Equal(t, testBaseURL, doc["url"])
	require.NotEmpty(t, doc["logo"])
}

func TestJSONLDWebSiteMasksOutage(t *testing.T) {
	router, mem := newTestRouter(t)
	mem.FailWith(content.TypeSiteSettings, errors.New("connection refused"))

	rr := get(t, router, "/api/jsonld/website")

	var doc map[string]any
	env := decodeEnvelope(t, rr, &doc)
	require.Contains(t, env.Error, "connection refused")
	require.Equal(t, "WebSite", doc["@type"])
	require.Equal(t, content.DefaultTables().SiteSettings.ClinicName, doc["name"])
	require.Equal(t, testBaseURL, doc["url"])
	require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestJSONLDDoctor(t *testing.T) {
	router, _ := newTestRouter(t)
	member := content.DefaultTables().TeamMembers[0]

	var doc map[string]any
	decodeEnvelope(t, get(t, router, "/api/jsonld/doctor/"+member.ID), &doc)

	require.Equal(t, member.Name, doc["name"])
	require.Equal(t, member.Role, doc["jobTitle"])
	require.NotEmpty(t, doc["description"])
}

func TestJSONLDDoctorNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := get(t, router, "/api/jsonld/doctor/nobody")

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), "doctor_not_found")
}

func TestJSONLDProcedureUsesCanonicalURL(t *testing.T) {
	router, _ := newTestRouter(t)

	var doc map[string]any
	decodeEnvelope(t, get(t, router, "/api/jsonld/procedure/Teeth-Whitening"), &doc)

	require.Equal(t, "MedicalProcedure", doc["@type"])
	require.Equal(t, testBaseURL+"/services/teeth-whitening", doc["url"])
}

func TestJSONLDVideos(t *testing.T) {
	router, _ := newTestRouter(t,
		store.Document{"_id": "v1", "_type": content.TypeYoutubeVideo, "title": "Patient journey", "videoId": "abc123", "category": "tourism"},
	)

	var docs []map[string]any
	decodeEnvelope(t, get(t, router, "/api/jsonld/videos"), &docs)

	require.Len(t, docs, 1)
	require.Equal(t, "VideoObject", docs[0]["@type"])
}

func TestPillarMeta(t *testing.T) {
	router, _ := newTestRouter(t)

	var meta seo.Meta
	decodeEnvelope(t, get(t, router, "/api/meta/services/porcelain-veneers"), &meta)

	require.Equal(t, testBaseURL+"/services/porcelain-veneers", meta.Canonical)
	require.NotEmpty(t, meta.Title)
}

func TestPageMetaOverridesTitle(t *testing.T) {
	router, _ := newTestRouter(t)

	var meta seo.Meta
	decodeEnvelope(t, get(t, router, "/api/meta?path=/about&title=About%20Us"), &meta)

	require.Equal(t, testBaseURL+"/about", meta.Canonical)
	require.Contains(t, meta.Title, "About Us")
}
