// Package images turns opaque image asset references into width-constrained CDN URLs.
package images

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://cdn.sanity.io/images"

// Ref is an image field as stored on a document: {"_type":"image","asset":{"_ref":"image-..."}}.
type Ref struct {
	Type  string   `json:"_type,omitempty"`
	Asset AssetRef `json:"asset"`
	Alt   string   `json:"alt,omitempty"`
}

// AssetRef points at an uploaded asset. URL is set when the asset was expanded by the query.
type AssetRef struct {
	Ref string `json:"_ref,omitempty"`
	URL string `json:"url,omitempty"`
}

// IsZero reports whether the reference points at nothing.
func (r *Ref) IsZero() bool {
	return r == nil || (strings.TrimSpace(r.Asset.Ref) == "" && strings.TrimSpace(r.Asset.URL) == "")
}

// Asset is a parsed asset identifier of the form image-<id>-<w>x<h>-<format>.
type Asset struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ParseAsset parses an asset reference id.
func ParseAsset(ref string) (Asset, error) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, "image-") {
		return Asset{}, fmt.Errorf("images: unsupported asset ref %q", ref)
	}
	parts := strings.Split(strings.TrimPrefix(ref, "image-"), "-")
	if len(parts) < 3 {
		return Asset{}, fmt.Errorf("images: malformed asset ref %q", ref)
	}
	format := parts[len(parts)-1]
	dims := parts[len(parts)-2]
	id := strings.Join(parts[:len(parts)-2], "-")
	w, h, ok := strings.Cut(dims, "x")
	if !ok || id == "" || format == "" {
		return Asset{}, fmt.Errorf("images: malformed asset ref %q", ref)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Asset{}, fmt.Errorf("images: malformed width in %q: %w", ref, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Asset{}, fmt.Errorf("images: malformed height in %q: %w", ref, err)
	}
	return Asset{ID: id, Width: width, Height: height, Format: format}, nil
}

// Builder derives URLs for a project and dataset.
type Builder struct {
	ProjectID string
	Dataset   string
	BaseURL   string
}

// NewBuilder constructs a Builder, defaulting the CDN base URL.
func NewBuilder(projectID, dataset, baseURL string) Builder {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return Builder{
		ProjectID: strings.TrimSpace(projectID),
		Dataset:   strings.TrimSpace(dataset),
		BaseURL:   baseURL,
	}
}

// URL returns the CDN URL for ref constrained to width pixels, or "" when ref is empty
// or cannot be parsed. Expanded asset URLs are used as-is apart from the width parameter.
func (b Builder) URL(ref *Ref, width int) string {
	if ref.IsZero() {
		return ""
	}
	var base string
	if direct := strings.TrimSpace(ref.Asset.URL); direct != "" {
		base = direct
	} else {
		asset, err := ParseAsset(ref.Asset.Ref)
		if err != nil || b.ProjectID == "" || b.Dataset == "" {
			return ""
		}
		root := b.BaseURL
		if root == "" {
			root = defaultBaseURL
		}
		base = fmt.Sprintf("%s/%s/%s/%s-%dx%d.%s", root, b.ProjectID, b.Dataset, asset.ID, asset.Width, asset.Height, asset.Format)
	}

	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	q := u.Query()
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	q.Set("auto", "format")
	u.RawQuery = q.Encode()
	return u.String()
}

// URLOr returns the built URL or placeholder when none can be derived.
func (b Builder) URLOr(ref *Ref, width int, placeholder string) string {
	if built := b.URL(ref, width); built != "" {
		return built
	}
	return placeholder
}
