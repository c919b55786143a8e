package content

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/occlusa/dental-web/internal/images"
	"github.com/occlusa/dental-web/internal/portable"
	"github.com/occlusa/dental-web/internal/store"
)

// fields holds one document's values, still encoded. Each accessor decodes only the keys
// it needs, so a malformed value costs one field rather than the whole document.
type fields map[string]json.RawMessage

func toFields(doc store.Document) fields {
	f := make(fields, len(doc))
	for key, value := range doc {
		raw, err := json.Marshal(value)
		if err != nil {
			continue
		}
		f[key] = raw
	}
	return f
}

func toFieldsList(docs []store.Document) []fields {
	out := make([]fields, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		out = append(out, toFields(doc))
	}
	return out
}

// value returns the raw value for key when it is present and not null.
func (f fields) value(key string) (json.RawMessage, bool) {
	raw, ok := f[key]
	if !ok {
		return nil, false
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false
	}
	return trimmed, true
}

func (f fields) str(key, fallback string) string {
	raw, ok := f.value(key)
	if !ok {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	return s
}

func (f fields) number(key string, fallback float64) float64 {
	raw, ok := f.value(key)
	if !ok {
		return fallback
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return fallback
	}
	return n
}

func (f fields) integer(key string, fallback int) int {
	n := f.number(key, math.NaN())
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return int(math.Round(n))
}

// slug accepts both {"current": "x"} objects and plain strings.
func (f fields) slug(key, fallback string) string {
	raw, ok := f.value(key)
	if !ok {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Current *string `json:"current"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.Current == nil {
		return fallback
	}
	return *obj.Current
}

func (f fields) object(key string) (fields, bool) {
	raw, ok := f.value(key)
	if !ok {
		return nil, false
	}
	var obj fields
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// records decodes an array of objects. A present empty array reports true with an empty
// slice; non-object entries are skipped.
func (f fields) records(key string) ([]fields, bool) {
	raw, ok := f.value(key)
	if !ok {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	out := make([]fields, 0, len(items))
	for _, item := range items {
		var obj fields
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			continue
		}
		out = append(out, obj)
	}
	return out, true
}

func (f fields) image(key string) *images.Ref {
	raw, ok := f.value(key)
	if !ok {
		return nil
	}
	var ref images.Ref
	if err := json.Unmarshal(raw, &ref); err != nil {
		var url string
		if json.Unmarshal(raw, &url) != nil || strings.TrimSpace(url) == "" {
			return nil
		}
		ref = images.Ref{Type: "image", Asset: images.AssetRef{URL: url}}
	}
	if ref.IsZero() {
		return nil
	}
	return &ref
}

func (f fields) blocks(key string, fallback portable.Blocks) portable.Blocks {
	raw, ok := f.value(key)
	if !ok {
		return fallback
	}
	blocks, ok := portable.Decode(raw)
	if !ok {
		var text string
		if json.Unmarshal(raw, &text) == nil {
			return portable.Blocks{portable.Text("b0", text)}
		}
		return fallback
	}
	return blocks
}

// list resolves a sub-list: a present array (even an empty one) replaces fallback.
func list[T any](f fields, key string, fallback []T, item func(fields) T) []T {
	records, ok := f.records(key)
	if !ok {
		return fallback
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, item(rec))
	}
	return out
}

// clone deep-copies JSON-shaped view models.
func clone[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
