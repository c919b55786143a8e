// Package store provides read-only access to the content document store.
//
// Every backend answers the same Query: documents of one type, optionally filtered by
// equality, ordered, projected and limited. Documents are JSON-compatible records.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a store resource cannot be located.
var ErrNotFound = errors.New("store: not found")

// Document is a single JSON-compatible record.
type Document map[string]any

// ID returns the document identifier.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// Type returns the document type.
func (d Document) Type() string {
	t, _ := d["_type"].(string)
	return t
}

// Order sorts results by Field. Desc flips the direction.
type Order struct {
	Field string
	Desc  bool
}

// Asc orders ascending by field.
func Asc(field string) Order { return Order{Field: field} }

// Desc orders descending by field.
func Desc(field string) Order { return Order{Field: field, Desc: true} }

// Query selects documents of a single type.
type Query struct {
	Type    string
	Filter  map[string]string
	OrderBy []Order
	Fields  []string
	Limit   int
}

// Validate reports whether the query can be executed.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Type) == "" {
		return errors.New("store: query type is required")
	}
	if q.Limit < 0 {
		return fmt.Errorf("store: invalid limit %d", q.Limit)
	}
	for key := range q.Filter {
		if !validPath(key) {
			return fmt.Errorf("store: invalid filter field %q", key)
		}
	}
	for _, o := range q.OrderBy {
		if !validPath(o.Field) {
			return fmt.Errorf("store: invalid order field %q", o.Field)
		}
	}
	for _, f := range q.Fields {
		if !validPath(f) {
			return fmt.Errorf("store: invalid projection field %q", f)
		}
	}
	return nil
}

// Client executes queries against a document store. A nil or empty result means the
// store holds no matching documents.
type Client interface {
	Query(ctx context.Context, q Query) ([]Document, error)
}

// ClientFunc adapts ordinary functions to Client.
type ClientFunc func(ctx context.Context, q Query) ([]Document, error)

// Query calls f.
func (f ClientFunc) Query(ctx context.Context, q Query) ([]Document, error) {
	return f(ctx, q)
}

// StatusError reports a non-successful HTTP response from a remote store.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("store: remote status %d", e.StatusCode)
	}
	return fmt.Sprintf("store: remote status %d: %s", e.StatusCode, e.Body)
}

// Is matches ErrNotFound for 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

func validPath(path string) bool {
	if path == "" {
		return false
	}
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return false
		}
		for i, r := range segment {
			switch {
			case r == '_':
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9' && i > 0:
			default:
				return false
			}
		}
	}
	return true
}

// evaluate applies the query to an in-memory document set. The input is not modified.
func evaluate(docs []Document, q Query) []Document {
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Type() != q.Type {
			continue
		}
		if !matchesFilter(doc, q.Filter) {
			continue
		}
		matched = append(matched, doc)
	}
	if len(q.OrderBy) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, o := range q.OrderBy {
				cmp := compareValues(lookupPath(matched[i], o.Field), lookupPath(matched[j], o.Field))
				if cmp == 0 {
					continue
				}
				if o.Desc {
					return cmp > 0
				}
				return cmp < 0
			}
			return false
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	out := make([]Document, 0, len(matched))
	for _, doc := range matched {
		out = append(out, project(doc, q.Fields))
	}
	return out
}

func matchesFilter(doc Document, filter map[string]string) bool {
	for key, want := range filter {
		got, ok := lookupPath(doc, key).(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func lookupPath(doc Document, path string) any {
	var current any = map[string]any(doc)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			if d, isDoc := current.(Document); isDoc {
				m = d
			} else {
				return nil
			}
		}
		current, ok = m[segment]
		if !ok {
			return nil
		}
	}
	return current
}

// compareValues orders numbers numerically and strings lexically. Missing values sort last.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func project(doc Document, fields []string) Document {
	if len(fields) == 0 {
		return cloneDocument(doc)
	}
	out := Document{}
	for _, key := range []string{"_id", "_type"} {
		if v, ok := doc[key]; ok {
			out[key] = cloneValue(v)
		}
	}
	for _, field := range fields {
		top := strings.SplitN(field, ".", 2)[0]
		if v, ok := doc[top]; ok {
			out[top] = cloneValue(v)
		}
	}
	return out
}

func cloneDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case Document:
		return map[string]any(cloneDocument(t))
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

// normalize converts arbitrary decoded values (YAML, Firestore) into plain JSON shapes.
func normalize(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
