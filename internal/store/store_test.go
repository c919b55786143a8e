package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryGROQ(t *testing.T) {
	q := Query{
		Type:    "faq",
		Filter:  map[string]string{"slug.current": "implants", "category": "general"},
		OrderBy: []Order{Asc("order"), Desc("question")},
		Limit:   10,
		Fields:  []string{"question", "_id", "answer"},
	}
	require.Equal(t,
		`*[_type == "faq" && category == "general" && slug.current == "implants"] | order(order asc, question desc) [0...10] { _id, _type, question, answer }`,
		q.GROQ(),
	)
	require.Equal(t, `*[_type == "hero"]`, Query{Type: "hero"}.GROQ())
	require.Equal(t, `*[_type == "x" && title == "say \"hi\""]`, Query{Type: "x", Filter: map[string]string{"title": `say "hi"`}}.GROQ())
}

func TestQueryValidate(t *testing.T) {
	require.Error(t, Query{}.Validate())
	require.Error(t, Query{Type: "faq", Limit: -1}.Validate())
	require.Error(t, Query{Type: "faq", Filter: map[string]string{"a] || true": "x"}}.Validate())
	require.Error(t, Query{Type: "faq", OrderBy: []Order{Asc("1abc")}}.Validate())
	require.NoError(t, Query{Type: "faq", Filter: map[string]string{"slug.current": "x"}}.Validate())
}

func TestMemoryQueryFiltersOrdersAndProjects(t *testing.T) {
	mem := NewMemory(
		Document{"_id": "f2", "_type": "faq", "question": "B", "order": 2.0, "answer": "b"},
		Document{"_id": "f1", "_type": "faq", "question": "A", "order": 1.0, "answer": "a"},
		Document{"_id": "f3", "_type": "faq", "question": "C", "answer": "c"},
		Document{"_id": "h1", "_type": "hero", "title": "Hero"},
	)

	docs, err := mem.Query(context.Background(), Query{
		Type:    "faq",
		OrderBy: []Order{Asc("order")},
		Fields:  []string{"question"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, []string{"f1", "f2", "f3"}, []string{docs[0].ID(), docs[1].ID(), docs[2].ID()})
	require.Equal(t, Document{"_id": "f1", "_type": "faq", "question": "A"}, docs[0])

	docs, err = mem.Query(context.Background(), Query{Type: "faq", OrderBy: []Order{Desc("order")}, Limit: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "f2", docs[0].ID())

	docs, err = mem.Query(context.Background(), Query{Type: "faq", Filter: map[string]string{"question": "C"}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "f3", docs[0].ID())
	require.Equal(t, 3, mem.Calls("faq"))
}

func TestMemoryFilterOnNestedPath(t *testing.T) {
	mem := NewMemory(
		Document{"_id": "p1", "_type": "servicePillar", "slug": map[string]any{"current": "implants"}},
		Document{"_id": "p2", "_type": "servicePillar", "slug": map[string]any{"current": "veneers"}},
	)
	docs, err := mem.Query(context.Background(), Query{Type: "servicePillar", Filter: map[string]string{"slug.current": "veneers"}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "p2", docs[0].ID())
}

func TestMemoryResultsAreIsolated(t *testing.T) {
	seed := Document{"_id": "s", "_type": "siteSettings", "socialLinks": []any{map[string]any{"platform": "x"}}}
	mem := NewMemory(seed)
	seed["clinicName"] = "mutated"

	docs, err := mem.Query(context.Background(), Query{Type: "siteSettings"})
	require.NoError(t, err)
	require.NotContains(t, docs[0], "clinicName")

	docs[0]["socialLinks"].([]any)[0].(map[string]any)["platform"] = "changed"
	again, err := mem.Query(context.Background(), Query{Type: "siteSettings"})
	require.NoError(t, err)
	require.Equal(t, "x", again[0]["socialLinks"].([]any)[0].(map[string]any)["platform"])
}

func TestMemoryFailWith(t *testing.T) {
	boom := errors.New("boom")
	mem := NewMemory(Document{"_id": "h", "_type": "hero"})
	mem.FailWith("hero", boom)

	_, err := mem.Query(context.Background(), Query{Type: "hero"})
	require.ErrorIs(t, err, boom)

	mem.FailWith("hero", nil)
	docs, err := mem.Query(context.Background(), Query{Type: "hero"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestMemoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemory().Query(ctx, Query{Type: "hero"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompareValuesMissingSortsLast(t *testing.T) {
	require.Equal(t, 1, compareValues(nil, 1.0))
	require.Equal(t, -1, compareValues("a", nil))
	require.Equal(t, -1, compareValues(2.0, 10.0))
	require.Equal(t, -1, compareValues("10", "2"))
}
