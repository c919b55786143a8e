package store

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// GROQ renders the query in the remote store's query language, e.g.
//
//	*[_type == "faq"] | order(order asc) [0...10] { _id, _type, question, answer }
//
// Filter keys are rendered in sorted order so equal queries produce equal strings.
func (q Query) GROQ() string {
	var b strings.Builder
	b.WriteString(`*[_type == `)
	b.WriteString(quote(q.Type))

	keys := make([]string, 0, len(q.Filter))
	for key := range q.Filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(" && ")
		b.WriteString(key)
		b.WriteString(" == ")
		b.WriteString(quote(q.Filter[key]))
	}
	b.WriteString("]")

	if len(q.OrderBy) > 0 {
		parts := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			dir := "asc"
			if o.Desc {
				dir = "desc"
			}
			parts = append(parts, o.Field+" "+dir)
		}
		b.WriteString(" | order(")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}

	if q.Limit > 0 {
		b.WriteString(" [0...")
		b.WriteString(strconv.Itoa(q.Limit))
		b.WriteString("]")
	}

	if len(q.Fields) > 0 {
		seen := map[string]struct{}{"_id": {}, "_type": {}}
		fields := []string{"_id", "_type"}
		for _, f := range q.Fields {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			fields = append(fields, f)
		}
		b.WriteString(" { ")
		b.WriteString(strings.Join(fields, ", "))
		b.WriteString(" }")
	}
	return b.String()
}

func quote(s string) string {
	raw, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(raw)
}
