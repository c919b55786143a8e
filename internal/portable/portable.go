// Package portable models block-based rich text as stored by the content backend.
// Blocks are passed through untouched; the helpers here only read them.
package portable

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Span is a run of text sharing the same marks. Children of a block may also be inline
// objects of other types; their fields are kept in Extra.
type Span struct {
	Key   string   `json:"_key,omitempty"`
	Type  string   `json:"_type,omitempty"`
	Text  string   `json:"text,omitempty"`
	Marks []string `json:"marks,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// MarkDef annotates spans with structured marks such as links.
type MarkDef struct {
	Key  string `json:"_key,omitempty"`
	Type string `json:"_type,omitempty"`
	Href string `json:"href,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Block is a paragraph-level element. Fields the package does not model are kept in
// Extra and written back on marshal.
type Block struct {
	Key      string    `json:"_key,omitempty"`
	Type     string    `json:"_type,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children"`
	MarkDefs []MarkDef `json:"markDefs"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Blocks is an ordered rich text document.
type Blocks []Block

// UnmarshalJSON decodes a span or inline object and keeps unknown keys.
func (s *Span) UnmarshalJSON(data []byte) error {
	type alias Span
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	out := Span(decoded)
	extra, err := remainder(data, out.fields())
	if err != nil {
		return err
	}
	out.Extra = extra
	*s = out
	return nil
}

// MarshalJSON encodes the span. Keys absent on decode stay absent.
func (s Span) MarshalJSON() ([]byte, error) {
	return encodeObject(s.Extra, s.fields())
}

func (s Span) fields() map[string]any {
	m := make(map[string]any, 4)
	setNonZero(m, "_key", s.Key)
	setNonZero(m, "_type", s.Type)
	setNonZero(m, "text", s.Text)
	if s.Marks != nil {
		m["marks"] = s.Marks
	}
	return m
}

// UnmarshalJSON decodes a mark definition and keeps unknown keys.
func (d *MarkDef) UnmarshalJSON(data []byte) error {
	type alias MarkDef
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	out := MarkDef(decoded)
	extra, err := remainder(data, out.fields())
	if err != nil {
		return err
	}
	out.Extra = extra
	*d = out
	return nil
}

// MarshalJSON encodes the mark definition including preserved keys.
func (d MarkDef) MarshalJSON() ([]byte, error) {
	return encodeObject(d.Extra, d.fields())
}

func (d MarkDef) fields() map[string]any {
	m := make(map[string]any, 3)
	setNonZero(m, "_key", d.Key)
	setNonZero(m, "_type", d.Type)
	setNonZero(m, "href", d.Href)
	return m
}

// UnmarshalJSON decodes a block and keeps unknown keys. Explicit null children decode as
// an empty list.
func (b *Block) UnmarshalJSON(data []byte) error {
	type alias Block
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	out := Block(decoded)
	if raw, ok := rawKey(data, "children"); ok && isNull(raw) {
		out.Children = []Span{}
	}
	extra, err := remainder(data, out.fields())
	if err != nil {
		return err
	}
	delete(extra, "children")
	if len(extra) == 0 {
		extra = nil
	}
	out.Extra = extra
	*b = out
	return nil
}

// MarshalJSON encodes the block including any preserved unknown keys. Children and
// markDefs are written only when set, never as null.
func (b Block) MarshalJSON() ([]byte, error) {
	return encodeObject(b.Extra, b.fields())
}

func (b Block) fields() map[string]any {
	m := make(map[string]any, 7)
	setNonZero(m, "_key", b.Key)
	setNonZero(m, "_type", b.Type)
	setNonZero(m, "style", b.Style)
	setNonZero(m, "listItem", b.ListItem)
	if b.Level != 0 {
		m["level"] = b.Level
	}
	if b.Children != nil {
		m["children"] = b.Children
	}
	if b.MarkDefs != nil {
		m["markDefs"] = b.MarkDefs
	}
	return m
}

func setNonZero(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

// remainder returns the keys of the object in data that known does not reproduce, so
// values such as "level":0 survive a round trip verbatim.
func remainder(data []byte, known map[string]any) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for key := range known {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func encodeObject(extra map[string]json.RawMessage, known map[string]any) ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(extra)+len(known))
	for key, value := range extra {
		merged[key] = value
	}
	for key, value := range known {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}

func rawKey(data []byte, key string) (json.RawMessage, bool) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, false
	}
	raw, ok := all[key]
	return raw, ok
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func cloneRaw(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// Decode interprets raw JSON as blocks. It reports false when the value is absent or
// does not look like a list of blocks, letting callers fall back to defaults.
func Decode(raw json.RawMessage) (Blocks, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, false
	}
	var blocks Blocks
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, false
	}
	if blocks == nil {
		blocks = Blocks{}
	}
	return blocks, true
}

// Text builds a single normal block from plain text.
func Text(key, text string) Block {
	return Block{
		Key:      key,
		Type:     "block",
		Style:    "normal",
		Children: []Span{{Key: key + "-0", Type: "span", Text: text}},
	}
}

// Clone returns a deep copy of the blocks.
func (bs Blocks) Clone() Blocks {
	if bs == nil {
		return nil
	}
	out := make(Blocks, len(bs))
	for i, b := range bs {
		cp := b
		if b.Children != nil {
			cp.Children = make([]Span, len(b.Children))
			for j, span := range b.Children {
				if span.Marks != nil {
					span.Marks = append([]string{}, span.Marks...)
				}
				span.Extra = cloneRaw(span.Extra)
				cp.Children[j] = span
			}
		}
		if b.MarkDefs != nil {
			cp.MarkDefs = make([]MarkDef, len(b.MarkDefs))
			for j, def := range b.MarkDefs {
				def.Extra = cloneRaw(def.Extra)
				cp.MarkDefs[j] = def
			}
		}
		cp.Extra = cloneRaw(b.Extra)
		out[i] = cp
	}
	return out
}

// PlainText joins span text, separating blocks with blank lines.
func PlainText(blocks Blocks) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var sb strings.Builder
		for _, span := range b.Children {
			sb.WriteString(span.Text)
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Excerpt returns at most maxRunes runes of collapsed plain text, cut at a word boundary.
func Excerpt(blocks Blocks, maxRunes int) string {
	text := strings.Join(strings.Fields(PlainText(blocks)), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
