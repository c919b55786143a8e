package portable

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePreservesUnknownBlockFields(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[{"_key":"a","_type":"block","style":"normal","children":[{"_type":"span","text":"Hello","marks":["strong"]}],"customAlign":"center"}]`)
	blocks, ok := Decode(raw)
	require.True(t, ok)
	require.Len(t, blocks, 1)
	require.Equal(t, "Hello", blocks[0].Children[0].Text)
	require.Equal(t, []string{"strong"}, blocks[0].Children[0].Marks)

	encoded, err := json.Marshal(blocks)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"customAlign":"center"`)
}

func TestBlocksRoundTripVerbatim(t *testing.T) {
	t.Parallel()

	raw := `[{"_key":"b1","_type":"block","children":[{"_type":"span","custom":"keep-me","marks":[],"text":"hi"},{"_key":"i1","_type":"inlineIcon","name":"tooth","size":2}],"level":0,"markDefs":[{"_key":"m1","_type":"callout","tone":"info"}],"style":"normal"},{"_key":"b2","_type":"block"},{"_key":"img","_type":"image","asset":{"_ref":"image-abc-10x10-png"}}]`

	blocks, ok := Decode(json.RawMessage(raw))
	require.True(t, ok)
	require.Len(t, blocks, 3)
	require.Equal(t, "inlineIcon", blocks[0].Children[1].Type)
	require.JSONEq(t, `"tooth"`, string(blocks[0].Children[1].Extra["name"]))
	require.Nil(t, blocks[1].Children)

	encoded, err := json.Marshal(blocks)
	require.NoError(t, err)
	require.Equal(t, raw, string(encoded))

	cloned, err := json.Marshal(blocks.Clone())
	require.NoError(t, err)
	require.Equal(t, raw, string(cloned))
}

func TestNullChildrenEncodeAsEmptyList(t *testing.T) {
	t.Parallel()

	blocks, ok := Decode(json.RawMessage(`[{"_type":"block","children":null}]`))
	require.True(t, ok)
	require.NotNil(t, blocks[0].Children)

	encoded, err := json.Marshal(blocks)
	require.NoError(t, err)
	require.Equal(t, `[{"_type":"block","children":[]}]`, string(encoded))
	require.NotContains(t, string(encoded), "null")
}

func TestDecodeRejectsMalformedValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{``, `null`, `"just a string"`, `{"_type":"block"}`} {
		_, ok := Decode(json.RawMessage(raw))
		require.False(t, ok, "expected %q to be rejected", raw)
	}

	blocks, ok := Decode(json.RawMessage(`[]`))
	require.True(t, ok)
	require.NotNil(t, blocks)
	require.Empty(t, blocks)
}

func TestPlainTextAndExcerpt(t *testing.T) {
	t.Parallel()

	blocks := Blocks{
		Text("a", "Dr. Selin Kaya leads our prosthodontic team."),
		Text("b", "She has restored more than two thousand smiles."),
	}
	require.Equal(t, "Dr. Selin Kaya leads our prosthodontic team.\n\nShe has restored more than two thousand smiles.", PlainText(blocks))
	require.Equal(t, "Dr. Selin Kaya leads our…", Excerpt(blocks, 28))
	require.Equal(t, PlainText(Blocks{blocks[0]}), Excerpt(Blocks{blocks[0]}, 0))
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := Blocks{Text("a", "Original")}
	original[0].Children[0].Marks = []string{"em"}
	clone := original.Clone()
	clone[0].Children[0].Text = "Changed"
	clone[0].Children[0].Marks[0] = "strong"

	require.Equal(t, "Original", original[0].Children[0].Text)
	require.Equal(t, "em", original[0].Children[0].Marks[0])
}

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	src := "## Why implants\n\nImplants **restore** chewing. See [our guide](https://example.com/guide).\n\n- First\n- Second\n"
	blocks := FromMarkdown(src)
	require.Len(t, blocks, 4)

	require.Equal(t, "h2", blocks[0].Style)
	require.Equal(t, "Why implants", PlainText(blocks[:1]))

	paragraph := blocks[1]
	require.Equal(t, "normal", paragraph.Style)
	require.Equal(t, "Implants restore chewing. See our guide.", PlainText(Blocks{paragraph}))
	require.Len(t, paragraph.MarkDefs, 1)
	require.Equal(t, "https://example.com/guide", paragraph.MarkDefs[0].Href)

	var strong, linked bool
	for _, span := range paragraph.Children {
		if span.Text == "restore" && len(span.Marks) == 1 && span.Marks[0] == "strong" {
			strong = true
		}
		if span.Text == "our guide" && len(span.Marks) == 1 && span.Marks[0] == paragraph.MarkDefs[0].Key {
			linked = true
		}
	}
	require.True(t, strong, "expected strong span")
	require.True(t, linked, "expected link span")

	require.Equal(t, "bullet", blocks[2].ListItem)
	require.Equal(t, 1, blocks[2].Level)
	require.Equal(t, "Second", PlainText(blocks[3:]))
}

func TestFromMarkdownEmpty(t *testing.T) {
	t.Parallel()

	blocks := FromMarkdown("   ")
	require.NotNil(t, blocks)
	require.Empty(t, blocks)
}

func TestHTMLSanitizesAndRendersMarks(t *testing.T) {
	t.Parallel()

	blocks := FromMarkdown("Visit **us** at [the clinic](https://example.com).\n\n1. Scan\n2. Plan\n")
	blocks = append(blocks, Text("x", "<script>alert(1)</script>"))

	out := HTML(blocks)
	require.Contains(t, out, "<strong>us</strong>")
	require.Contains(t, out, `href="https://example.com"`)
	require.Contains(t, out, `rel="nofollow"`)
	require.Contains(t, out, "<ol><li>Scan</li><li>Plan</li></ol>")
	require.False(t, strings.Contains(out, "<script>"))
}
