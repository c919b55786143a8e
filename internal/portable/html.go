package portable

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span")
	p.RequireNoFollowOnLinks(true)
	return p
}

// HTML renders blocks into sanitized HTML for previews and server-side rendering.
func HTML(blocks Blocks) string {
	var sb strings.Builder
	openList := ""
	closeList := func() {
		if openList != "" {
			sb.WriteString("</" + openList + ">")
			openList = ""
		}
	}
	for _, b := range blocks {
		if b.ListItem != "" {
			tag := "ul"
			if b.ListItem == "number" {
				tag = "ol"
			}
			if openList != tag {
				closeList()
				sb.WriteString("<" + tag + ">")
				openList = tag
			}
			sb.WriteString("<li>")
			writeSpans(&sb, b)
			sb.WriteString("</li>")
			continue
		}
		closeList()
		tag := blockTag(b.Style)
		sb.WriteString("<" + tag + ">")
		writeSpans(&sb, b)
		sb.WriteString("</" + tag + ">")
	}
	closeList()
	return policy.Sanitize(sb.String())
}

func blockTag(style string) string {
	switch style {
	case "h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		return style
	default:
		return "p"
	}
}

func writeSpans(sb *strings.Builder, b Block) {
	defs := make(map[string]MarkDef, len(b.MarkDefs))
	for _, def := range b.MarkDefs {
		defs[def.Key] = def
	}
	for _, span := range b.Children {
		var closers []string
		for _, mark := range span.Marks {
			switch mark {
			case "strong":
				sb.WriteString("<strong>")
				closers = append(closers, "</strong>")
			case "em":
				sb.WriteString("<em>")
				closers = append(closers, "</em>")
			case "code":
				sb.WriteString("<code>")
				closers = append(closers, "</code>")
			case "underline":
				sb.WriteString("<u>")
				closers = append(closers, "</u>")
			default:
				if def, ok := defs[mark]; ok && def.Type == "link" && def.Href != "" {
					sb.WriteString(`<a href="` + html.EscapeString(def.Href) + `">`)
					closers = append(closers, "</a>")
				}
			}
		}
		sb.WriteString(strings.ReplaceAll(html.EscapeString(span.Text), "\n", "<br>"))
		for i := len(closers) - 1; i >= 0; i-- {
			sb.WriteString(closers[i])
		}
	}
}
