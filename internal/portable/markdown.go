package portable

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// FromMarkdown converts markdown into blocks. Headings, paragraphs, block quotes, code
// blocks and (nested) lists are supported; inline emphasis, strong, code and links become
// span marks.
func FromMarkdown(src string) Blocks {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	c := &converter{source: source}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(n, 0, "")
	}
	if c.blocks == nil {
		return Blocks{}
	}
	return c.blocks
}

type converter struct {
	source []byte
	blocks Blocks
}

func (c *converter) block(n ast.Node, level int, listKind string) {
	switch node := n.(type) {
	case *ast.Heading:
		c.emit(fmt.Sprintf("h%d", node.Level), "", 0, node)
	case *ast.Paragraph, *ast.TextBlock:
		style := "normal"
		c.emit(style, listKind, level, node)
	case *ast.Blockquote:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			if _, ok := child.(*ast.Paragraph); ok {
				c.emit("blockquote", "", 0, child)
				continue
			}
			c.block(child, level, listKind)
		}
	case *ast.List:
		kind := "bullet"
		if node.IsOrdered() {
			kind = "number"
		}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			for child := item.FirstChild(); child != nil; child = child.NextSibling() {
				c.block(child, level+1, kind)
			}
		}
	case *ast.FencedCodeBlock:
		c.code(node.Lines())
	case *ast.CodeBlock:
		c.code(node.Lines())
	}
}

func (c *converter) code(lines *text.Segments) {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(c.source))
	}
	body := strings.TrimRight(sb.String(), "\n")
	idx := len(c.blocks)
	key := fmt.Sprintf("b%d", idx)
	c.blocks = append(c.blocks, Block{
		Key:      key,
		Type:     "block",
		Style:    "normal",
		Children: []Span{{Key: key + "-0", Type: "span", Text: body, Marks: []string{"code"}}},
	})
}

func (c *converter) emit(style, listKind string, level int, n ast.Node) {
	idx := len(c.blocks)
	key := fmt.Sprintf("b%d", idx)
	b := Block{Key: key, Type: "block", Style: style}
	if listKind != "" {
		b.ListItem = listKind
		b.Level = level
	}
	c.inline(n, nil, &b)
	for i := range b.Children {
		b.Children[i].Key = fmt.Sprintf("%s-%d", key, i)
		b.Children[i].Type = "span"
	}
	if b.Children == nil {
		b.Children = []Span{}
	}
	c.blocks = append(c.blocks, b)
}

func (c *converter) inline(parent ast.Node, marks []string, b *Block) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			value := string(node.Segment.Value(c.source))
			if node.SoftLineBreak() {
				value += " "
			}
			if node.HardLineBreak() {
				value += "\n"
			}
			appendSpan(b, value, marks)
		case *ast.String:
			appendSpan(b, string(node.Value), marks)
		case *ast.Emphasis:
			mark := "em"
			if node.Level >= 2 {
				mark = "strong"
			}
			c.inline(node, withMark(marks, mark), b)
		case *ast.CodeSpan:
			c.inline(node, withMark(marks, "code"), b)
		case *ast.Link:
			key := c.linkDef(b, string(node.Destination))
			c.inline(node, withMark(marks, key), b)
		case *ast.AutoLink:
			url := string(node.URL(c.source))
			key := c.linkDef(b, url)
			appendSpan(b, url, withMark(marks, key))
		default:
			c.inline(node, marks, b)
		}
	}
}

func (c *converter) linkDef(b *Block, href string) string {
	key := fmt.Sprintf("%s-link%d", b.Key, len(b.MarkDefs))
	b.MarkDefs = append(b.MarkDefs, MarkDef{Key: key, Type: "link", Href: href})
	return key
}

func appendSpan(b *Block, value string, marks []string) {
	if value == "" {
		return
	}
	if n := len(b.Children); n > 0 && sameMarks(b.Children[n-1].Marks, marks) {
		b.Children[n-1].Text += value
		return
	}
	b.Children = append(b.Children, Span{Text: value, Marks: append([]string(nil), marks...)})
}

func withMark(marks []string, mark string) []string {
	out := make([]string, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, mark)
}

func sameMarks(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
