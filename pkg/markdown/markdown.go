// Package markdown renders the Markdown users write in training notes.
//
// Rendering uses GitHub Flavored Markdown. Raw HTML in the source is
// dropped and unsafe link schemes are removed, so output can be embedded in
// a page as is.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Renderer converts Markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts source to HTML. Empty input renders to an empty string.
func (r *Renderer) Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainText returns the text content of source with formatting removed,
// paragraphs separated by a space.
func (r *Renderer) PlainText(source string) string {
	src := []byte(source)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		default:
			if n.Type() == ast.TypeBlock && buf.Len() > 0 && n.Kind() != ast.KindDocument {
				if last := buf.Bytes()[buf.Len()-1]; last != ' ' {
					buf.WriteByte(' ')
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return string(bytes.TrimSpace(buf.Bytes()))
}
