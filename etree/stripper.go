// Package etree extracts document text by parsing the body as XML.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docxtext"
)

// Ensure Stripper implements docxtext.Stripper.
var _ docxtext.Stripper = (*Stripper)(nil)

// Stripper walks WordprocessingML markup and keeps only run text.
// Paragraphs end with a newline; tabs and breaks inside a paragraph are kept
// as separators. Element names are matched by local name, so DrawingML text
// (a:t) is included alongside w:t.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// Strip parses markup and returns one line per non-empty paragraph.
// Whitespace inside a line is collapsed and trimmed.
func (s *Stripper) Strip(markup string) (string, error) {
	doc := etree.NewDocument()
	// The markup is already decoded; ignore any declared charset.
	doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromString(strings.TrimPrefix(markup, "\ufeff")); err != nil {
		return "", docxtext.Errorf(docxtext.EINVALID, "malformed document markup: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return "", docxtext.Errorf(docxtext.EINVALID, "document markup has no root element")
	}

	var b strings.Builder
	walk(&b, root)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(docxtext.CollapseWhitespace(line))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func walk(b *strings.Builder, el *etree.Element) {
	switch el.Tag {
	case "t":
		b.WriteString(el.Text())
		return
	case "tab":
		b.WriteByte('\t')
		return
	case "br", "cr":
		b.WriteByte('\n')
		return
	case "Fallback":
		// mc:AlternateContent repeats its Choice content here.
		return
	}

	for _, child := range el.ChildElements() {
		walk(b, child)
	}

	if el.Tag == "p" {
		b.WriteByte('\n')
	}
}
