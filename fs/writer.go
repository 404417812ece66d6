// Package fs writes extracted text to files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docxtext"
)

// ArchiveToPath converts an archive path to a relative text file name.
// Example: /home/me/reports/q1.docx → q1.txt
func ArchiveToPath(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "document.txt"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
}

// FormatExtraction formats an extraction with a YAML frontmatter header.
func FormatExtraction(e *docxtext.Extraction) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(e.Path)
	b.WriteString("\nentry: ")
	b.WriteString(e.Entry)
	b.WriteString("\nmode: ")
	b.WriteString(string(e.Mode))
	b.WriteString("\nextracted: ")
	b.WriteString(e.ExtractedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(e.Text)
	return b.String()
}

// Ensure Writer implements docxtext.ExtractionWriter at compile time.
var _ docxtext.ExtractionWriter = (*Writer)(nil)

// Writer writes extractions as text files to a directory.
// Archives with the same base name overwrite each other.
type Writer struct {
	baseDir string

	// Header prepends FormatExtraction's frontmatter when set.
	Header bool
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExtraction writes the extraction text to <baseDir>/<name>.txt.
func (w *Writer) WriteExtraction(ctx context.Context, e *docxtext.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := e.Text
	if w.Header {
		content = FormatExtraction(e)
	}
	fullPath := filepath.Join(w.baseDir, ArchiveToPath(e.Path))
	return os.WriteFile(fullPath, []byte(content+"\n"), 0644)
}
