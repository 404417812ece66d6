package docxtext

import (
	"fmt"
	"strings"
)

// FormatExtractions formats saved extractions for listing, one per line.
// Each line holds the ID, time, mode, length and source path.
func FormatExtractions(extractions []*Extraction) string {
	if len(extractions) == 0 {
		return ""
	}

	lines := make([]string, 0, len(extractions))
	for _, e := range extractions {
		length := fmt.Sprintf("%d", len([]rune(e.Text)))
		if e.Truncated() {
			length += fmt.Sprintf("/%d", e.TotalLength)
		}
		lines = append(lines, strings.Join([]string{
			e.ID,
			e.ExtractedAt.Format("2006-01-02 15:04:05"),
			string(e.Mode),
			length,
			e.Path,
		}, "  "))
	}

	return strings.Join(lines, "\n")
}
