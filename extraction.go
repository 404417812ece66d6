package docxtext

import (
	"context"
	"time"
)

// Defaults used when an ExtractRequest leaves a field empty.
const (
	// DefaultEntry is the main document body part of a WordprocessingML package.
	DefaultEntry = "word/document.xml"

	// DefaultPrefixLength is the number of characters returned by default.
	DefaultPrefixLength = 4000

	// DefaultEncoding is the encoding the body part is assumed to use.
	DefaultEncoding = "utf-8"
)

// Mode selects how markup is removed from the document body.
type Mode string

// Mode constants for ExtractRequest.
const (
	// ModeApproximate replaces every <...> tag with a space and collapses
	// whitespace. It does not understand XML.
	ModeApproximate Mode = "approximate"

	// ModeStructured parses the body as XML and keeps paragraph breaks.
	ModeStructured Mode = "structured"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeApproximate || m == ModeStructured
}

// ExtractRequest describes a single extraction.
type ExtractRequest struct {
	Path         string `json:"path"`
	Entry        string `json:"entry"`
	PrefixLength int    `json:"prefixLength"`
	Mode         Mode   `json:"mode"`
	Encoding     string `json:"encoding"`
}

// WithDefaults returns a copy of r with empty Entry, Mode and Encoding
// replaced by their defaults. PrefixLength is left as is; zero is a valid bound.
func (r ExtractRequest) WithDefaults() ExtractRequest {
	if r.Entry == "" {
		r.Entry = DefaultEntry
	}
	if r.Mode == "" {
		r.Mode = ModeApproximate
	}
	if r.Encoding == "" {
		r.Encoding = DefaultEncoding
	}
	return r
}

// Validate returns an error if the request contains invalid fields.
func (r *ExtractRequest) Validate() error {
	if r.Path == "" {
		return Errorf(EINVALID, "archive path required")
	}
	if r.PrefixLength < 0 {
		return Errorf(EINVALID, "prefix length must not be negative: %d", r.PrefixLength)
	}
	if r.Mode != "" && !r.Mode.Valid() {
		return Errorf(EINVALID, "unknown mode %q", r.Mode)
	}
	return nil
}

// Extraction is the text extracted from one archive entry.
type Extraction struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Entry       string    `json:"entry"`
	Mode        Mode      `json:"mode"`
	Text        string    `json:"text"`
	TotalLength int       `json:"totalLength"`
	ContentHash string    `json:"contentHash"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Truncated reports whether Text is shorter than the full transformed text.
func (e *Extraction) Truncated() bool {
	return len([]rune(e.Text)) < e.TotalLength
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "extraction path required")
	}
	if e.Entry == "" {
		return Errorf(EINVALID, "extraction entry required")
	}
	return nil
}

// Extractor produces text from a document archive.
type Extractor interface {
	// Extract reads the requested entry and returns its plain text prefix.
	// Returns ENOTFOUND if the archive is missing or invalid,
	// EMISSINGENTRY if the entry is absent, and EDECODING if the
	// entry bytes cannot be decoded.
	Extract(ctx context.Context, req ExtractRequest) (*Extraction, error)
}

// ExtractionService represents a service for managing saved extractions.
type ExtractionService interface {
	// CreateExtraction saves an extraction and assigns its ID.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	Path *string `json:"path"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ExtractionWriter writes extracted text outside the process.
type ExtractionWriter interface {
	WriteExtraction(ctx context.Context, e *Extraction) error
}
