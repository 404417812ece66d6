// Package extract orchestrates reading, decoding and stripping document bodies.
package extract

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docxtext"
)

// Ensure Service implements docxtext.Extractor.
var _ docxtext.Extractor = (*Service)(nil)

// Service extracts text from document archives.
//
// The sequence is fixed: read the whole entry, decode it, strip markup,
// then truncate. Nothing is cached between calls.
type Service struct {
	Archives docxtext.ArchiveReader
	Decoder  docxtext.Decoder

	// Approximate is used for ModeApproximate. Defaults to docxtext.ApproximateStripper.
	Approximate docxtext.Stripper

	// Structured is used for ModeStructured. Requests for that mode fail
	// with EINVALID when it is nil.
	Structured docxtext.Stripper

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Extract reads req.Entry from the archive at req.Path and returns the first
// req.PrefixLength characters of its text.
func (s *Service) Extract(ctx context.Context, req docxtext.ExtractRequest) (*docxtext.Extraction, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stripper, err := s.stripper(req.Mode)
	if err != nil {
		return nil, err
	}

	data, err := s.Archives.ReadEntry(ctx, req.Path, req.Entry)
	if err != nil {
		return nil, err
	}

	markup, err := s.Decoder.Decode(data, req.Encoding)
	if err != nil {
		return nil, err
	}

	text, err := stripper.Strip(markup)
	if err != nil {
		return nil, err
	}

	prefix := docxtext.Truncate(text, req.PrefixLength)

	return &docxtext.Extraction{
		Path:        req.Path,
		Entry:       req.Entry,
		Mode:        req.Mode,
		Text:        prefix,
		TotalLength: utf8.RuneCountInString(text),
		ContentHash: hashText(prefix),
		ExtractedAt: s.now(),
	}, nil
}

func (s *Service) stripper(mode docxtext.Mode) (docxtext.Stripper, error) {
	switch mode {
	case docxtext.ModeApproximate:
		if s.Approximate == nil {
			return docxtext.ApproximateStripper{}, nil
		}
		return s.Approximate, nil
	case docxtext.ModeStructured:
		if s.Structured == nil {
			return nil, docxtext.Errorf(docxtext.EINVALID, "structured mode is not available")
		}
		return s.Structured, nil
	}
	return nil, docxtext.Errorf(docxtext.EINVALID, "unknown mode %q", mode)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// hashText computes xxHash of text and returns it as a hex string.
func hashText(text string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(text)))
}
