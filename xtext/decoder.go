// Package xtext decodes entry bytes using golang.org/x/text encodings.
package xtext

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/docxtext"
	"golang.org/x/text/encoding/ianaindex"
)

// Ensure Decoder implements docxtext.Decoder.
var _ docxtext.Decoder = (*Decoder)(nil)

// Decoder converts bytes to text under a named encoding.
//
// UTF-8 is strict: invalid sequences fail instead of being replaced, and a
// leading byte order mark is kept as U+FEFF. Other encodings are looked up
// in the IANA index.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode interprets b under the named encoding.
func (d *Decoder) Decode(b []byte, encoding string) (string, error) {
	if encoding == "" || isUTF8(encoding) {
		if !utf8.Valid(b) {
			return "", docxtext.Errorf(docxtext.EDECODING, "entry is not valid utf-8 (byte %d)", invalidOffset(b))
		}
		return string(b), nil
	}

	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return "", docxtext.Errorf(docxtext.EDECODING, "unsupported encoding %q", encoding)
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", docxtext.Errorf(docxtext.EDECODING, "decoding entry as %s: %v", encoding, err)
	}
	return string(out), nil
}

func isUTF8(name string) bool {
	return strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8")
}

// invalidOffset returns the index of the first byte that starts an invalid sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
