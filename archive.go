package docxtext

import "context"

// ArchiveReader reads named entries from a zip-format document container.
type ArchiveReader interface {
	// ReadEntry returns the full contents of the named entry.
	// Returns ENOTFOUND if the archive does not exist or is not a valid
	// archive, and EMISSINGENTRY if the entry is absent.
	ReadEntry(ctx context.Context, path, entry string) ([]byte, error)

	// ListEntries returns the entry names in archive order.
	ListEntries(ctx context.Context, path string) ([]string, error)
}

// Decoder converts raw entry bytes to text.
type Decoder interface {
	// Decode interprets b under the named encoding.
	// Returns EDECODING if the bytes are invalid or the encoding is unknown.
	Decode(b []byte, encoding string) (string, error)
}

// Stripper removes markup from decoded entry text.
type Stripper interface {
	Strip(markup string) (string, error)
}
