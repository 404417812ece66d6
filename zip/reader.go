// Package zip reads document bodies from zip-format containers.
package zip

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/docxtext"
)

// Ensure Reader implements docxtext.ArchiveReader.
var _ docxtext.ArchiveReader = (*Reader)(nil)

// Reader reads entries from zip archives on the local filesystem.
// Each call opens and closes its own archive handle, so a Reader is safe
// for concurrent use.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadEntry returns the full contents of the named entry.
// When the archive holds several entries with the same name, the last one wins.
func (r *Reader) ReadEntry(ctx context.Context, path, entry string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zr, err := open(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var file *zip.File
	for _, f := range zr.File {
		if f.Name == entry {
			file = f
		}
	}
	if file == nil {
		return nil, docxtext.Errorf(docxtext.EMISSINGENTRY, "entry %q not found in %s", entry, path)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %q: %w", entry, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry %q: %w", entry, err)
	}
	return data, nil
}

// ListEntries returns the entry names in archive order.
func (r *Reader) ListEntries(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zr, err := open(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// open opens the archive at path, mapping missing files and
// invalid archives to ENOTFOUND.
func open(path string) (*zip.ReadCloser, error) {
	zr, err := zip.OpenReader(path)
	if errors.Is(err, zip.ErrInsecurePath) && zr != nil {
		// Entry names are only compared, never used as filesystem paths.
		return zr, nil
	}
	if err != nil {
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, zip.ErrChecksum) {
			return nil, docxtext.Errorf(docxtext.ENOTFOUND, "%s is not a valid zip archive", path)
		}
		return nil, docxtext.Errorf(docxtext.ENOTFOUND, "archive %s not found: %v", path, err)
	}
	return zr, nil
}
