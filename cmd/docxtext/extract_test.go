package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docxtext"
	main "github.com/fwojciec/docxtext/cmd/docxtext"
	"github.com/fwojciec/docxtext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() main.ExtractOptions {
	return main.ExtractOptions{
		Entry:    docxtext.DefaultEntry,
		Length:   docxtext.DefaultPrefixLength,
		Mode:     string(docxtext.ModeApproximate),
		Encoding: docxtext.DefaultEncoding,
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted text", func(t *testing.T) {
		t.Parallel()

		var gotReq docxtext.ExtractRequest
		extractor := &mock.Extractor{
			ExtractFn: func(_ context.Context, req docxtext.ExtractRequest) (*docxtext.Extraction, error) {
				gotReq = req
				return &docxtext.Extraction{Path: req.Path, Text: " Hello World "}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.ExtractCmd{Path: "report.docx", ExtractOptions: defaultOptions()}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, " Hello World \n", stdout.String())
		assert.Empty(t, stderr.String())
		assert.Equal(t, docxtext.ExtractRequest{
			Path:         "report.docx",
			Entry:        "word/document.xml",
			PrefixLength: 4000,
			Mode:         docxtext.ModeApproximate,
			Encoding:     "utf-8",
		}, gotReq)
	})

	t.Run("prints nothing to stdout on failure", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(_ context.Context, _ docxtext.ExtractRequest) (*docxtext.Extraction, error) {
				return nil, docxtext.Errorf(docxtext.EMISSINGENTRY, "entry \"word/document.xml\" not found in report.docx")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.ExtractCmd{Path: "report.docx", ExtractOptions: defaultOptions()}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docxtext.EMISSINGENTRY, docxtext.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "not found in report.docx")
	})

	t.Run("saves extraction when requested", func(t *testing.T) {
		t.Parallel()

		var saved *docxtext.Extraction
		extractor := &mock.Extractor{
			ExtractFn: func(_ context.Context, req docxtext.ExtractRequest) (*docxtext.Extraction, error) {
				return &docxtext.Extraction{Path: req.Path, Entry: req.Entry, Text: "text"}, nil
			},
		}
		extractions := &mock.ExtractionService{
			CreateExtractionFn: func(_ context.Context, e *docxtext.Extraction) error {
				e.ID = "ext-1"
				saved = e
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractor:   extractor,
			Extractions: extractions,
		}

		opts := defaultOptions()
		opts.Save = true
		cmd := &main.ExtractCmd{Path: "report.docx", ExtractOptions: opts}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "ext-1", saved.ID)
		assert.Equal(t, "text\n", stdout.String())
	})

	t.Run("returns save error without printing text", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database is locked")
		extractor := &mock.Extractor{
			ExtractFn: func(_ context.Context, req docxtext.ExtractRequest) (*docxtext.Extraction, error) {
				return &docxtext.Extraction{Path: req.Path, Text: "text"}, nil
			},
		}
		extractions := &mock.ExtractionService{
			CreateExtractionFn: func(_ context.Context, _ *docxtext.Extraction) error {
				return dbErr
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractor:   extractor,
			Extractions: extractions,
		}

		opts := defaultOptions()
		opts.Save = true
		cmd := &main.ExtractCmd{Path: "report.docx", ExtractOptions: opts}
		err := cmd.Run(deps)

		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, stdout.String())
	})
}

func TestEntriesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one entry per line", func(t *testing.T) {
		t.Parallel()

		archives := &mock.ArchiveReader{
			ListEntriesFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"[Content_Types].xml", "word/document.xml"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Archives: archives,
		}

		err := (&main.EntriesCmd{Path: "report.docx"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "[Content_Types].xml\nword/document.xml\n", stdout.String())
	})

	t.Run("returns archive error", func(t *testing.T) {
		t.Parallel()

		archives := &mock.ArchiveReader{
			ListEntriesFn: func(_ context.Context, path string) ([]string, error) {
				return nil, docxtext.Errorf(docxtext.ENOTFOUND, "%s is not a valid zip archive", path)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Archives: archives,
		}

		err := (&main.EntriesCmd{Path: "notes.txt"}).Run(deps)

		assert.Equal(t, docxtext.ENOTFOUND, docxtext.ErrorCode(err))
		assert.Contains(t, stderr.String(), "notes.txt is not a valid zip archive")
	})
}
