package docxtext_test

import (
	"testing"

	"github.com/fwojciec/docxtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequest_WithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		req := docxtext.ExtractRequest{Path: "a.docx"}.WithDefaults()

		assert.Equal(t, docxtext.DefaultEntry, req.Entry)
		assert.Equal(t, docxtext.ModeApproximate, req.Mode)
		assert.Equal(t, docxtext.DefaultEncoding, req.Encoding)
		assert.Equal(t, 0, req.PrefixLength)
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		t.Parallel()

		req := docxtext.ExtractRequest{
			Path:     "a.docx",
			Entry:    "word/footnotes.xml",
			Mode:     docxtext.ModeStructured,
			Encoding: "utf-16",
		}.WithDefaults()

		assert.Equal(t, "word/footnotes.xml", req.Entry)
		assert.Equal(t, docxtext.ModeStructured, req.Mode)
		assert.Equal(t, "utf-16", req.Encoding)
	})
}

func TestExtractRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     docxtext.ExtractRequest
		wantErr bool
	}{
		{name: "valid", req: docxtext.ExtractRequest{Path: "a.docx", PrefixLength: 4000}},
		{name: "zero prefix is valid", req: docxtext.ExtractRequest{Path: "a.docx"}},
		{name: "missing path", req: docxtext.ExtractRequest{PrefixLength: 10}, wantErr: true},
		{name: "negative prefix", req: docxtext.ExtractRequest{Path: "a.docx", PrefixLength: -1}, wantErr: true},
		{name: "unknown mode", req: docxtext.ExtractRequest{Path: "a.docx", Mode: "fancy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, docxtext.EINVALID, docxtext.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExtraction_Truncated(t *testing.T) {
	t.Parallel()

	assert.True(t, (&docxtext.Extraction{Text: "ab", TotalLength: 3}).Truncated())
	assert.False(t, (&docxtext.Extraction{Text: "abc", TotalLength: 3}).Truncated())
	assert.False(t, (&docxtext.Extraction{Text: "żó", TotalLength: 2}).Truncated())
}
