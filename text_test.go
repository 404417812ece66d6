package docxtext_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/docxtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "replaces each tag with a space",
			input: "<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>",
			want:  "   Hello World   ",
		},
		{
			name:  "keeps text without tags",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "removes attributes with the tag",
			input: `<w:t xml:space="preserve">a b</w:t>`,
			want:  " a b ",
		},
		{
			name:  "tag spans newlines",
			input: "x<w:t\n  a=\"1\">y",
			want:  "x y",
		},
		{
			name:  "empty brackets are not a tag",
			input: "a<>b",
			want:  "a<>b",
		},
		{
			name:  "unescaped bracket pair in text is removed",
			input: "<w:t>1 <2 and 3> 0</w:t>",
			want:  " 1   0 ",
		},
		{
			name:  "lone closing bracket is kept",
			input: "a > b",
			want:  "a > b",
		},
		{
			name:  "comment is treated as a tag",
			input: "a<!-- note -->b",
			want:  "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docxtext.StripTags(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses spaces", input: "a   b", want: "a b"},
		{name: "keeps leading and trailing space", input: "  x   y  ", want: " x y "},
		{name: "collapses mixed ASCII whitespace", input: "a\t\n\r\f\vb", want: "a b"},
		{name: "collapses non-breaking and ideographic spaces", input: "a\u00a0\u3000b", want: "a b"},
		{name: "collapses line and paragraph separators", input: "a\u2028\u2029b", want: "a b"},
		{name: "single space unchanged", input: "a b", want: "a b"},
		{name: "empty string", input: "", want: ""},
		{name: "byte order mark is not whitespace", input: "\ufeff a", want: "\ufeff a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docxtext.CollapseWhitespace(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns prefix of n characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Hel", docxtext.Truncate("Hello", 3))
	})

	t.Run("returns whole string when shorter", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Hi", docxtext.Truncate("Hi", 10))
	})

	t.Run("returns whole string at exact length", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Hello", docxtext.Truncate("Hello", 5))
	})

	t.Run("zero length returns empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docxtext.Truncate("Hello", 0))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		got := docxtext.Truncate("żółw ćma", 4)

		assert.Equal(t, "żółw", got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("length is min of n and text length", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("ab ", 50)
		for _, n := range []int{0, 1, 7, 149, 150, 151, 4000} {
			got := docxtext.Truncate(text, n)
			assert.Equal(t, min(n, utf8.RuneCountInString(text)), utf8.RuneCountInString(got))
		}
	})
}

func TestApproximateStripper_Strip(t *testing.T) {
	t.Parallel()

	t.Run("extracts run text", func(t *testing.T) {
		t.Parallel()

		got, err := docxtext.ApproximateStripper{}.Strip("<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>")

		require.NoError(t, err)
		assert.Equal(t, " Hello World ", got)
		assert.Equal(t, "Hello World", strings.TrimSpace(got))
	})

	t.Run("collapses whitespace left by removed tags", func(t *testing.T) {
		t.Parallel()

		got, err := docxtext.ApproximateStripper{}.Strip("<a>  x   y  </a>")

		require.NoError(t, err)
		assert.Equal(t, " x y ", got)
	})

	t.Run("output has no tags and no double whitespace", func(t *testing.T) {
		t.Parallel()

		markup := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Second  paragraph </w:t></w:r></w:p>
  </w:body>
</w:document>`

		got, err := docxtext.ApproximateStripper{}.Strip(markup)

		require.NoError(t, err)
		assert.Equal(t, " First Second paragraph ", got)
		assert.NotContains(t, got, "<")
		assert.NotContains(t, got, ">")
		assert.NotContains(t, got, "  ")
	})

	t.Run("is idempotent on its own output", func(t *testing.T) {
		t.Parallel()

		s := docxtext.ApproximateStripper{}
		first, err := s.Strip("<p> a\n\n b </p>")
		require.NoError(t, err)

		second, err := s.Strip(first)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
