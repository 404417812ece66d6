package docxtext

import (
	"regexp"
	"unicode/utf8"
)

var (
	// tagPattern matches a '<' up to the next '>'. It ignores nesting,
	// comments and CDATA, and removes unescaped brackets in text too.
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	// whitespacePattern matches runs of Unicode whitespace, not only ASCII.
	whitespacePattern = regexp.MustCompile(`[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]+`)
)

// StripTags replaces every angle-bracket tag in s with a single space.
func StripTags(s string) string {
	return tagPattern.ReplaceAllLiteralString(s, " ")
}

// CollapseWhitespace replaces every run of whitespace in s with a single space.
// Leading and trailing space is kept.
func CollapseWhitespace(s string) string {
	return whitespacePattern.ReplaceAllLiteralString(s, " ")
}

// Truncate returns the first n characters of s, or s if it is shorter.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Ensure ApproximateStripper implements Stripper.
var _ Stripper = ApproximateStripper{}

// ApproximateStripper removes markup with a regular expression instead of
// an XML parser. Output differs from a real parser on adversarial input.
type ApproximateStripper struct{}

// Strip removes tags, then collapses whitespace.
func (ApproximateStripper) Strip(markup string) (string, error) {
	return CollapseWhitespace(StripTags(markup)), nil
}
