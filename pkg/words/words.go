// Package words tokenizes text on whitespace and reorders the tokens.
package words

import (
	"slices"
	"strings"
	"unicode"
)

// IsSpace reports whether r separates words. It accepts unicode.IsSpace
// plus the ASCII information separators U+001C through U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Split returns the word tokens of text in their original order. Tokens are
// maximal runs of non-whitespace characters; leading, trailing and repeated
// whitespace never produces an empty token.
func Split(text string) []string {
	return strings.FieldsFunc(text, IsSpace)
}

// ReverseWords returns the words of text in reverse order, joined by a single
// space. Empty and whitespace-only input yields the empty string.
func ReverseWords(text string) string {
	tokens := Split(text)
	slices.Reverse(tokens)
	return strings.Join(tokens, " ")
}

// Normalize joins the words of text with single spaces, preserving order.
func Normalize(text string) string {
	return strings.Join(Split(text), " ")
}
