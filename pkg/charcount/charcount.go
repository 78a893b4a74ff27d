// Package charcount tallies character occurrences in text.
package charcount

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// NoCharacters is the formatted output when text has nothing to count.
const NoCharacters = "No characters found"

// CharCount is the number of times a character occurs in a text.
type CharCount struct {
	Char  rune
	Count int
}

func (c CharCount) String() string {
	return fmt.Sprintf("'%c':%d", c.Char, c.Count)
}

// MarshalJSON encodes the character as a string rather than a code point.
func (c CharCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Char  string `json:"char"`
		Count int    `json:"count"`
	}{string(c.Char), c.Count})
}

// Count returns the occurrences of every distinct character in text, sorted
// by code point. The space character is not counted; other whitespace is.
func Count(text string) []CharCount {
	occurrences := make(map[rune]int)
	for _, r := range text {
		if r == ' ' {
			continue
		}
		occurrences[r]++
	}

	counts := make([]CharCount, 0, len(occurrences))
	for _, r := range slices.Sorted(maps.Keys(occurrences)) {
		counts = append(counts, CharCount{Char: r, Count: occurrences[r]})
	}
	return counts
}

// Format renders counts as "'c':n" entries separated by ", ". It returns
// NoCharacters when counts is empty.
func Format(counts []CharCount) string {
	if len(counts) == 0 {
		return NoCharacters
	}

	var b strings.Builder
	for i, c := range counts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}
