package tool

import (
	"fmt"
	"sync"

	"github.com/715d/wordtools/pkg/charcount"
	"github.com/715d/wordtools/pkg/letters"
	"github.com/715d/wordtools/pkg/words"
)

// Names of the built-in tools.
const (
	ConsonantCounter = "consonantcounter"
	WordReverser     = "wordreverser"
	VowelCounter     = "vowelcounter"
	CharCounter      = "charcounter"
)

// Builtins returns the tools shipped with this repository.
func Builtins() []Tool {
	return []Tool{
		{
			Name:  ConsonantCounter,
			Short: "Count consonant letters in text",
			Long: `consonantcounter counts every character of the input that is one of the
21 Latin consonant letters, in either case. Vowels, digits, punctuation,
whitespace and non-Latin letters are not counted.`,
			Run: func(text string) Result {
				n := letters.CountConsonants(text)
				return Result{Text: fmt.Sprintf("Consonant Count: %d", n), Value: n}
			},
		},
		{
			Name:  WordReverser,
			Short: "Reverse the order of words in text",
			Long: `wordreverser splits the input on runs of whitespace, reverses the order of
the resulting words and joins them with single spaces.`,
			Run: func(text string) Result {
				s := words.ReverseWords(text)
				return Result{Text: s, Value: s}
			},
		},
		{
			Name:  VowelCounter,
			Short: "Count vowel letters in text",
			Long:  `vowelcounter counts every character of the input that is one of a, e, i, o, u in either case.`,
			Run: func(text string) Result {
				n := letters.CountVowels(text)
				return Result{Text: fmt.Sprintf("Vowel Count: %d", n), Value: n}
			},
		},
		{
			Name:  CharCounter,
			Short: "Count occurrences of each character in text",
			Long: `charcounter reports how many times each distinct character occurs in the
input, ordered by character. Spaces are not counted.`,
			Run: func(text string) Result {
				counts := charcount.Count(text)
				return Result{
					Text:  "Character Count: " + charcount.Format(counts),
					Value: counts,
				}
			},
		},
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, t := range Builtins() {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
})

// Default returns the process-wide registry holding the built-in tools.
func Default() *Registry {
	return defaultRegistry()
}
