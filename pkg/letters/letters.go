// Package letters classifies and counts Latin letters in text.
package letters

// Consonants is the fixed set of Latin consonant letters in both cases.
const Consonants = "bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ"

// Vowels is the fixed set of Latin vowel letters in both cases.
const Vowels = "aeiouAEIOU"

// class is a per-byte lookup table built once from the constant sets.
// It is never written after init.
var class = func() (t [128]uint8) {
	for i := range len(Consonants) {
		t[Consonants[i]] = consonant
	}
	for i := range len(Vowels) {
		t[Vowels[i]] = vowel
	}
	return t
}()

const (
	other uint8 = iota
	consonant
	vowel
)

func classOf(r rune) uint8 {
	if r < 0 || int(r) >= len(class) {
		return other
	}
	return class[r]
}

// IsConsonant reports whether r belongs to Consonants.
func IsConsonant(r rune) bool { return classOf(r) == consonant }

// IsVowel reports whether r belongs to Vowels.
func IsVowel(r rune) bool { return classOf(r) == vowel }

// CountConsonants returns the number of characters in text that are
// consonants. Every character is examined, not just whole words.
func CountConsonants(text string) int {
	return count(text, consonant)
}

// CountVowels returns the number of characters in text that are vowels.
func CountVowels(text string) int {
	return count(text, vowel)
}

func count(text string, want uint8) int {
	n := 0
	for _, r := range text {
		if classOf(r) == want {
			n++
		}
	}
	return n
}
