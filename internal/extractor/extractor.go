// Package extractor turns OCR text into candidate bib numbers.
package extractor

const (
	MinDigits = 1
	MaxDigits = 6
)

// Extract returns every maximal run of ASCII digits in text whose length is
// between MinDigits and MaxDigits, in order of appearance. Longer runs are
// dropped whole, never truncated. Tokens are kept verbatim, so "007" stays "007".
// The result is never nil.
func Extract(text string) []string {
	numbers := make([]string, 0)
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && isDigit(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if n := i - start; n >= MinDigits && n <= MaxDigits {
				numbers = append(numbers, text[start:i])
			}
			start = -1
		}
	}
	return numbers
}

// IsBibNumber reports whether s is a single token Extract could have produced.
func IsBibNumber(s string) bool {
	if len(s) < MinDigits || len(s) > MaxDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
