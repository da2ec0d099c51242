package text

import (
	"regexp"
	"strings"
)

// Punctuation is the exact character set stripped by RemovePunctuation:
// the 32 ASCII punctuation characters. Whitespace and alphanumerics
// always survive.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var wordPattern = regexp.MustCompile(`\w+`)

// Tokenize splits text on the delimiter and drops empty tokens. The
// remaining tokens are kept verbatim, surrounding whitespace included.
// An empty delimiter means whitespace splitting with Fields semantics.
func Tokenize(input string, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(input)
	}
	parts := strings.Split(input, delimiter)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func RemovePunctuation(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if strings.ContainsRune(Punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func Lowercase(input string) string {
	return strings.ToLower(input)
}

// Words lowercases the text and extracts its alphanumeric words,
// rejoined with single spaces.
func Words(input string) string {
	words := wordPattern.FindAllString(strings.ToLower(input), -1)
	return strings.Join(words, " ")
}

// RemoveStopWords lowercases the text, drops the given words, and
// rejoins the survivors with single spaces.
func RemoveStopWords(input string, stopWords []string) string {
	stopSet := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		stopSet[strings.ToLower(w)] = true
	}
	words := strings.Fields(strings.ToLower(input))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if stopSet[w] {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
