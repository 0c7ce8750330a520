package reply

import (
	"strings"
	"unicode"
)

var pronounSwaps = map[string]string{
	"i":  "you",
	"me": "you",
	"my": "your",
}

// SwapFirstPerson rewrites first-person pronouns into second person on
// whole-word boundaries, case-insensitively. Text without first-person
// tokens passes through unchanged, which also makes the transform
// idempotent.
func SwapFirstPerson(text string) string {
	fields := strings.Fields(text)
	for i, word := range fields {
		core := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && r != '\''
		})
		if core == "" {
			continue
		}
		if replacement, ok := pronounSwaps[strings.ToLower(core)]; ok {
			fields[i] = strings.Replace(word, core, replacement, 1)
		}
	}
	return strings.Join(fields, " ")
}

// LastSentences returns the trailing n sentences of the text, joined with a
// single space. Text without sentence punctuation counts as one sentence.
func LastSentences(text string, n int) string {
	parts := splitSentences(text)
	if len(parts) == 0 {
		return strings.TrimSpace(text)
	}
	if len(parts) > n {
		parts = parts[len(parts)-n:]
	}
	return strings.Join(parts, " ")
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
