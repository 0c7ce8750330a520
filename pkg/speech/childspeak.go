package speech

import (
	"math/rand"
	"strings"
	"unicode"
)

// longSentenceChars is the length past which filler tokens are inserted.
const longSentenceChars = 30

var fillerTokens = []string{"um,", "like,", "you know,", "and,"}

var childStarters = []string{"So, ", "Well, ", "Um, ", "You know what, "}

var childWordSwaps = map[string]string{
	"very":      "really really",
	"important": "super duper important",
	"good":      "really good",
	"happy":     "so happy",
}

// ChildlikeTransform rewrites text for the child voice: whole-word swaps,
// filler tokens at roughly the 30% and 60% word offsets of long sentences,
// a ~60% chance of a spoken starter and a ~40% chance of a trailing bang.
func ChildlikeTransform(text string, rng *rand.Rand) string {
	sentences := splitSentences(text)
	for i, sentence := range sentences {
		words := strings.Fields(sentence)
		for j, word := range words {
			words[j] = swapChildWord(word)
		}
		if len(sentence) > longSentenceChars && len(words) > 3 {
			words = insertFillers(words, rng)
		}
		sentences[i] = strings.Join(words, " ")
	}

	out := strings.Join(sentences, " ")
	if rng.Float64() < 0.6 {
		out = childStarters[rng.Intn(len(childStarters))] + out
	}
	if rng.Float64() < 0.4 {
		out += "!"
	}
	return out
}

func swapChildWord(word string) string {
	core := strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if core == "" {
		return word
	}
	if replacement, ok := childWordSwaps[strings.ToLower(core)]; ok {
		return strings.Replace(word, core, replacement, 1)
	}
	return word
}

func insertFillers(words []string, rng *rand.Rand) []string {
	first := len(words) * 3 / 10
	second := len(words) * 6 / 10
	if first == 0 {
		first = 1
	}

	out := make([]string, 0, len(words)+2)
	for i, w := range words {
		if i == first || i == second {
			out = append(out, fillerTokens[rng.Intn(len(fillerTokens))])
		}
		out = append(out, w)
	}
	return out
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
