package reply

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapFirstPerson(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"subject pronoun", "i missed the train", "you missed the train"},
		{"object pronoun", "it bothered me a lot", "it bothered you a lot"},
		{"possessive", "my plans fell apart", "your plans fell apart"},
		{"leading possessive with punctuation", "my day, honestly, was fine", "your day, honestly, was fine"},
		{"mixed", "i lost my keys and it scared me", "you lost your keys and it scared you"},
		{"no false positives inside words", "mine crashed during the night", "mine crashed during the night"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SwapFirstPerson(tc.input))
		})
	}
}

func TestSwapFirstPersonIdempotent(t *testing.T) {
	input := "the weather turned cold and the streets went quiet"
	once := SwapFirstPerson(input)
	assert.Equal(t, input, once)
	assert.Equal(t, once, SwapFirstPerson(once))
}

func TestLastSentences(t *testing.T) {
	assert.Equal(t, "Second. Third.", LastSentences("First. Second. Third.", 2))
	assert.Equal(t, "Only one here", LastSentences("Only one here", 2))
	assert.Equal(t, "Tail!", LastSentences("Head? Middle. Tail!", 1))
}
