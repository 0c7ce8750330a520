package speech

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileMapping(t *testing.T) {
	female := ProfileFor("female")
	assert.Equal(t, 0.85, female.Rate)
	assert.Equal(t, 1.05, female.Pitch)

	male := ProfileFor("male")
	assert.Equal(t, 0.9, male.Rate)
	assert.Equal(t, 0.95, male.Pitch)

	child := ProfileFor("child")
	assert.Equal(t, 1.2, child.Rate)
	assert.Equal(t, 1.8, child.Pitch)

	// Unknown categories fall back to the female profile.
	assert.Equal(t, female, ProfileFor("robot"))
}

func TestChildlikeWordSwaps(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := ChildlikeTransform("This is very good.", rng)

	assert.Contains(t, got, "really really")
	assert.Contains(t, got, "really good")
	assert.NotContains(t, got, "very ")
}

func TestChildlikeShortSentenceGetsNoFillers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := ChildlikeTransform("Nice day today.", rng)

	for _, filler := range fillerTokens {
		assert.NotContains(t, got, filler)
	}
}

func TestChildlikeLongSentenceGetsFillers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := ChildlikeTransform("The afternoon stretched on while everyone waited quietly for the announcement to finally arrive.", rng)

	var count int
	for _, filler := range fillerTokens {
		count += strings.Count(got, filler)
	}
	assert.GreaterOrEqual(t, count, 2, "long sentence should carry fillers at both offsets: %q", got)
}

func TestChildlikeDecorationsStayInBounds(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := ChildlikeTransform("Lunch was fine.", rng)

		trimmed := strings.TrimSuffix(got, "!")
		for _, starter := range childStarters {
			trimmed = strings.TrimPrefix(trimmed, starter)
		}
		assert.Equal(t, "Lunch was fine.", trimmed, "seed %d", seed)
	}
}

func TestChildlikeDeterministicForSeed(t *testing.T) {
	a := ChildlikeTransform("Today felt very important to everyone in the house.", rand.New(rand.NewSource(11)))
	b := ChildlikeTransform("Today felt very important to everyone in the house.", rand.New(rand.NewSource(11)))
	assert.Equal(t, a, b)
}

func TestStaticCatalog(t *testing.T) {
	catalog := NewStaticCatalog()
	voices := catalog.Voices()
	assert.NotEmpty(t, voices)

	_, found := FindVoice(catalog, "Pip")
	assert.True(t, found)
	_, found = FindVoice(catalog, "NoSuchVoice")
	assert.False(t, found)

	assert.Equal(t, voices[0], DefaultVoice(catalog))
}
