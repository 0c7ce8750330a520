package reply

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestReframeKeywordBuckets(t *testing.T) {
	gen := NewReframeGenerator(newTestRng())

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"stress keyword", "I feel really stressed about my exam", StressReframe},
		{"anxious keyword", "so ANXIOUS lately", StressReframe},
		{"worried keyword", "I'm worried about tomorrow", StressReframe},
		{"fail keyword", "I failed the interview", SetbackReframe},
		{"mistake keyword", "I made a huge mistake at work", SetbackReframe},
		{"tired keyword", "I am so tired of everything", RestReframe},
		{"overwhelm keyword", "everything is overwhelming me", RestReframe},
		{"sad keyword", "feeling sad today", SadnessValidation},
		{"depressed keyword", "I've been depressed for weeks", SadnessValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gen.Reply(tc.input, 0))
		})
	}
}

func TestReframeBucketPriorityOrder(t *testing.T) {
	gen := NewReframeGenerator(newTestRng())

	// Stress bucket outranks the setback bucket.
	got := gen.Reply("I'm stressed because I made a mistake", 0)
	assert.Equal(t, StressReframe, got)

	// Setback bucket outranks the rest bucket.
	got = gen.Reply("failing this left me exhausted", 0)
	assert.Equal(t, SetbackReframe, got)

	// Rest bucket outranks the sadness bucket.
	got = gen.Reply("tired and sad all the time", 0)
	assert.Equal(t, RestReframe, got)
}

func TestReframeGenericFallbackDrawsFromPool(t *testing.T) {
	gen := NewReframeGenerator(newTestRng())

	for i := 0; i < 20; i++ {
		got := gen.Reply("my plants need watering", 0)
		assert.Contains(t, GenericReframePrompts, got)
	}
}

func TestReframeDeterministicWithSeededRng(t *testing.T) {
	a := NewReframeGenerator(rand.New(rand.NewSource(7)))
	b := NewReframeGenerator(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Reply("nothing matches here", 0), b.Reply("nothing matches here", 0))
	}
}

func TestForModeSelectsStrategy(t *testing.T) {
	rng := newTestRng()
	assert.IsType(t, &reframeGenerator{}, ForMode("reframe", rng))
	assert.IsType(t, &journalGenerator{}, ForMode("journal", rng))
}
