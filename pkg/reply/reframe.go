package reply

import (
	"math/rand"
	"strings"
)

// Fixed reframe sentences, one per keyword bucket.
const (
	StressReframe = "Stress is often a sign that something matters deeply to you. What would it mean to treat this pressure as energy you can direct, rather than a weight you have to carry?"

	SetbackReframe = "A mistake is information, not a verdict. What did this experience teach you that succeeding on the first try never could?"

	RestReframe = "Feeling drained is your mind asking for recovery, not proof that you're falling behind. What would change if you treated rest as part of the work?"

	SadnessValidation = "It's okay to feel low. Those feelings are real and they deserve room, and they don't get to decide what happens next."
)

// GenericReframePrompts is the fallback pool when no bucket matches.
var GenericReframePrompts = []string{
	"What would you say to a close friend who told you the same thing?",
	"Is there another way to look at this situation that feels even slightly more open?",
	"What part of this is within your control, however small?",
	"If this challenge had something to teach you, what might it be?",
	"What would the strongest version of you notice about this moment?",
}

type keywordBucket struct {
	keywords []string
	sentence string
}

// Bucket order is the match priority; first hit wins.
var reframeBuckets = []keywordBucket{
	{keywords: []string{"stress", "anxious", "worried"}, sentence: StressReframe},
	{keywords: []string{"fail", "mistake", "wrong"}, sentence: SetbackReframe},
	{keywords: []string{"tired", "exhausted", "overwhelm"}, sentence: RestReframe},
	{keywords: []string{"sad", "down", "depressed"}, sentence: SadnessValidation},
}

type reframeGenerator struct {
	rng *rand.Rand
}

func NewReframeGenerator(rng *rand.Rand) Generator {
	return &reframeGenerator{rng: rng}
}

func (g *reframeGenerator) Reply(userText string, priorUserTurns int) string {
	lower := strings.ToLower(userText)
	for _, bucket := range reframeBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.sentence
			}
		}
	}
	return GenericReframePrompts[g.rng.Intn(len(GenericReframePrompts))]
}
