package reply

import (
	"fmt"
	"math/rand"
	"strings"
)

// RedirectToReframeReply is returned whenever the user asks for advice in
// journal mode; journaling only reflects, it never advises.
const RedirectToReframeReply = "I'm here to listen, not to advise. If you'd like to work through this together, a reframing chat might serve you better."

// EmotionMissReply is used when the user mentions feeling something but no
// known emotion word is found.
const EmotionMissReply = "I hear the emotion in what you're sharing."

// AcknowledgmentPool holds the short non-directive acknowledgments.
var AcknowledgmentPool = []string{
	"I see.",
	"Mmm.",
	"Tell me more about that.",
	"I hear you.",
	"Go on.",
	"That sounds important.",
}

var adviceCues = []string{"advice", "help me", "what should"}

var emotionWords = []string{
	"frustrated", "anxious", "excited", "sad", "happy", "angry",
	"overwhelmed", "grateful", "confused", "lonely", "hopeful", "scared",
}

var paraphraseStarters = []string{"So ", "It sounds like ", "What I'm hearing is "}

// ackFallbackThreshold gates the probabilistic retreat to acknowledgments
// in long sessions, so the paraphrase doesn't get repetitive. Tunable.
const ackFallbackThreshold = 0.65

// ackFallbackMinTurns is the number of prior user turns before the
// probabilistic fallback can fire.
const ackFallbackMinTurns = 3

type journalGenerator struct {
	rng *rand.Rand
}

func NewJournalGenerator(rng *rand.Rand) Generator {
	return &journalGenerator{rng: rng}
}

func (g *journalGenerator) Reply(userText string, priorUserTurns int) string {
	lower := strings.ToLower(userText)

	for _, cue := range adviceCues {
		if strings.Contains(lower, cue) {
			return RedirectToReframeReply
		}
	}

	if len(strings.Fields(userText)) < 5 {
		return g.acknowledge()
	}

	if strings.Contains(lower, "feel") || strings.Contains(lower, "felt") {
		for _, emotion := range emotionWords {
			if strings.Contains(lower, emotion) {
				return fmt.Sprintf("It sounds like you're feeling a lot of %s over that.", emotion)
			}
		}
		return EmotionMissReply
	}

	if priorUserTurns > ackFallbackMinTurns && g.rng.Float64() > ackFallbackThreshold {
		return g.acknowledge()
	}

	tail := LastSentences(userText, 2)
	paraphrase := SwapFirstPerson(strings.ToLower(tail))
	starter := paraphraseStarters[g.rng.Intn(len(paraphraseStarters))]
	return starter + paraphrase
}

func (g *journalGenerator) acknowledge() string {
	return AcknowledgmentPool[g.rng.Intn(len(AcknowledgmentPool))]
}
