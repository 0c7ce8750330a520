package reply

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalAdviceCueRedirects(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	for _, input := range []string{
		"can you give me some advice about my boss",
		"please help me figure this out",
		"what should I do about the move",
	} {
		assert.Equal(t, RedirectToReframeReply, gen.Reply(input, 0), "input: %s", input)
	}
}

func TestJournalShortInputAcknowledges(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	for _, input := range []string{"ok", "fine I guess", "not much today"} {
		got := gen.Reply(input, 0)
		assert.Contains(t, AcknowledgmentPool, got, "input: %s", input)
	}
}

func TestJournalEmotionScan(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	got := gen.Reply("I feel so anxious about my job interview tomorrow and I can't stop thinking about it", 0)
	assert.Equal(t, "It sounds like you're feeling a lot of anxious over that.", got)

	got = gen.Reply("yesterday I felt grateful for the people around me after everything", 0)
	assert.Equal(t, "It sounds like you're feeling a lot of grateful over that.", got)
}

func TestJournalEmotionMiss(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	got := gen.Reply("I feel like something shifted this week but can't name it", 0)
	assert.Equal(t, EmotionMissReply, got)
}

func TestJournalParaphraseDefault(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	got := gen.Reply("Today was long. I missed my bus.", 0)

	var starter string
	for _, s := range paraphraseStarters {
		if strings.HasPrefix(got, s) {
			starter = s
		}
	}
	assert.NotEmpty(t, starter, "reply %q should begin with a paraphrase starter", got)
	assert.Equal(t, "today was long. you missed your bus.", strings.TrimPrefix(got, starter))
}

func TestJournalParaphraseKeepsLastTwoSentences(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	got := gen.Reply("First thing happened early. Then another thing came along later. Finally the evening turned quiet.", 0)
	assert.NotContains(t, got, "first thing")
	assert.Contains(t, got, "the evening turned quiet.")
}

func TestJournalLongSessionFallbackStaysInBounds(t *testing.T) {
	// The probabilistic branch is tunable; assert only that every output is
	// either an acknowledgment or a paraphrase, never something else.
	for seed := int64(0); seed < 30; seed++ {
		gen := NewJournalGenerator(rand.New(rand.NewSource(seed)))
		got := gen.Reply("The meeting ran over again and nobody noticed the schedule.", 5)

		if containsString(AcknowledgmentPool, got) {
			continue
		}
		var prefixed bool
		for _, s := range paraphraseStarters {
			if strings.HasPrefix(got, s) {
				prefixed = true
			}
		}
		assert.True(t, prefixed, "seed %d produced unexpected reply %q", seed, got)
	}
}

func TestJournalNeverReturnsEmpty(t *testing.T) {
	gen := NewJournalGenerator(newTestRng())

	for _, input := range []string{"x", "a b c d e f g", "I felt nothing. Truly."} {
		assert.NotEmpty(t, gen.Reply(input, 2))
	}
}

func containsString(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}
