// Package reply implements the heuristic response engine. Replies are
// selected by deterministic text classification, never by a language model;
// the only randomness is the injected RNG, so tests can pin exact outputs.
package reply

import (
	"math/rand"

	"mindshift-be/internal/constant"
)

// Generator produces the assistant reply for one conversational mode.
// Callers guarantee non-empty trimmed input; the result is always a
// non-empty string.
type Generator interface {
	// Reply computes the assistant reply for the given user text.
	// priorUserTurns is the number of user messages already in the
	// session, before this one.
	Reply(userText string, priorUserTurns int) string
}

// ForMode selects the generator matching a session's mode, chosen once per
// session so mode branching never leaks into the turn pipeline.
func ForMode(mode string, rng *rand.Rand) Generator {
	if mode == constant.SessionModeJournal {
		return NewJournalGenerator(rng)
	}
	return NewReframeGenerator(rng)
}
