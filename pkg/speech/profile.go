// Package speech maps voice preferences to synthesis profiles and owns the
// single active utterance. The synthesis backend itself is an external
// collaborator behind the Engine interface.
package speech

import "mindshift-be/internal/entity"

// Profile carries the prosody parameters handed to the synthesis engine.
type Profile struct {
	Rate  float64
	Pitch float64
}

// ProfileFor maps a voice gender category to its synthesis profile.
func ProfileFor(gender string) Profile {
	switch gender {
	case entity.VoiceGenderMale:
		return Profile{Rate: 0.9, Pitch: 0.95}
	case entity.VoiceGenderChild:
		return Profile{Rate: 1.2, Pitch: 1.8}
	default:
		return Profile{Rate: 0.85, Pitch: 1.05}
	}
}
