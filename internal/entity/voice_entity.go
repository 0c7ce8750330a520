package entity

import (
	"time"

	"github.com/google/uuid"
)

// Voice gender categories as exposed by the synthesis catalog.
const (
	VoiceGenderFemale = "female"
	VoiceGenderMale   = "male"
	VoiceGenderChild  = "child"
)

// VoiceProfile is a read-only catalog entry.
type VoiceProfile struct {
	Name   string
	Gender string
}

// VoicePreference is the per-user persisted voice selection.
type VoicePreference struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	VoiceName string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
