package contract

import (
	"context"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/specification"
)

type VoicePreferenceRepository interface {
	// Upsert creates or replaces the user's voice selection.
	Upsert(ctx context.Context, pref *entity.VoicePreference) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoicePreference, error)
}
