package mapper

import (
	"time"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/model"
)

type VoiceMapper struct{}

func NewVoiceMapper() *VoiceMapper {
	return &VoiceMapper{}
}

func (m *VoiceMapper) PreferenceToEntity(p *model.VoicePreference) *entity.VoicePreference {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.VoicePreference{
		Id:        p.Id,
		UserId:    p.UserId,
		VoiceName: p.VoiceName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VoiceMapper) PreferenceToModel(p *entity.VoicePreference) *model.VoicePreference {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.VoicePreference{
		Id:        p.Id,
		UserId:    p.UserId,
		VoiceName: p.VoiceName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
