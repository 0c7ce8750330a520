package mapper

import (
	"time"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/model"
)

type JournalMapper struct{}

func NewJournalMapper() *JournalMapper {
	return &JournalMapper{}
}

func (m *JournalMapper) DraftToEntity(d *model.JournalDraft) *entity.JournalDraft {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.JournalDraft{
		Id:            d.Id,
		UserId:        d.UserId,
		ChatSessionId: d.ChatSessionId,
		Content:       d.Content,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *JournalMapper) DraftToModel(d *entity.JournalDraft) *model.JournalDraft {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.JournalDraft{
		Id:            d.Id,
		UserId:        d.UserId,
		ChatSessionId: d.ChatSessionId,
		Content:       d.Content,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}
