package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveDraftRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Content       string    `json:"content"`
}

type DraftResponse struct {
	ChatSessionId uuid.UUID  `json:"chat_session_id"`
	Content       string     `json:"content"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
