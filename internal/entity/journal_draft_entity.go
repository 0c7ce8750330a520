package entity

import (
	"time"

	"github.com/google/uuid"
)

type JournalDraft struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	ChatSessionId uuid.UUID
	Content       string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
