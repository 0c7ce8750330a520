package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id             uuid.UUID
	ChatSessionId  uuid.UUID
	UserId         uuid.UUID
	Role           string
	Content        string
	IsJournalEntry bool
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
