package model

import (
	"time"

	"github.com/google/uuid"
)

type JournalDraft struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_journal_drafts_owner_entry"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_journal_drafts_owner_entry"`
	Content       string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (JournalDraft) TableName() string {
	return "journal_drafts"
}
