package unitofwork

import (
	"context"

	"mindshift-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	JournalDraftRepository() contract.JournalDraftRepository
	VoicePreferenceRepository() contract.VoicePreferenceRepository
}
