package contract

import (
	"context"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/specification"

	"github.com/google/uuid"
)

type JournalDraftRepository interface {
	// Upsert creates the draft if absent, otherwise replaces its content,
	// keyed by (user_id, chat_session_id).
	Upsert(ctx context.Context, draft *entity.JournalDraft) error
	DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JournalDraft, error)
}
