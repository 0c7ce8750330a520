package contract

import (
	"context"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ChatMessageRepository is append-only from the service's point of view:
// messages are never updated, only created and cascade-deleted with their
// session.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
