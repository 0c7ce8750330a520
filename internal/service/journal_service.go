package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"mindshift-be/internal/constant"
	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/specification"
	"mindshift-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// IJournalService debounces journal edits into persisted drafts and serves
// them back for session restore.
type IJournalService interface {
	OnContentChange(ctx context.Context, userId uuid.UUID, request *dto.SaveDraftRequest) error
	FlushNow(ctx context.Context, userId uuid.UUID, request *dto.SaveDraftRequest) error
	GetDraft(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.DraftResponse, error)
	Close()
}

type draftKey struct {
	userId    uuid.UUID
	sessionId uuid.UUID
}

func (k draftKey) String() string {
	return k.userId.String() + "/" + k.sessionId.String()
}

type pendingDraft struct {
	timer   *time.Timer
	content string
}

type journalService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  EventPublisher
	debounce   time.Duration
	logger     logger.ILogger

	mu      sync.Mutex
	pending map[draftKey]*pendingDraft
	closed  bool

	// lastSaved remembers the most recent persisted content per draft so
	// unchanged flushes skip storage. Entries age out rather than pinning
	// every session the process ever touched.
	lastSaved *gocache.Cache
}

func NewJournalService(
	uowFactory unitofwork.RepositoryFactory,
	publisher EventPublisher,
	debounce time.Duration,
	log logger.ILogger,
) IJournalService {
	return &journalService{
		uowFactory: uowFactory,
		publisher:  publisher,
		debounce:   debounce,
		logger:     log,
		pending:    make(map[draftKey]*pendingDraft),
		lastSaved:  gocache.New(24*time.Hour, time.Hour),
	}
}

// OnContentChange records the latest content and restarts the debounce
// window. Only the content present when the window elapses is persisted.
func (js *journalService) OnContentChange(ctx context.Context, userId uuid.UUID, request *dto.SaveDraftRequest) error {
	key := draftKey{userId: userId, sessionId: request.ChatSessionId}

	js.mu.Lock()
	defer js.mu.Unlock()
	if js.closed {
		return nil
	}

	if p, ok := js.pending[key]; ok {
		p.timer.Stop()
		p.content = request.Content
		p.timer.Reset(js.debounce)
		return nil
	}

	p := &pendingDraft{content: request.Content}
	p.timer = time.AfterFunc(js.debounce, func() {
		js.flush(key)
	})
	js.pending[key] = p
	return nil
}

// FlushNow persists immediately, bypassing the debounce window. Used when
// the client is about to navigate away.
func (js *journalService) FlushNow(ctx context.Context, userId uuid.UUID, request *dto.SaveDraftRequest) error {
	key := draftKey{userId: userId, sessionId: request.ChatSessionId}

	js.mu.Lock()
	if p, ok := js.pending[key]; ok {
		p.timer.Stop()
		delete(js.pending, key)
	}
	js.mu.Unlock()

	return js.persist(ctx, key, request.Content)
}

func (js *journalService) flush(key draftKey) {
	js.mu.Lock()
	p, ok := js.pending[key]
	if !ok {
		js.mu.Unlock()
		return
	}
	content := p.content
	delete(js.pending, key)
	js.mu.Unlock()

	if err := js.persist(context.Background(), key, content); err != nil {
		js.logger.Error("journal", "autosave flush failed", map[string]interface{}{
			"session_id": key.sessionId.String(),
			"error":      err.Error(),
		})
	}
}

func (js *journalService) persist(ctx context.Context, key draftKey, content string) error {
	// Empty or unchanged content never hits storage.
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if prev, found := js.lastSaved.Get(key.String()); found && prev.(string) == content {
		return nil
	}

	now := time.Now()
	draft := entity.JournalDraft{
		Id:            uuid.New(),
		UserId:        key.userId,
		ChatSessionId: key.sessionId,
		Content:       content,
		CreatedAt:     now,
		UpdatedAt:     &now,
	}

	uow := js.uowFactory.NewUnitOfWork(ctx)
	if err := uow.JournalDraftRepository().Upsert(ctx, &draft); err != nil {
		return err
	}

	js.lastSaved.Set(key.String(), content, gocache.DefaultExpiration)

	js.publisher.Publish(constant.EventJournalEntry, key.userId.String(), map[string]interface{}{
		"session_id": key.sessionId.String(),
		"length":     len(content),
	})
	return nil
}

func (js *journalService) GetDraft(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.DraftResponse, error) {
	uow := js.uowFactory.NewUnitOfWork(ctx)
	draft, err := uow.JournalDraftRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByChatSessionID{ChatSessionID: sessionId},
	)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return &dto.DraftResponse{ChatSessionId: sessionId, Content: ""}, nil
	}
	return &dto.DraftResponse{
		ChatSessionId: draft.ChatSessionId,
		Content:       draft.Content,
		UpdatedAt:     draft.UpdatedAt,
	}, nil
}

// Close stops every outstanding debounce timer without persisting.
func (js *journalService) Close() {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.closed = true
	for key, p := range js.pending {
		p.timer.Stop()
		delete(js.pending, key)
	}
}
