package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"mindshift-be/internal/constant"
	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/specification"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/pkg/reply"

	"github.com/google/uuid"
)

// EventPublisher hands envelopes to the automation boundary without ever
// blocking the turn pipeline.
type EventPublisher interface {
	Publish(kind, userId string, data map[string]interface{}) bool
}

// Vocalizer is the speech channel for reframe replies.
type Vocalizer interface {
	Speak(text string, voice entity.VoiceProfile)
}

// VoicePicker resolves the voice a user's replies should be spoken with.
type VoicePicker interface {
	PreferredVoice(ctx context.Context, userId uuid.UUID) entity.VoiceProfile
}

// IChatbotService defines the conversational session surface
type IChatbotService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, mode string) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) (*dto.DeleteSessionResponse, error)
}

type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  EventPublisher
	speaker    Vocalizer
	voices     VoicePicker
	replyDelay time.Duration
	logger     logger.ILogger

	// The RNG feeds every generator; serialize access since turns for
	// different sessions run concurrently.
	rngMu sync.Mutex
	rng   *rand.Rand

	// One turn at a time per session.
	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	publisher EventPublisher,
	speaker Vocalizer,
	voices VoicePicker,
	rng *rand.Rand,
	replyDelay time.Duration,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory: uowFactory,
		publisher:  publisher,
		speaker:    speaker,
		voices:     voices,
		replyDelay: replyDelay,
		logger:     log,
		rng:        rng,
		locks:      make(map[uuid.UUID]*sync.Mutex),
	}
}

func (cs *chatbotService) sessionLock(id uuid.UUID) *sync.Mutex {
	cs.locksMu.Lock()
	defer cs.locksMu.Unlock()
	if l, ok := cs.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	cs.locks[id] = l
	return l
}

func (cs *chatbotService) generate(mode, userText string, priorUserTurns int) string {
	cs.rngMu.Lock()
	defer cs.rngMu.Unlock()
	return reply.ForMode(mode, cs.rng).Reply(userText, priorUserTurns)
}

func (cs *chatbotService) pickOpeningPrompt() string {
	cs.rngMu.Lock()
	defer cs.rngMu.Unlock()
	return constant.JournalOpeningPrompts[cs.rng.Intn(len(constant.JournalOpeningPrompts))]
}

// CreateSession opens a new conversation. Journal sessions get a first
// assistant prompt appended asynchronously after the thinking delay.
func (cs *chatbotService) CreateSession(ctx context.Context, userId uuid.UUID, mode string) (*dto.CreateSessionResponse, error) {
	if mode != constant.SessionModeReframe && mode != constant.SessionModeJournal {
		return nil, ErrInvalidMode
	}

	now := time.Now()
	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Mode:      mode,
		Title:     constant.PlaceholderTitleFor(mode),
		CreatedAt: now,
	}
	if mode == constant.SessionModeJournal {
		day := now.Truncate(24 * time.Hour)
		session.EntryDate = &day
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if mode == constant.SessionModeJournal {
		go cs.appendOpeningPrompt(session.Id, userId, cs.pickOpeningPrompt())
	}

	cs.publisher.Publish(constant.EventSessionCreated, userId.String(), map[string]interface{}{
		"session_id": session.Id.String(),
		"mode":       mode,
	})

	return &dto.CreateSessionResponse{
		Id:    session.Id,
		Mode:  session.Mode,
		Title: session.Title,
	}, nil
}

func (cs *chatbotService) appendOpeningPrompt(sessionId, userId uuid.UUID, prompt string) {
	time.Sleep(cs.replyDelay)

	ctx := context.Background()
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("chatbot", "failed to append journal opening prompt", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return
	}
	defer uow.Rollback()

	now := time.Now()
	message := entity.ChatMessage{
		Id:             uuid.New(),
		ChatSessionId:  sessionId,
		UserId:         userId,
		Role:           constant.ChatMessageRoleAssistant,
		Content:        prompt,
		IsJournalEntry: true,
		CreatedAt:      now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		cs.logger.Error("chatbot", "failed to append journal opening prompt", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return
	}

	// The prompt is an assistant append, so it counts toward recency.
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil || session == nil {
		return
	}
	session.UpdatedAt = &now
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return
	}
	if err := uow.Commit(); err != nil {
		cs.logger.Error("chatbot", "failed to append journal opening prompt", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
}

func (cs *chatbotService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, s := range sessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Mode:      s.Mode,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return response, nil
}

func (cs *chatbotService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, &dto.GetChatHistoryResponse{
			Id:             m.Id,
			Role:           m.Role,
			Content:        m.Content,
			IsJournalEntry: m.IsJournalEntry,
			CreatedAt:      m.CreatedAt,
		})
	}
	return response, nil
}

// SendChat runs one conversational turn: durably append the user message,
// wait out the thinking delay, compute the reply, append it, then hand the
// side effects (speech, automation) off without waiting on them.
func (cs *chatbotService) SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	lock := cs.sessionLock(request.ChatSessionId)
	lock.Lock()
	defer lock.Unlock()

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	priorUserTurns, err := uow.ChatMessageRepository().Count(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.ByRole{Role: constant.ChatMessageRoleUser},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:             uuid.New(),
		ChatSessionId:  session.Id,
		UserId:         userId,
		Role:           constant.ChatMessageRoleUser,
		Content:        content,
		IsJournalEntry: session.Mode == constant.SessionModeJournal,
		CreatedAt:      now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if session.Title == constant.PlaceholderTitleFor(session.Mode) {
		session.Title = deriveTitle(content)
	}
	session.UpdatedAt = &now
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Thinking pause; the reply must not appear instantly.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(cs.replyDelay):
	}

	replyText := cs.generate(session.Mode, content, int(priorUserTurns))

	replyAt := time.Now()
	assistantMessage := entity.ChatMessage{
		Id:             uuid.New(),
		ChatSessionId:  session.Id,
		UserId:         userId,
		Role:           constant.ChatMessageRoleAssistant,
		Content:        replyText,
		IsJournalEntry: session.Mode == constant.SessionModeJournal,
		CreatedAt:      replyAt,
	}

	uow = cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}
	session.UpdatedAt = &replyAt
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	spoken := false
	if session.Mode == constant.SessionModeReframe && cs.speaker != nil {
		cs.speaker.Speak(replyText, cs.voices.PreferredVoice(ctx, userId))
		spoken = true
	}

	cs.publisher.Publish(constant.EventChatInteraction, userId.String(), map[string]interface{}{
		"session_id": session.Id.String(),
		"mode":       session.Mode,
		"message":    content,
		"response":   replyText,
	})

	return &dto.SendChatResponse{
		ChatSessionId: session.Id,
		Title:         session.Title,
		Sent: &dto.SendChatResponseChat{
			Id:        userMessage.Id,
			Role:      userMessage.Role,
			Content:   userMessage.Content,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        assistantMessage.Id,
			Role:      assistantMessage.Role,
			Content:   assistantMessage.Content,
			CreatedAt: assistantMessage.CreatedAt,
		},
		Spoken: spoken,
	}, nil
}

// DeleteSession removes the session with its messages and draft, and
// reports the next most-recent session so the client keeps an active one.
func (cs *chatbotService) DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) (*dto.DeleteSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, session.Id); err != nil {
		return nil, err
	}
	if err := uow.JournalDraftRepository().DeleteAllBySessionId(ctx, session.Id); err != nil {
		return nil, err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// The session is gone, so its lock entry can go too.
	cs.locksMu.Lock()
	delete(cs.locks, session.Id)
	cs.locksMu.Unlock()

	remaining, err := cs.uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.DeleteSessionResponse{}
	if len(remaining) > 0 {
		next := remaining[0].Id
		response.NextSessionId = &next
	}
	return response, nil
}

func deriveTitle(firstMessage string) string {
	runes := []rune(firstMessage)
	if len(runes) <= constant.SessionTitleMaxLen {
		return firstMessage
	}
	return string(runes[:constant.SessionTitleMaxLen]) + "..."
}
