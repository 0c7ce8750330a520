package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"mindshift-be/internal/constant"
	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/memory"
	"mindshift-be/pkg/speech"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Kind   string
	UserId string
	Data   map[string]interface{}
}

func (p *fakePublisher) Publish(kind, userId string, data map[string]interface{}) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Kind: kind, UserId: userId, Data: data})
	return true
}

func (p *fakePublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}

type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []string
	voices []entity.VoiceProfile
}

func (s *fakeSpeaker) Speak(text string, voice entity.VoiceProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, text)
	s.voices = append(s.voices, voice)
}

type fixedVoice struct {
	voice entity.VoiceProfile
}

func (f fixedVoice) PreferredVoice(ctx context.Context, userId uuid.UUID) entity.VoiceProfile {
	return f.voice
}

func newTestChatbotService(store *memory.Store, publisher *fakePublisher, speaker *fakeSpeaker) IChatbotService {
	return NewChatbotService(
		store,
		publisher,
		speaker,
		fixedVoice{voice: entity.VoiceProfile{Name: "Aria", Gender: entity.VoiceGenderFemale}},
		rand.New(rand.NewSource(7)),
		time.Millisecond,
		logger.NewNopLogger(),
	)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestCreateSessionReframe(t *testing.T) {
	store := memory.NewStore()
	publisher := &fakePublisher{}
	svc := newTestChatbotService(store, publisher, &fakeSpeaker{})

	userId := uuid.New()
	response, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	assert.Equal(t, constant.SessionModeReframe, response.Mode)
	assert.Equal(t, constant.ReframePlaceholderTitle, response.Title)
	assert.Contains(t, publisher.kinds(), constant.EventSessionCreated)
	assert.Empty(t, store.Messages())
}

func TestCreateSessionJournalAppendsOpeningPrompt(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	response, err := svc.CreateSession(context.Background(), userId, constant.SessionModeJournal)
	require.NoError(t, err)
	assert.Equal(t, constant.JournalPlaceholderTitle, response.Title)

	waitFor(t, time.Second, func() bool {
		return len(store.Messages()) == 1
	})

	messages := store.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, messages[0].Role)
	assert.True(t, messages[0].IsJournalEntry)
	assert.Contains(t, constant.JournalOpeningPrompts, messages[0].Content)
}

func TestCreateSessionJournalPromptBumpsSessionRecency(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	created, err := svc.CreateSession(context.Background(), userId, constant.SessionModeJournal)
	require.NoError(t, err)

	waitFor(t, time.Second, func() bool {
		return len(store.Messages()) == 1
	})

	stored := store.Session(created.Id)
	require.NotNil(t, stored)
	require.NotNil(t, stored.UpdatedAt)
	assert.False(t, stored.UpdatedAt.Before(store.Messages()[0].CreatedAt))
}

func TestCreateSessionRejectsUnknownMode(t *testing.T) {
	svc := newTestChatbotService(memory.NewStore(), &fakePublisher{}, &fakeSpeaker{})

	_, err := svc.CreateSession(context.Background(), uuid.New(), "vent")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestSendChatAppendsBothMessagesInOrder(t *testing.T) {
	store := memory.NewStore()
	speaker := &fakeSpeaker{}
	svc := newTestChatbotService(store, &fakePublisher{}, speaker)

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	response, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "I am stressed about work",
	})
	require.NoError(t, err)

	messages := store.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, messages[1].Role)
	assert.False(t, messages[1].CreatedAt.Before(messages[0].CreatedAt))

	assert.Equal(t, "I am stressed about work", response.Sent.Content)
	assert.NotEmpty(t, response.Reply.Content)
	assert.True(t, response.Spoken)

	speaker.mu.Lock()
	defer speaker.mu.Unlock()
	require.Len(t, speaker.spoken, 1)
	assert.Equal(t, response.Reply.Content, speaker.spoken[0])
}

func TestSendChatJournalModeIsNotSpoken(t *testing.T) {
	store := memory.NewStore()
	speaker := &fakeSpeaker{}
	svc := newTestChatbotService(store, &fakePublisher{}, speaker)

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeJournal)
	require.NoError(t, err)

	response, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "Today I felt grateful for small things.",
	})
	require.NoError(t, err)

	assert.False(t, response.Spoken)
	speaker.mu.Lock()
	defer speaker.mu.Unlock()
	assert.Empty(t, speaker.spoken)
}

func TestSendChatSetsTitleFromFirstMessageOnly(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	first, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "I keep worrying about deadlines",
	})
	require.NoError(t, err)
	assert.Equal(t, "I keep worrying about deadlines", first.Title)

	second, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "It got worse today",
	})
	require.NoError(t, err)
	assert.Equal(t, "I keep worrying about deadlines", second.Title)
}

func TestSendChatTruncatesLongTitle(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	long := strings.Repeat("worried ", 20)
	response, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       long,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(response.Title, "..."))
	assert.Len(t, []rune(response.Title), constant.SessionTitleMaxLen+3)
}

func TestSendChatRejectsEmptyContent(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "   ",
	})
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, store.Messages())
}

func TestSendChatPersistenceFailureFailsTurn(t *testing.T) {
	store := memory.NewStore()
	publisher := &fakePublisher{}
	speaker := &fakeSpeaker{}
	svc := newTestChatbotService(store, publisher, speaker)

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	store.FailCreates = true
	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "I feel stressed about everything",
	})
	require.Error(t, err)

	// One attempt, no retry, nothing persisted, no side effects.
	assert.Equal(t, 1, store.MessageCreateAttempts())
	assert.Empty(t, store.Messages())
	speaker.mu.Lock()
	assert.Empty(t, speaker.spoken)
	speaker.mu.Unlock()
	assert.NotContains(t, publisher.kinds(), constant.EventChatInteraction)
}

func TestSendChatUnknownSession(t *testing.T) {
	svc := newTestChatbotService(memory.NewStore(), &fakePublisher{}, &fakeSpeaker{})

	_, err := svc.SendChat(context.Background(), uuid.New(), &dto.SendChatRequest{
		ChatSessionId: uuid.New(),
		Content:       "hello",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatOtherUsersSessionIsInvisible(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	owner := uuid.New()
	session, err := svc.CreateSession(context.Background(), owner, constant.SessionModeReframe)
	require.NoError(t, err)

	_, err = svc.SendChat(context.Background(), uuid.New(), &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "hello",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatPublishesChatInteraction(t *testing.T) {
	store := memory.NewStore()
	publisher := &fakePublisher{}
	svc := newTestChatbotService(store, publisher, &fakeSpeaker{})

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "I feel anxious",
	})
	require.NoError(t, err)

	assert.Contains(t, publisher.kinds(), constant.EventChatInteraction)
}

func TestGetChatHistoryReturnsChronologicalOrder(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	for _, content := range []string{"first thing", "second thing"} {
		_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
			ChatSessionId: session.Id,
			Content:       content,
		})
		require.NoError(t, err)
	}

	history, err := svc.GetChatHistory(context.Background(), userId, session.Id)
	require.NoError(t, err)
	require.Len(t, history, 4)

	assert.Equal(t, "first thing", history[0].Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history[1].Role)
	assert.Equal(t, "second thing", history[2].Content)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CreatedAt.Before(history[i-1].CreatedAt))
	}
}

func TestGetAllSessionsMostRecentFirst(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	older, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)
	newer, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	// Touch the older session so it becomes the most recent.
	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: older.Id,
		Content:       "bumping this one",
	})
	require.NoError(t, err)

	sessions, err := svc.GetAllSessions(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, older.Id, sessions[0].Id)
	assert.Equal(t, newer.Id, sessions[1].Id)
}

func TestDeleteSessionReturnsNextMostRecent(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	keep, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)
	doomed, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: doomed.Id,
		Content:       "this session goes away",
	})
	require.NoError(t, err)

	response, err := svc.DeleteSession(context.Background(), userId, &dto.DeleteSessionRequest{
		ChatSessionId: doomed.Id,
	})
	require.NoError(t, err)
	require.NotNil(t, response.NextSessionId)
	assert.Equal(t, keep.Id, *response.NextSessionId)

	for _, m := range store.Messages() {
		assert.NotEqual(t, doomed.Id, m.ChatSessionId)
	}
}

func TestDeleteSessionReleasesLock(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	_, err = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "just one turn",
	})
	require.NoError(t, err)

	cs := svc.(*chatbotService)
	cs.locksMu.Lock()
	_, held := cs.locks[session.Id]
	cs.locksMu.Unlock()
	require.True(t, held)

	_, err = svc.DeleteSession(context.Background(), userId, &dto.DeleteSessionRequest{
		ChatSessionId: session.Id,
	})
	require.NoError(t, err)

	cs.locksMu.Lock()
	_, held = cs.locks[session.Id]
	cs.locksMu.Unlock()
	assert.False(t, held)
}

func TestDeleteLastSessionLeavesNoNext(t *testing.T) {
	store := memory.NewStore()
	svc := newTestChatbotService(store, &fakePublisher{}, &fakeSpeaker{})

	userId := uuid.New()
	only, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	response, err := svc.DeleteSession(context.Background(), userId, &dto.DeleteSessionRequest{
		ChatSessionId: only.Id,
	})
	require.NoError(t, err)
	assert.Nil(t, response.NextSessionId)
}

func TestSendChatWithRealSpeaker(t *testing.T) {
	store := memory.NewStore()
	speaker := speech.NewSpeaker(speech.NewLogEngine(logger.NewNopLogger()), rand.New(rand.NewSource(1)), logger.NewNopLogger())
	svc := NewChatbotService(
		store,
		&fakePublisher{},
		speaker,
		fixedVoice{voice: entity.VoiceProfile{Name: "Aria", Gender: entity.VoiceGenderFemale}},
		rand.New(rand.NewSource(7)),
		time.Millisecond,
		logger.NewNopLogger(),
	)

	userId := uuid.New()
	session, err := svc.CreateSession(context.Background(), userId, constant.SessionModeReframe)
	require.NoError(t, err)

	response, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{
		ChatSessionId: session.Id,
		Content:       "I feel exhausted lately",
	})
	require.NoError(t, err)
	assert.True(t, response.Spoken)

	speaker.Stop()
}
