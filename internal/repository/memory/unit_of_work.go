package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/repository/contract"
	"mindshift-be/internal/repository/specification"
	"mindshift-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Store is a map-backed stand-in for the database, shared by all unit of
// work instances produced by its factory. Transactions are no-ops; tests
// exercise service orchestration, not isolation.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.ChatSession
	messages []*entity.ChatMessage
	drafts   map[uuid.UUID]*entity.JournalDraft // keyed by session id
	prefs    map[uuid.UUID]*entity.VoicePreference

	// FailCreates makes message creation fail, for persistence-failure paths.
	FailCreates    bool
	createAttempts int
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*entity.ChatSession),
		messages: make([]*entity.ChatMessage, 0),
		drafts:   make(map[uuid.UUID]*entity.JournalDraft),
		prefs:    make(map[uuid.UUID]*entity.VoicePreference),
	}
}

func (s *Store) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUow{store: s}
}

// Messages returns a copy of all stored messages in insertion order.
func (s *Store) Messages() []*entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Session returns a copy of the stored session, if any.
func (s *Store) Session(id uuid.UUID) *entity.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[id]; ok {
		cp := *session
		return &cp
	}
	return nil
}

// MessageCreateAttempts counts every message create, failed ones included.
func (s *Store) MessageCreateAttempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAttempts
}

// Draft returns the stored draft for a session, if any.
func (s *Store) Draft(sessionId uuid.UUID) *entity.JournalDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts[sessionId]
}

type memoryUow struct {
	store *Store
}

func (u *memoryUow) Begin(ctx context.Context) error { return nil }
func (u *memoryUow) Commit() error                   { return nil }
func (u *memoryUow) Rollback() error                 { return nil }

func (u *memoryUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &sessionRepo{store: u.store}
}

func (u *memoryUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &messageRepo{store: u.store}
}

func (u *memoryUow) JournalDraftRepository() contract.JournalDraftRepository {
	return &draftRepo{store: u.store}
}

func (u *memoryUow) VoicePreferenceRepository() contract.VoicePreferenceRepository {
	return &prefRepo{store: u.store}
}

// filters extracted from the known specification types

type filters struct {
	byID      *uuid.UUID
	ownedBy   *uuid.UUID
	sessionID *uuid.UUID
	role      string
	mode      string
	orderBy   *specification.OrderBy
}

func collect(specs []specification.Specification) filters {
	var f filters
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.byID = &id
		case specification.OwnedBy:
			id := v.UserID
			f.ownedBy = &id
		case specification.ByChatSessionID:
			id := v.ChatSessionID
			f.sessionID = &id
		case specification.ByRole:
			f.role = v.Role
		case specification.ByMode:
			f.mode = v.Mode
		case specification.OrderBy:
			ob := v
			f.orderBy = &ob
		}
	}
	return f
}

// Session repository

type sessionRepo struct {
	store *Store
}

func (r *sessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *sessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, id)
	return nil
}

func (r *sessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *sessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	f := collect(specs)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.ChatSession, 0, len(r.store.sessions))
	for _, s := range r.store.sessions {
		if f.byID != nil && s.Id != *f.byID {
			continue
		}
		if f.ownedBy != nil && s.UserId != *f.ownedBy {
			continue
		}
		if f.mode != "" && s.Mode != f.mode {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	if f.orderBy != nil && f.orderBy.Field == "updated_at" {
		sort.Slice(out, func(i, j int) bool {
			ti, tj := sessionSortTime(out[i]), sessionSortTime(out[j])
			if f.orderBy.Desc {
				return ti.After(tj)
			}
			return ti.Before(tj)
		})
	}
	return out, nil
}

func sessionSortTime(s *entity.ChatSession) time.Time {
	if s.UpdatedAt != nil {
		return *s.UpdatedAt
	}
	return s.CreatedAt
}

func (r *sessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

// Message repository

type messageRepo struct {
	store *Store
}

func (r *messageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.createAttempts++
	if r.store.FailCreates {
		return context.DeadlineExceeded
	}
	cp := *message
	r.store.messages = append(r.store.messages, &cp)
	return nil
}

func (r *messageRepo) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *messageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	f := collect(specs)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.ChatMessage, 0)
	for _, m := range r.store.messages {
		if f.sessionID != nil && m.ChatSessionId != *f.sessionID {
			continue
		}
		if f.role != "" && m.Role != f.role {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if f.orderBy != nil && f.orderBy.Field == "created_at" {
		sort.SliceStable(out, func(i, j int) bool {
			if f.orderBy.Desc {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (r *messageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

// Draft repository

type draftRepo struct {
	store *Store
}

func (r *draftRepo) Upsert(ctx context.Context, draft *entity.JournalDraft) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	now := time.Now()
	if existing, ok := r.store.drafts[draft.ChatSessionId]; ok && existing.UserId == draft.UserId {
		existing.Content = draft.Content
		existing.UpdatedAt = &now
		*draft = *existing
		return nil
	}
	if draft.Id == uuid.Nil {
		draft.Id = uuid.New()
	}
	draft.CreatedAt = now
	cp := *draft
	r.store.drafts[draft.ChatSessionId] = &cp
	return nil
}

func (r *draftRepo) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.drafts, sessionId)
	return nil
}

func (r *draftRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JournalDraft, error) {
	f := collect(specs)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range r.store.drafts {
		if f.sessionID != nil && d.ChatSessionId != *f.sessionID {
			continue
		}
		if f.ownedBy != nil && d.UserId != *f.ownedBy {
			continue
		}
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

// Voice preference repository

type prefRepo struct {
	store *Store
}

func (r *prefRepo) Upsert(ctx context.Context, pref *entity.VoicePreference) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	now := time.Now()
	if existing, ok := r.store.prefs[pref.UserId]; ok {
		existing.VoiceName = pref.VoiceName
		existing.UpdatedAt = &now
		*pref = *existing
		return nil
	}
	if pref.Id == uuid.Nil {
		pref.Id = uuid.New()
	}
	pref.CreatedAt = now
	cp := *pref
	r.store.prefs[pref.UserId] = &cp
	return nil
}

func (r *prefRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoicePreference, error) {
	f := collect(specs)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.prefs {
		if f.ownedBy != nil && p.UserId != *f.ownedBy {
			continue
		}
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
