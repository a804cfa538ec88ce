package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"timetable-assistant/internal/model"
	pkgLog "timetable-assistant/pkg/log"
)

const (
	defaultMaxEntries = 1000
	defaultTTL        = 4 * time.Hour
)

// memoryStore is an in-memory Store backed by an expirable LRU, mirroring the
// tab-scoped lifetime of the original session storage: entries vanish on TTL
// or under capacity pressure, never touch disk.
type memoryStore struct {
	l     pkgLog.Logger
	cache *expirable.LRU[string, Session]

	// The LRU is internally synchronized, but read-modify-write sequences
	// (profile/timetable/transcript updates) need their own lock.
	mu sync.Mutex
}

// NewStore creates an in-memory session store. maxEntries and ttl fall back
// to defaults when zero.
func NewStore(l pkgLog.Logger, maxEntries int, ttl time.Duration) Store {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &memoryStore{
		l:     l,
		cache: expirable.NewLRU[string, Session](maxEntries, nil, ttl),
	}
}

func (s *memoryStore) Create(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cache.Add(sess.ID, sess)

	s.l.Debugf(ctx, "session store: created %s", sess.ID)
	return sess, nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *memoryStore) SaveProfile(ctx context.Context, id string, profile model.StudentProfile) (Session, error) {
	return s.update(id, func(sess *Session) {
		sess.Profile = profile
	})
}

func (s *memoryStore) SaveTimetable(ctx context.Context, id string, raw string) (Session, error) {
	return s.update(id, func(sess *Session) {
		sess.TimetableRaw = raw
		// A fresh timetable starts a fresh conversation.
		sess.Messages = nil
	})
}

func (s *memoryStore) AppendMessages(ctx context.Context, id string, msgs ...model.ChatMessage) (Session, error) {
	return s.update(id, func(sess *Session) {
		sess.Messages = append(sess.Messages, msgs...)
	})
}

func (s *memoryStore) update(id string, fn func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return Session{}, ErrNotFound
	}

	fn(&sess)
	sess.UpdatedAt = time.Now()
	s.cache.Add(id, sess)
	return sess, nil
}
