package sessions

import (
	"context"
	"sync"
	"time"

	"lookcircuit-backend/internal/shared/telemetry"
)

// DefaultSessionTTL is how long a session survives without being read or written.
const DefaultSessionTTL = 30 * time.Minute

// Store keeps sessions for the lifetime of the process.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
}

type storedSession struct {
	session  *Session
	lastSeen time.Time
}

// MemoryStore is a Store safe for concurrent use. Sessions idle for longer
// than TTL are dropped.
type MemoryStore struct {
	TTL time.Duration
	Now func() time.Time

	mu   sync.Mutex
	byID map[string]storedSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{TTL: DefaultSessionTTL, byID: make(map[string]storedSession)}
}

func (m *MemoryStore) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *MemoryStore) expired(e storedSession, now time.Time) bool {
	return m.TTL > 0 && now.Sub(e.lastSeen) > m.TTL
}

// sweep drops expired sessions. Callers hold m.mu.
func (m *MemoryStore) sweep(now time.Time) {
	dropped := 0
	for id, e := range m.byID {
		if m.expired(e, now) {
			delete(m.byID, id)
			dropped++
		}
	}
	if dropped > 0 {
		telemetry.Debug("sessions.expired", map[string]any{"count": dropped, "remaining": len(m.byID)})
	}
}

func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep(now)
	m.byID[s.ID] = storedSession{session: s, lastSeen: now}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(e, now) {
		delete(m.byID, id)
		return nil, ErrNotFound
	}
	e.lastSeen = now
	m.byID[id] = e
	return e.session, nil
}

// Len reports the number of stored sessions, expired ones included until the next sweep.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}
