package auth

import (
	"sync"
	"time"
)

// stateStore holds pending OAuth states. Each state is bound to one provider and used once.
type stateStore struct {
	mu    sync.Mutex
	items map[string]pendingState
	now   func() time.Time
}

type pendingState struct {
	provider string
	expires  time.Time
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]pendingState), now: time.Now}
}

func (s *stateStore) put(state, provider string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, v := range s.items {
		if now.After(v.expires) {
			delete(s.items, k)
		}
	}
	s.items[state] = pendingState{provider: provider, expires: now.Add(ttl)}
}

func (s *stateStore) consume(state, provider string) bool {
	s.mu.Lock()
	p, ok := s.items[state]
	delete(s.items, state)
	now := s.now()
	s.mu.Unlock()
	return ok && p.provider == provider && !now.After(p.expires)
}
