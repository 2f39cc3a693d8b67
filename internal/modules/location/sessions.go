package location

import (
	"sync"
	"time"
)

// Sessions hands out one Resolver per session key (user id, or client address
// for anonymous callers). Resolvers are created on first use; there is no
// process-wide shared location state.
type Sessions struct {
	mutex    sync.Mutex
	byKey    map[string]*Resolver
	provider FixProvider
	timeout  time.Duration
}

func NewSessions(provider FixProvider, timeout time.Duration) *Sessions {
	return &Sessions{
		byKey:    make(map[string]*Resolver),
		provider: provider,
		timeout:  timeout,
	}
}

func (s *Sessions) For(key string) *Resolver {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if r, exists := s.byKey[key]; exists {
		return r
	}
	r := NewResolver(s.provider, s.timeout)
	s.byKey[key] = r
	return r
}

// Drop discards a session's resolver, e.g. when the owning session ends.
func (s *Sessions) Drop(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.byKey, key)
}
