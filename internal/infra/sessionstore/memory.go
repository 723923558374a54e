package sessionstore

import (
	"sync"
	"time"

	"fullplanes/internal/domain/search"
	"fullplanes/internal/pkg/clock"
)

type entry struct {
	session  search.Session
	lastSeen time.Time
}

// MemoryStore holds one search session per cookie. Idle entries expire after ttl;
// Get drops an expired entry and Put sweeps the whole map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *MemoryStore) Put(id string, session search.Session) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, k)
		}
	}
	s.entries[id] = entry{session: session, lastSeen: now}
}

func (s *MemoryStore) Get(id string) (search.Session, bool) {
	now := s.clock.Now()

	// touching lastSeen writes, so the lookup runs under the write lock too
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return search.Session{}, false
	}
	if s.expired(e, now) {
		delete(s.entries, id)
		return search.Session{}, false
	}
	e.lastSeen = now
	s.entries[id] = e
	return e.session, true
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) expired(e entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
