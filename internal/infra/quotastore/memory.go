package quotastore

import (
	"context"
	"sync"

	"fullplanes/internal/domain/quota"
)

// MemoryStore keeps the counter for the process lifetime only.
type MemoryStore struct {
	mu    sync.Mutex
	state *quota.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*quota.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, nil
	}
	st := *s.state
	return &st, nil
}

func (s *MemoryStore) Save(_ context.Context, state quota.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = &state
	return nil
}
