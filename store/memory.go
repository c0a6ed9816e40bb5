package store

import (
	"context"
	"sync"

	"github.com/wealthnest/client-go/models"
)

// MemoryStore keeps the token pair in process memory. It is the store of
// choice for tests and for callers that do not want sessions to survive
// a restart.
type MemoryStore struct {
	mu    sync.Mutex
	token models.Token
	saved bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return models.Token{}, ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) Save(_ context.Context, token models.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.saved = true
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = models.Token{}
	s.saved = false
	return nil
}
