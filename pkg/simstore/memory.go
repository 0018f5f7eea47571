package simstore

import (
	"context"
	"sync"

	"github.com/0xNexuz/Tempocash/pkg/payment"
)

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*payment.Request
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*payment.Request)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*payment.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, req *payment.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := merge(s.records[req.ID], req)
	if err != nil {
		return err
	}
	s.records[req.ID] = merged
	return nil
}
