package session

import (
	"context"
	"sync"
)

// MemoryStore keeps session records in process memory. The mutex guards
// only the map structure itself; it does not serialize a handler's
// read-modify-write cycle.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

func (s *MemoryStore) Get(_ context.Context, token string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.recs[token]; ok {
		return copyRecord(rec), nil
	}
	return Record{}, nil
}

func (s *MemoryStore) Put(_ context.Context, token string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[token] = copyRecord(rec)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, token)
	return nil
}
