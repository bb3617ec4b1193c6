package bot

import (
	"context"
	"sync"
)

// Store owns session state. The state machine never touches a backing map
// directly; swapping in a locked, shared or persisted backend is a
// constructor-level decision.
type Store interface {
	Get(ctx context.Context, key string) (*Session, bool, error)
	Put(ctx context.Context, sess *Session) error
	Reset(ctx context.Context, key string) (*Session, error)
}

// MemoryStore is the default process-local backend. Sessions are never
// expired or destroyed; stale-session garbage collection is a known
// limitation of the in-memory deployment.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[key]
	return sess, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, sess *Session) error {
	sess.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Key] = sess
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) (*Session, error) {
	fresh := NewSession(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = fresh
	return fresh, nil
}
