package auth

import (
	"context"
	"sync"
	"time"
)

// Storage persists the auth state of browser sessions. A session without
// stored state loads as the zero AuthState and a nil error.
type Storage interface {
	Load(ctx context.Context, sessionID string) (AuthState, error)
	Save(ctx context.Context, sessionID string, st AuthState) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStorage keeps state in process memory. It is used when Redis is
// unavailable and in tests; entries expire after ttl.
type MemoryStorage struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	state   AuthState
	expires time.Time
}

// NewMemoryStorage returns an empty store. A non-positive ttl keeps entries
// until they are cleared.
func NewMemoryStorage(ttl time.Duration) *MemoryStorage {
	return &MemoryStorage{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStorage) Load(_ context.Context, sessionID string) (AuthState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		return AuthState{}, nil
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		delete(m.entries, sessionID)
		return AuthState{}, nil
	}
	return e.state, nil
}

func (m *MemoryStorage) Save(_ context.Context, sessionID string, st AuthState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{state: st}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.entries[sessionID] = e
	return nil
}

func (m *MemoryStorage) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}

// Sweep drops expired entries and returns how many it removed. Entries of
// sessions that never come back are otherwise only dropped by Clear.
func (m *MemoryStorage) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for id, e := range m.entries {
		if !e.expires.IsZero() && now.After(e.expires) {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

// Len reports the number of stored entries, expired or not.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
