package conversation

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired entries are never returned
// and are dropped on the next access or sweep.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
	return m
}

func (m *MemoryStore) Load(_ context.Context, userID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[userID]
	if !ok {
		return State{}
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, userID)
		return State{}
	}
	return entry.state
}

func (m *MemoryStore) Save(_ context.Context, userID string, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[userID] = memoryEntry{
		state:     state,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

// Sweep removes every expired entry and returns how many were dropped.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for userID, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, userID)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries held, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// RunSweeper sweeps every interval until ctx is done.
func (m *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
