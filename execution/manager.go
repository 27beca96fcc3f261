package execution

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type userExecution struct {
	slot    chan struct{}
	waiters int
}

// Manager serializes work per user: at most one holder per user id at a
// time, while different users proceed independently.
type Manager struct {
	userExecutions map[string]*userExecution
	mutex          sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		userExecutions: make(map[string]*userExecution),
	}
}

// Acquire blocks until userID is free or ctx is done. The returned release
// func must be called exactly once.
func (m *Manager) Acquire(ctx context.Context, userID string) (func(), error) {
	m.mutex.Lock()
	execution, exists := m.userExecutions[userID]
	if !exists {
		execution = &userExecution{slot: make(chan struct{}, 1)}
		m.userExecutions[userID] = execution
	}
	execution.waiters++
	m.mutex.Unlock()

	select {
	case execution.slot <- struct{}{}:
	case <-ctx.Done():
		m.leave(userID, execution)
		log.Info().Str("user_id", userID).Msg("Gave up waiting for previous execution")
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-execution.slot
			m.leave(userID, execution)
		})
	}, nil
}

func (m *Manager) leave(userID string, execution *userExecution) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	execution.waiters--
	if execution.waiters == 0 && m.userExecutions[userID] == execution {
		delete(m.userExecutions, userID)
	}
}

// Active returns how many users currently hold or wait for a slot.
func (m *Manager) Active() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.userExecutions)
}
