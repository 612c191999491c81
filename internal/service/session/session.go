package session

import (
	"sync"
	"time"

	"github.com/olupoagric/storefront/internal/view"
)

type entry struct {
	state    view.State
	lastSeen time.Time
}

// Manager holds the view state of every visitor.
type Manager struct {
	sessions map[string]entry
	mu       sync.RWMutex
	now      func() time.Time
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Get retrieves the current state for a visitor, starting a fresh one on the
// current month when none exists yet. It never creates an entry.
func (m *Manager) Get(visitorID string) view.State {
	m.mu.RLock()
	e, exists := m.sessions[visitorID]
	m.mu.RUnlock()
	if exists {
		return e.state
	}
	return view.Initial(int(m.now().Month()))
}

// Dispatch applies an action to the visitor's state and returns the result.
// Read, reduce and store happen under one lock so concurrent dispatches for
// the same visitor never lose an update.
func (m *Manager) Dispatch(visitorID string, action view.Action) view.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, exists := m.sessions[visitorID]
	if !exists {
		e.state = view.Initial(int(now.Month()))
	}
	e.state = view.Reduce(e.state, action)
	e.lastSeen = now
	m.sessions[visitorID] = e
	return e.state
}

// Sweep removes sessions not dispatched to for longer than maxIdle and
// returns how many were removed.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxIdle)
	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Clear removes a visitor's session.
func (m *Manager) Clear(visitorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, visitorID)
}

// Len reports the number of tracked visitors.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
