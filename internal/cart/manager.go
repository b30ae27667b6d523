package cart

import (
	"sync"
	"time"
)

const defaultIdleTTL = 30 * time.Minute

// Manager hands out one Synchronizer per session so a browser's cart cache
// survives across requests. Idle entries are evicted lazily on access;
// losing one only costs a re-fetch from the API.
type Manager struct {
	mu      sync.Mutex
	api     API
	idleTTL time.Duration
	entries map[string]*managedEntry

	now func() time.Time // test hook
}

type managedEntry struct {
	sync     *Synchronizer
	lastSeen time.Time
}

// NewManager builds a manager around the given cart API.
func NewManager(api API, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &Manager{
		api:     api,
		idleTTL: idleTTL,
		entries: map[string]*managedEntry{},
		now:     time.Now,
	}
}

// ForSession returns the synchronizer for a session, creating it on first
// use.
func (m *Manager) ForSession(sessionID string) *Synchronizer {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	entry, ok := m.entries[sessionID]
	if !ok {
		entry = &managedEntry{sync: NewSynchronizer(m.api, sessionID)}
		m.entries[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.sync
}

// Len reports the number of cached synchronizers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Manager) sweepLocked(now time.Time) {
	for id, entry := range m.entries {
		if now.Sub(entry.lastSeen) > m.idleTTL {
			delete(m.entries, id)
		}
	}
}
