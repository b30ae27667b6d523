package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForSessionReusesSynchronizer(t *testing.T) {
	m := NewManager(newFakeStoreAPI(), time.Minute)

	a := m.ForSession("sess-1")
	b := m.ForSession("sess-1")
	other := m.ForSession("sess-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, m.Len())
}

func TestIdleEntriesAreEvicted(t *testing.T) {
	m := NewManager(newFakeStoreAPI(), time.Minute)

	base := time.Now()
	m.now = func() time.Time { return base }

	first := m.ForSession("sess-1")
	assert.Equal(t, 1, m.Len())

	// well past the idle TTL; the next access sweeps and rebuilds
	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	second := m.ForSession("sess-1")

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, m.Len())
}

func TestRecentEntriesSurviveSweep(t *testing.T) {
	m := NewManager(newFakeStoreAPI(), time.Minute)

	base := time.Now()
	m.now = func() time.Time { return base }
	first := m.ForSession("sess-1")

	m.now = func() time.Time { return base.Add(30 * time.Second) }
	assert.Same(t, first, m.ForSession("sess-1"))

	// access keeps it fresh relative to the last request, not creation
	m.now = func() time.Time { return base.Add(80 * time.Second) }
	assert.Same(t, first, m.ForSession("sess-1"))
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	m := NewManager(newFakeStoreAPI(), 0)
	assert.Equal(t, defaultIdleTTL, m.idleTTL)
}
