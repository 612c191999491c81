package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olupoagric/storefront/internal/view"
)

func fixedManager() *Manager {
	m := NewManager()
	m.now = func() time.Time { return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC) }
	return m
}

func TestGetStartsOnCurrentMonth(t *testing.T) {
	m := fixedManager()
	state := m.Get("v1")
	assert.Equal(t, 10, state.Calendar.Month)
	assert.Equal(t, 0, m.Len(), "Get must not create a session")
}

func TestDispatchPersistsState(t *testing.T) {
	m := fixedManager()

	m.Dispatch("v1", view.SearchChanged{Term: "fish"})
	assert.Equal(t, "fish", m.Get("v1").Catalog.SearchTerm)
	assert.Equal(t, "", m.Get("v2").Catalog.SearchTerm)

	m.Clear("v1")
	assert.Equal(t, "", m.Get("v1").Catalog.SearchTerm)
	assert.Equal(t, 0, m.Len())
}

func TestConcurrentDispatchIssuesDistinctSequences(t *testing.T) {
	m := fixedManager()

	const n = 50
	seqs := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(month int) {
			defer wg.Done()
			state := m.Dispatch("v1", view.MonthSelected{Month: month})
			seqs <- state.Calendar.Calendar.Seq
		}(i%12 + 1)
	}
	wg.Wait()
	close(seqs)

	seen := map[uint64]bool{}
	for seq := range seqs {
		require.False(t, seen[seq], "sequence %d issued twice", seq)
		seen[seq] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, uint64(n), m.Get("v1").Calendar.Calendar.Seq)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	m := NewManager()
	m.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		m.Dispatch(fmt.Sprintf("cookieless-%d", i), view.WeatherRequested{})
	}
	now = now.Add(90 * time.Minute)
	m.Dispatch("active", view.SearchChanged{Term: "maize"})
	require.Equal(t, 101, m.Len())

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 100, m.Sweep(2*time.Hour))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "maize", m.Get("active").Catalog.SearchTerm)

	now = now.Add(3 * time.Hour)
	assert.Equal(t, 1, m.Sweep(2*time.Hour))
	assert.Equal(t, 0, m.Len())
}

func TestSweepKeepsRecentlyDispatched(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	m := NewManager()
	m.now = func() time.Time { return now }

	m.Dispatch("v1", view.SearchChanged{Term: "fish"})
	now = now.Add(90 * time.Minute)
	m.Dispatch("v1", view.CategorySelected{Category: "All"})
	now = now.Add(90 * time.Minute)

	assert.Equal(t, 0, m.Sweep(2*time.Hour))
	assert.Equal(t, "fish", m.Get("v1").Catalog.SearchTerm)
}
