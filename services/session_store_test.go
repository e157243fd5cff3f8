package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	defer store.Stop()

	first := store.GetOrCreate("user-1")
	require.NotNil(t, first)
	assert.Equal(t, "user-1", first.ID)

	// Same ID returns the same session.
	assert.Same(t, first, store.GetOrCreate("user-1"))
	assert.Equal(t, 1, store.Count())

	store.Evict("user-1")
	assert.Equal(t, 0, store.Count())

	// A re-contact after eviction is simply a fresh session.
	again := store.GetOrCreate("user-1")
	assert.NotSame(t, first, again)
}

func TestSessionStore_Sweep(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	defer store.Stop()

	stale := store.GetOrCreate("stale")
	stale.LastActivity = time.Now().Add(-31 * time.Minute)
	store.GetOrCreate("fresh")

	evicted := store.Sweep()
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Count())

	// The fresh session survived.
	assert.Same(t, store.GetOrCreate("fresh"), store.GetOrCreate("fresh"))
}

func TestSessionStore_ConcurrentGetOrCreate(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)
	defer store.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.GetOrCreate("same-user")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Count())
}

func TestSessionStore_StopIsIdempotent(t *testing.T) {
	store := NewSessionStore(time.Minute)
	store.StartSweeper(time.Minute)
	store.Stop()
	store.Stop()
}
