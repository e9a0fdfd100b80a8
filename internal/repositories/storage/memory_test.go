package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "seenBadges")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "seenBadges", "{}"))

	value, err := m.Get(ctx, "seenBadges")
	require.NoError(t, err)
	assert.Equal(t, "{}", value)

	assert.ErrorIs(t, m.Set(ctx, "", "x"), ErrEmptyKey)
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "k", "v")
			_, _ = m.Get(ctx, "k")
		}()
	}
	wg.Wait()

	value, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
