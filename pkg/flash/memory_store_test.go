package flash_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashkit/pkg/flash"
)

func TestMemoryStore_FlashVisibleNextCycleOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := flash.NewMemoryStore()

	require.NoError(t, store.Flash(ctx, "notifications_default", "payload"))

	// Not visible within the cycle it was flashed in.
	_, err := store.Get(ctx, "notifications_default")
	require.ErrorIs(t, err, flash.ErrNoFlashData)

	store.Rotate()

	value, err := store.Get(ctx, "notifications_default")
	require.NoError(t, err)
	assert.Equal(t, "payload", value)
}

func TestMemoryStore_GetIsReadOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := flash.NewMemoryStore()

	require.NoError(t, store.Flash(ctx, "k", "v"))
	store.Rotate()

	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, flash.ErrNoFlashData)
}

func TestMemoryStore_FlashOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := flash.NewMemoryStore()

	require.NoError(t, store.Flash(ctx, "k", "old"))
	require.NoError(t, store.Flash(ctx, "k", "new"))
	store.Rotate()

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestMemoryStore_RotateDropsUnread(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := flash.NewMemoryStore()

	require.NoError(t, store.Flash(ctx, "k", "v"))
	store.Rotate()
	// Nobody read it this cycle; the next rotation drops it.
	store.Rotate()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, flash.ErrNoFlashData)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := flash.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Flash(ctx, "shared", "v")
			_, _ = store.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	store.Rotate()

	value, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
