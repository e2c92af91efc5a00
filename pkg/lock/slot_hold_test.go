package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHolderExclusive(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHolder()

	require.NoError(t, h.Acquire(ctx, "slot-1", "a", time.Minute))
	assert.ErrorIs(t, h.Acquire(ctx, "slot-1", "b", time.Minute), ErrHeld)

	// a stale owner cannot release
	require.NoError(t, h.Release(ctx, "slot-1", "b"))
	assert.ErrorIs(t, h.Acquire(ctx, "slot-1", "b", time.Minute), ErrHeld)

	require.NoError(t, h.Release(ctx, "slot-1", "a"))
	assert.NoError(t, h.Acquire(ctx, "slot-1", "b", time.Minute))

	require.NoError(t, h.ForceRelease(ctx, "slot-1"))
	assert.NoError(t, h.Acquire(ctx, "slot-1", "c", time.Minute))
}

func TestMemoryHolderIsHeld(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHolder()

	held, err := h.IsHeld(ctx, "slot-4")
	require.NoError(t, err)
	assert.False(t, held)

	require.NoError(t, h.Acquire(ctx, "slot-4", "a", time.Minute))
	held, err = h.IsHeld(ctx, "slot-4")
	require.NoError(t, err)
	assert.True(t, held)

	require.NoError(t, h.Release(ctx, "slot-4", "a"))
	held, err = h.IsHeld(ctx, "slot-4")
	require.NoError(t, err)
	assert.False(t, held)
}

func TestMemoryHolderExpires(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHolder()

	require.NoError(t, h.Acquire(ctx, "slot-2", "a", 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)
	assert.NoError(t, h.Acquire(ctx, "slot-2", "b", time.Minute))
}

func TestMemoryHolderConcurrentAcquire(t *testing.T) {
	ctx := context.Background()
	h := NewMemoryHolder()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h.Acquire(ctx, "slot-3", "owner", time.Minute) == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins)
}

func TestNewHolderWithoutRedis(t *testing.T) {
	h, err := NewHolder(context.Background(), nil)
	assert.Error(t, err)
	assert.IsType(t, &MemoryHolder{}, h)
}
