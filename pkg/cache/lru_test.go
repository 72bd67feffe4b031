package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_Basic(t *testing.T) {
	c := NewLRUCache[string, int](2)

	_, ok := c.Get("nl")
	assert.False(t, ok)

	c.Put("nl", 1)
	c.Put("en", 2)

	v, ok := c.Get("nl")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())

	c.Put("nl", 10)
	v, _ = c.Get("nl")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRUCache_Eviction(t *testing.T) {
	c := NewLRUCache[string, int](2)

	c.Put("nl", 1)
	c.Put("en", 2)
	_, _ = c.Get("nl") // en is now least recently used
	c.Put("de", 3)

	_, ok := c.Get("en")
	assert.False(t, ok)
	_, ok = c.Get("nl")
	assert.True(t, ok)
	_, ok = c.Get("de")
	assert.True(t, ok)
}

func TestLRUCache_RemoveAndClear(t *testing.T) {
	c := NewLRUCache[string, int](3)
	c.Put("nl", 1)
	c.Put("en", 2)

	assert.True(t, c.Remove("nl"))
	assert.False(t, c.Remove("nl"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("en")
	assert.False(t, ok)
}

func TestLRUCache_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewLRUCache[string, int](0) })
	assert.Panics(t, func() { NewLRUCache[string, int](-1) })
}

func TestLRUCache_GetOrLoad(t *testing.T) {
	t.Run("loads once and caches", func(t *testing.T) {
		c := NewLRUCache[string, []string](3)
		var calls int

		load := func() ([]string, error) {
			calls++
			return []string{"restaurant", "bar"}, nil
		}

		first, err := c.GetOrLoad("nl", load)
		require.NoError(t, err)
		second, err := c.GetOrLoad("nl", load)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c := NewLRUCache[string, int](3)
		boom := errors.New("boom")

		_, err := c.GetOrLoad("nl", func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		v, err := c.GetOrLoad("nl", func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("concurrent misses share a load", func(t *testing.T) {
		c := NewLRUCache[int, int](3)
		var calls atomic.Int32
		start := make(chan struct{})

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				v, err := c.GetOrLoad(1, func() (int, error) {
					calls.Add(1)
					return 42, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, 42, v)
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		v, ok := c.Get(1)
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})
}
