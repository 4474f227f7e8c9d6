package partition_test

import (
	"context"
	"sync"
	"testing"

	"github.com/on-the-ground/tally/internal/partition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	id    int
	group string
}

func (m message) PartitionKey() string { return m.group }

func TestIndexOf(t *testing.T) {
	assert.Zero(t, partition.IndexOf("anything", 1))
	for _, key := range []string{"a", "b", "series-42", ""} {
		idx := partition.IndexOf(key, 7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
		assert.Equal(t, idx, partition.IndexOf(key, 7), "stable for %q", key)
	}
	assert.Panics(t, func() { partition.IndexOf("a", 0) })
}

func TestQueue_SameKeySameWorkerInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu   sync.Mutex
		seen = map[string][]int{}
		by   = map[string]map[int]bool{}
		wg   sync.WaitGroup
	)
	q := partition.New[message](ctx, 4, 8, func(_ context.Context, worker int, m message) {
		defer wg.Done()
		mu.Lock()
		defer mu.Unlock()
		seen[m.group] = append(seen[m.group], m.id)
		if by[m.group] == nil {
			by[m.group] = map[int]bool{}
		}
		by[m.group][worker] = true
	})
	require.Equal(t, 4, q.Len())

	groups := []string{"alpha", "beta", "gamma"}
	for i := 0; i < 30; i++ {
		wg.Add(1)
		require.NoError(t, q.Send(ctx, message{id: i, group: groups[i%3]}))
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for _, g := range groups {
		assert.Len(t, by[g], 1, "group %s must stay on one worker", g)
		assert.IsIncreasing(t, seen[g])
	}
}

func TestQueue_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		workers = map[int]bool{}
		wg      sync.WaitGroup
	)
	q := partition.New[message](ctx, 3, 1, func(_ context.Context, worker int, _ message) {
		defer wg.Done()
		mu.Lock()
		workers[worker] = true
		mu.Unlock()
	})

	wg.Add(3)
	require.NoError(t, q.Broadcast(ctx, func(i int) message { return message{id: i} }))
	wg.Wait()
	assert.Len(t, workers, 3)
}

func TestQueue_SendAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := partition.New[message](ctx, 2, 0, func(context.Context, int, message) {})
	cancel()
	q.Wait()

	err := q.Send(context.Background(), message{group: "x"})
	assert.ErrorIs(t, err, partition.ErrStopped)
}
