// Package partition routes messages to a fixed set of worker goroutines by
// hashing their partition key, so every message with the same key is handled
// by the same worker, in submission order.
package partition

import (
	"context"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ErrStopped is returned by Send once the queue's context is done.
var ErrStopped = errors.New("partition: queue stopped")

// Partitionable is implemented by messages that carry a routing key.
type Partitionable interface {
	PartitionKey() string
}

// HandleFunc processes one message on the worker with the given index.
type HandleFunc[T any] func(ctx context.Context, worker int, msg T)

// Queue is a set of partitioned worker channels.
type Queue[T Partitionable] struct {
	chs  []chan T
	ctx  context.Context
	done sync.WaitGroup
}

// New starts numWorkers workers, each draining its own channel of bufferSize.
// Workers stop when ctx is done.
func New[T Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handle HandleFunc[T],
) *Queue[T] {
	if numWorkers <= 0 {
		panic("partition: number of workers must be positive")
	}
	q := &Queue[T]{
		chs: make([]chan T, numWorkers),
		ctx: ctx,
	}

	ready := sync.WaitGroup{}
	for i := range q.chs {
		ch := make(chan T, bufferSize)
		q.chs[i] = ch
		ready.Add(1)
		q.done.Add(1)
		go func(worker int, ch chan T) {
			defer q.done.Done()
			ready.Done()
			for {
				select {
				case msg := <-ch:
					handle(ctx, worker, msg)
				case <-ctx.Done():
					return
				}
			}
		}(i, ch)
	}
	ready.Wait()
	return q
}

// IndexOf maps key onto one of n partitions.
func IndexOf(key string, n int) int {
	switch n {
	case 0:
		panic("partition: number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(n))
	}
}

// Len returns the number of workers.
func (q *Queue[T]) Len() int {
	return len(q.chs)
}

// Send enqueues msg on its partition. It blocks while the partition buffer is
// full, and gives up when either ctx or the queue's context is done.
func (q *Queue[T]) Send(ctx context.Context, msg T) error {
	ch := q.chs[IndexOf(msg.PartitionKey(), len(q.chs))]
	select {
	case ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-q.ctx.Done():
		return ErrStopped
	}
}

// Broadcast sends build(i) straight to worker i, for every worker, bypassing
// hashing. Used for per-worker maintenance such as clearing local state.
func (q *Queue[T]) Broadcast(ctx context.Context, build func(worker int) T) error {
	for i, ch := range q.chs {
		select {
		case ch <- build(i):
		case <-ctx.Done():
			return ctx.Err()
		case <-q.ctx.Done():
			return ErrStopped
		}
	}
	return nil
}

// Wait blocks until every worker has returned.
func (q *Queue[T]) Wait() {
	q.done.Wait()
}
