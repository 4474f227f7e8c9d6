package desk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/on-the-ground/tally/forecast"
	"github.com/on-the-ground/tally/internal/partition"
	"github.com/on-the-ground/tally/memo"
)

// Desk is a pool of forecasting workers with worker-confined caches.
type Desk struct {
	queue  *partition.Queue[job]
	caches []*memo.Cache
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger

	closed    atomic.Bool
	closeOnce sync.Once
}

// New starts a Desk. The desk stops when ctx is done or Close is called.
// A nil logger disables logging.
func New(ctx context.Context, opts Options, logger *zap.Logger) (*Desk, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	caches := make([]*memo.Cache, opts.Workers)
	for i := range caches {
		cacheOpts := opts.Cache
		cacheOpts.Logger = logger.With(zap.Int("worker", i))
		c, err := memo.New(cacheOpts)
		if err != nil {
			return nil, fmt.Errorf("desk: worker %d cache: %w", i, err)
		}
		caches[i] = c
	}

	ctx, cancel := context.WithCancel(ctx)
	d := &Desk{
		caches: caches,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
	d.queue = partition.New[job](ctx, opts.Workers, opts.BufferSize, d.handle)
	return d, nil
}

func (d *Desk) handle(_ context.Context, worker int, j job) {
	cache := d.caches[worker]

	switch j.kind {
	case jobClear:
		cache.Clear()
		j.reply <- Response{CacheSize: cache.Size()}
	default:
		v := forecast.EvaluateMemoized(j.req.Value, j.req.Rate, j.req.Steps, cache)
		resp := Response{
			ID:        j.req.ID,
			Series:    j.req.Series,
			Value:     v,
			CacheSize: cache.Size(),
		}
		d.logger.Debug("forecast served",
			zap.Stringer("id", j.req.ID),
			zap.String("series", j.req.Series),
			zap.Int("worker", worker),
			zap.Int("steps", j.req.Steps),
			zap.Int("cache_size", resp.CacheSize),
		)
		j.reply <- resp
	}
}

// Submit forecasts req on the worker owning req.Series and waits for the
// answer. It returns ctx.Err() if ctx ends first and ErrClosed if the desk
// is or becomes closed.
func (d *Desk) Submit(ctx context.Context, req Request) (Response, error) {
	if d.closed.Load() {
		return Response{}, ErrClosed
	}

	reply := make(chan Response, 1)
	if err := d.queue.Send(ctx, job{kind: jobForecast, req: req, reply: reply}); err != nil {
		return Response{}, d.translate(err)
	}
	return d.await(ctx, reply)
}

// Clear empties every worker cache. Each worker clears its own cache between
// requests, so no clear interleaves with an evaluation.
func (d *Desk) Clear(ctx context.Context) error {
	if d.closed.Load() {
		return ErrClosed
	}

	replies := make([]chan Response, d.queue.Len())
	err := d.queue.Broadcast(ctx, func(i int) job {
		replies[i] = make(chan Response, 1)
		return job{kind: jobClear, reply: replies[i]}
	})
	if err != nil {
		return d.translate(err)
	}
	for _, reply := range replies {
		if _, err := d.await(ctx, reply); err != nil {
			return err
		}
	}
	d.logger.Debug("desk caches cleared", zap.Int("workers", len(replies)))
	return nil
}

// CacheSize sums the entries held across all worker caches.
func (d *Desk) CacheSize() int {
	total := 0
	for _, c := range d.caches {
		total += c.Size()
	}
	return total
}

// Close stops the workers and waits for them to exit. It is safe to call
// more than once.
func (d *Desk) Close() {
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		d.cancel()
		d.queue.Wait()
		d.logger.Info("desk closed", zap.Int("workers", d.queue.Len()), zap.Int("cache_size", d.CacheSize()))
	})
}

func (d *Desk) translate(err error) error {
	if errors.Is(err, partition.ErrStopped) {
		return ErrClosed
	}
	return err
}

func (d *Desk) await(ctx context.Context, reply <-chan Response) (Response, error) {
	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-d.ctx.Done():
		return Response{}, ErrClosed
	}
}
