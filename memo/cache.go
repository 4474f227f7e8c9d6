package memo

import (
	"sync"

	"go.uber.org/zap"
)

// Stats are cumulative counters since the Cache was built. Clear does not
// reset them.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Stores    uint64
	Evictions uint64
}

// Tx is the view of a Cache handed to Do. It is only valid inside Do.
type Tx interface {
	Load(k Key) (float64, bool)
	Store(k Key, v float64)
}

// Cache is an explicitly owned memo table for pure computations.
type Cache struct {
	mu     sync.Mutex
	table  store
	policy Policy
	scale  float64
	logger *zap.Logger
	stats  Stats
}

// New builds a Cache from opts.
func New(opts Options) (*Cache, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var table store
	switch opts.Policy {
	case LRU:
		s, err := newLRUStore(opts.Capacity)
		if err != nil {
			return nil, err
		}
		table = s
	case Generational:
		table = newGenerationalStore(opts.Capacity)
	default:
		table = mapStore{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		table:  table,
		policy: opts.Policy,
		scale:  opts.Scale,
		logger: logger,
	}, nil
}

// NewUnbounded returns a Cache built from DefaultOptions.
func NewUnbounded() *Cache {
	c, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return c
}

// Key quantizes an evaluation state into a structured key. Pass 0 for down
// when kind is KindChain.
func (c *Cache) Key(kind Kind, value, rate, down float64, steps int) Key {
	return makeKey(kind, value, rate, down, steps, c.scale)
}

// Do runs fn with exclusive access to the cache.
func (c *Cache) Do(fn func(Tx)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(tx{c: c})
}

// Size returns the number of live entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.len()
}

// Clear drops every entry. Clearing an empty cache is a no-op.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.table.len()
	if n == 0 {
		return
	}
	c.table.purge()
	c.logger.Debug("memo cache cleared", zap.Int("entries", n), zap.Stringer("policy", c.policy))
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Cache) Policy() Policy { return c.policy }

func (c *Cache) Scale() float64 { return c.scale }

type tx struct {
	c *Cache
}

func (t tx) Load(k Key) (float64, bool) {
	v, ok := t.c.table.load(k)
	if ok {
		t.c.stats.Hits++
	} else {
		t.c.stats.Misses++
	}
	return v, ok
}

func (t tx) Store(k Key, v float64) {
	t.c.stats.Stores++
	if evicted := t.c.table.save(k, v); evicted > 0 {
		t.c.stats.Evictions += uint64(evicted)
		t.c.logger.Debug("memo cache evicted",
			zap.Int("entries", evicted),
			zap.Stringer("policy", t.c.policy),
		)
	}
}
