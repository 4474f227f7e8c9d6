package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// store is the policy-specific table behind a Cache. Implementations are not
// safe for concurrent use on their own; Cache serializes access.
type store interface {
	load(k Key) (float64, bool)
	// save inserts or replaces k and returns how many entries it evicted.
	save(k Key, v float64) int
	len() int
	purge()
}

// --- unbounded ---

type mapStore map[Key]float64

func (m mapStore) load(k Key) (float64, bool) {
	v, ok := m[k]
	return v, ok
}

func (m mapStore) save(k Key, v float64) int {
	m[k] = v
	return 0
}

func (m mapStore) len() int { return len(m) }

func (m mapStore) purge() { clear(m) }

// --- least recently used ---

type lruStore struct {
	table *lru.Cache
}

func newLRUStore(capacity int) (lruStore, error) {
	table, err := lru.New(capacity)
	if err != nil {
		return lruStore{}, fmt.Errorf("memo: build lru table: %w", err)
	}
	return lruStore{table: table}, nil
}

func (s lruStore) load(k Key) (float64, bool) {
	v, ok := s.table.Get(k)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (s lruStore) save(k Key, v float64) int {
	if evicted := s.table.Add(k, v); evicted {
		return 1
	}
	return 0
}

func (s lruStore) len() int { return s.table.Len() }

func (s lruStore) purge() { s.table.Purge() }

// --- two generations ---

// generationalStore writes into the head generation and reads head first,
// then tail. Once head holds maxSize entries the tail is dropped and head
// becomes the new tail.
type generationalStore struct {
	gens    [2]map[Key]float64
	headIdx int
	maxSize int
}

func newGenerationalStore(maxSize int) *generationalStore {
	return &generationalStore{
		gens:    [2]map[Key]float64{{}, {}},
		maxSize: maxSize,
	}
}

func (s *generationalStore) load(k Key) (float64, bool) {
	if v, ok := s.gens[s.headIdx][k]; ok {
		return v, true
	}
	v, ok := s.gens[1-s.headIdx][k]
	return v, ok
}

func (s *generationalStore) save(k Key, v float64) int {
	head := s.gens[s.headIdx]
	if _, ok := head[k]; ok {
		head[k] = v
		return 0
	}
	// keep each key in at most one generation
	delete(s.gens[1-s.headIdx], k)

	evicted := 0
	if len(head) >= s.maxSize {
		tailIdx := 1 - s.headIdx
		evicted = len(s.gens[tailIdx])
		s.gens[tailIdx] = map[Key]float64{}
		s.headIdx = tailIdx
		head = s.gens[s.headIdx]
	}
	head[k] = v
	return evicted
}

func (s *generationalStore) len() int {
	return len(s.gens[0]) + len(s.gens[1])
}

func (s *generationalStore) purge() {
	s.gens = [2]map[Key]float64{{}, {}}
	s.headIdx = 0
}
