package forecast

import "github.com/on-the-ground/tally/memo"

// ExpectedValue averages an equal-odds up/down scenario tree: every step the
// value either grows by upRate or by downRate. The naive recursion makes
// 2^(steps+1)-1 calls.
func ExpectedValue(value, upRate, downRate float64, steps int) float64 {
	if steps <= 0 {
		return value
	}
	up := ExpectedValue(Grow(value, upRate), upRate, downRate, steps-1)
	down := ExpectedValue(Grow(value, downRate), upRate, downRate, steps-1)
	return (up + down) / 2
}

// ExpectedValueMemoized is ExpectedValue with each lattice state resolved
// once. Up-then-down and down-then-up reach the same quantized key, so the
// tree collapses to O(steps^2) states.
func ExpectedValueMemoized(value, upRate, downRate float64, steps int, cache *memo.Cache) float64 {
	if cache == nil {
		return ExpectedValue(value, upRate, downRate, steps)
	}
	var result float64
	cache.Do(func(tx memo.Tx) {
		result = expectedLattice(cache, tx, value, upRate, downRate, steps)
	})
	return result
}

func expectedLattice(cache *memo.Cache, tx memo.Tx, value, upRate, downRate float64, steps int) float64 {
	key := cache.Key(memo.KindLattice, value, upRate, downRate, steps)
	if v, ok := tx.Load(key); ok {
		return v
	}
	if steps <= 0 {
		tx.Store(key, value)
		return value
	}
	up := expectedLattice(cache, tx, Grow(value, upRate), upRate, downRate, steps-1)
	down := expectedLattice(cache, tx, Grow(value, downRate), upRate, downRate, steps-1)
	result := (up + down) / 2
	tx.Store(key, result)
	return result
}
