package forecast

import "github.com/on-the-ground/tally/memo"

// Grow applies the growth transform once.
func Grow(value, rate float64) float64 {
	return value * (1 + rate/100)
}

// Evaluate returns value after steps applications of Grow. steps <= 0
// returns value unchanged.
func Evaluate(value, rate float64, steps int) float64 {
	if steps <= 0 {
		return value
	}
	return Evaluate(Grow(value, rate), rate, steps-1)
}

// EvaluateMemoized computes the same result as Evaluate, consulting cache
// before every transition and storing the final result of each visited
// state. The whole chain runs as one critical section of cache.
// A nil cache evaluates without memoization.
func EvaluateMemoized(value, rate float64, steps int, cache *memo.Cache) float64 {
	if cache == nil {
		return Evaluate(value, rate, steps)
	}
	var result float64
	cache.Do(func(tx memo.Tx) {
		result = evaluateChain(cache, tx, value, rate, steps)
	})
	return result
}

func evaluateChain(cache *memo.Cache, tx memo.Tx, value, rate float64, steps int) float64 {
	key := cache.Key(memo.KindChain, value, rate, 0, steps)
	if v, ok := tx.Load(key); ok {
		return v
	}
	if steps <= 0 {
		tx.Store(key, value)
		return value
	}
	result := evaluateChain(cache, tx, Grow(value, rate), rate, steps-1)
	tx.Store(key, result)
	return result
}

// VariableRates applies each rate in order and returns the final value.
// An empty rates slice returns value unchanged.
func VariableRates(value float64, rates []float64) float64 {
	return variableRates(value, rates, 0)
}

func variableRates(value float64, rates []float64, period int) float64 {
	if period >= len(rates) {
		return value
	}
	return variableRates(Grow(value, rates[period]), rates, period+1)
}

// PeriodsToReach returns the first period, counting from start, at which
// value compounded by rate is >= target. ok is false when the target is
// unreachable: a non-positive rate (or a non-positive value) can never close
// a positive gap.
func PeriodsToReach(value, target, rate float64, start int) (period int, ok bool) {
	if value >= target {
		return start, true
	}
	if rate <= 0 || value <= 0 {
		return 0, false
	}
	return PeriodsToReach(Grow(value, rate), target, rate, start+1)
}
