package forecast_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/tally/forecast"
	"github.com/on-the-ground/tally/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrow(t *testing.T) {
	assert.InDelta(t, 105.0, forecast.Grow(100, 5), 1e-9)
	assert.InDelta(t, 95.0, forecast.Grow(100, -5), 1e-9)
	assert.Equal(t, 100.0, forecast.Grow(100, 0))
}

func TestEvaluate_ConcreteScenario(t *testing.T) {
	want := 10000 * math.Pow(1.05, 10)
	assert.InDelta(t, 16288.95, forecast.Evaluate(10000, 5, 10), 0.01)
	assert.InEpsilon(t, want, forecast.Evaluate(10000, 5, 10), 1e-12)
}

func TestEvaluate_NonPositiveSteps(t *testing.T) {
	assert.Equal(t, 123.0, forecast.Evaluate(123, 5, 0))
	assert.Equal(t, 123.0, forecast.Evaluate(123, 5, -3))
	assert.Equal(t, 123.0, forecast.EvaluateMemoized(123, 5, -3, memo.NewUnbounded()))
}

func TestEvaluateMemoized_CacheGrowth(t *testing.T) {
	cache := memo.NewUnbounded()

	got := forecast.EvaluateMemoized(10000, 5, 10, cache)
	assert.Equal(t, forecast.Evaluate(10000, 5, 10), got)
	assert.Equal(t, 11, cache.Size(), "steps+1 new entries on first call")

	again := forecast.EvaluateMemoized(10000, 5, 10, cache)
	assert.Equal(t, got, again)
	assert.Equal(t, 11, cache.Size(), "identical repeat adds nothing")

	// a suffix of the chain is already resolved
	hitsBefore := cache.Stats().Hits
	suffix := forecast.EvaluateMemoized(forecast.Grow(10000, 5), 5, 9, cache)
	assert.Equal(t, got, suffix)
	assert.Equal(t, 11, cache.Size())
	assert.Equal(t, hitsBefore+1, cache.Stats().Hits)

	cache.Clear()
	assert.Zero(t, cache.Size())
}

func TestEvaluateMemoized_NilCache(t *testing.T) {
	assert.Equal(t, forecast.Evaluate(500, 3, 4), forecast.EvaluateMemoized(500, 3, 4, nil))
}

func TestEvaluateMemoized_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 200; i++ {
		value := 1 + rng.Float64()*1e5
		rate := rng.Float64()*40 - 20
		steps := rng.IntN(60)

		naive := forecast.Evaluate(value, rate, steps)
		memoized := forecast.EvaluateMemoized(value, rate, steps, memo.NewUnbounded())
		assert.InEpsilonf(t, naive, memoized, 1e-6, "value=%v rate=%v steps=%d", value, rate, steps)
	}
}

func TestEvaluateMemoized_SizeNonDecreasing(t *testing.T) {
	cache := memo.NewUnbounded()
	prev := 0
	for steps := 0; steps < 30; steps++ {
		forecast.EvaluateMemoized(2500, 4.5, steps%7, cache)
		forecast.EvaluateMemoized(float64(steps)*10, 1.5, steps, cache)
		size := cache.Size()
		require.GreaterOrEqual(t, size, prev)
		prev = size
	}
}

func TestEvaluateMemoized_BoundedCacheStaysCorrect(t *testing.T) {
	for _, policy := range []memo.Policy{memo.LRU, memo.Generational} {
		cache, err := memo.New(memo.Options{Policy: policy, Capacity: 4, Scale: memo.DefaultScale})
		require.NoError(t, err)

		for steps := 0; steps < 20; steps++ {
			assert.InEpsilon(t, forecast.Evaluate(1000, 2, steps), forecast.EvaluateMemoized(1000, 2, steps, cache), 1e-9)
		}
		assert.LessOrEqual(t, cache.Size(), 8, policy.String())
		assert.NotZero(t, cache.Stats().Evictions, policy.String())
	}
}

func TestVariableRates(t *testing.T) {
	rates := []float64{5.0, 6.0, 4.5, 7.2, 3.8}

	want := 10000.0
	for _, r := range rates {
		want *= 1 + r/100
	}
	got := forecast.VariableRates(10000, rates)
	assert.Equal(t, want, got)
	assert.Equal(t, got, forecast.VariableRates(10000, rates), "deterministic")

	assert.Equal(t, 10000.0, forecast.VariableRates(10000, nil))
	assert.Equal(t, 10000.0, forecast.VariableRates(10000, []float64{}))
}

func TestPeriodsToReach(t *testing.T) {
	for _, rate := range []float64{-5, 0, 5} {
		p, ok := forecast.PeriodsToReach(100, 100, rate, 0)
		assert.True(t, ok)
		assert.Zero(t, p)
	}

	_, ok := forecast.PeriodsToReach(100, 200, 0, 0)
	assert.False(t, ok, "zero rate never closes the gap")

	_, ok = forecast.PeriodsToReach(100, 200, -2, 0)
	assert.False(t, ok)

	_, ok = forecast.PeriodsToReach(0, 200, 5, 0)
	assert.False(t, ok, "zero value never grows")

	p, ok := forecast.PeriodsToReach(100, 200, 5, 0)
	require.True(t, ok)
	assert.Equal(t, 15, p)

	p, ok = forecast.PeriodsToReach(100, 200, 5, 3)
	require.True(t, ok)
	assert.Equal(t, 18, p, "counting continues from start")

	p, ok = forecast.PeriodsToReach(300, 200, -50, 2)
	require.True(t, ok)
	assert.Equal(t, 2, p)
}

func TestExpectedValue_LatticeCollapses(t *testing.T) {
	const steps = 8
	want := 1000 * math.Pow(1+(10.0-5.0)/200, steps)

	naive := forecast.ExpectedValue(1000, 10, -5, steps)
	assert.InEpsilon(t, want, naive, 1e-9)

	cache := memo.NewUnbounded()
	memoized := forecast.ExpectedValueMemoized(1000, 10, -5, steps, cache)
	assert.InEpsilon(t, naive, memoized, 1e-6)

	naiveCalls := 1<<(steps+1) - 1
	assert.Less(t, cache.Size(), naiveCalls)
	assert.LessOrEqual(t, cache.Size(), (steps+1)*(steps+2))

	// lattice and chain keys share a cache without colliding
	chain := forecast.EvaluateMemoized(1000, 10, steps, cache)
	assert.InEpsilon(t, forecast.Evaluate(1000, 10, steps), chain, 1e-12)

	assert.Equal(t, forecast.ExpectedValue(7, 1, 2, 0), forecast.ExpectedValueMemoized(7, 1, 2, 0, nil))
}

func sampleHistory(t *testing.T) []forecast.Observation {
	t.Helper()
	raw := []struct {
		date  string
		value float64
	}{
		{"2023-01-01", 10000.0},
		{"2023-02-01", 10500.0},
		{"2023-03-01", 10972.5},
		{"2023-04-01", 11652.8},
		{"2023-05-01", 12095.6},
		{"2023-06-01", 12760.9},
	}
	out := make([]forecast.Observation, len(raw))
	for i, r := range raw {
		o, err := forecast.ParseObservation(r.date, r.value)
		require.NoError(t, err)
		out[i] = o
	}
	return out
}

func TestAverageGrowthRate(t *testing.T) {
	history := sampleHistory(t)
	want := 0.0
	for i := 1; i < len(history); i++ {
		want += (history[i].Value - history[i-1].Value) / history[i-1].Value * 100
	}
	want /= float64(len(history) - 1)
	assert.InDelta(t, want, forecast.AverageGrowthRate(history), 1e-12)

	skipped := []forecast.Observation{{Value: 0}, {Value: 10}, {Value: 11}}
	assert.InDelta(t, 10.0, forecast.AverageGrowthRate(skipped), 1e-9)

	assert.Zero(t, forecast.AverageGrowthRate([]forecast.Observation{{Value: -1}, {Value: 5}}))
}

func TestFromHistory(t *testing.T) {
	history := sampleHistory(t)
	cache := memo.NewUnbounded()

	got, err := forecast.FromHistory(history, 6, cache)
	require.NoError(t, err)
	require.Len(t, got, 6)

	rate := forecast.AverageGrowthRate(history)
	for i, v := range got {
		assert.InEpsilon(t, forecast.Evaluate(12760.9, rate, i+1), v, 1e-9)
	}
	assert.Greater(t, got[5], got[0])
	assert.NotZero(t, cache.Size())

	empty, err := forecast.FromHistory(history, 0, cache)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFromHistory_InvalidInput(t *testing.T) {
	_, err := forecast.FromHistory(nil, 3, nil)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)

	_, err = forecast.FromHistory([]forecast.Observation{{Value: 1}}, 3, nil)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)

	history := sampleHistory(t)
	history[2], history[3] = history[3], history[2]
	_, err = forecast.FromHistory(history, 3, nil)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)

	_, err = forecast.ParseObservation("first of june", 1)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)
}

func TestFromHistory_DateOrder(t *testing.T) {
	jan, err := forecast.ParseObservation("2023-01-01", 100)
	require.NoError(t, err)
	feb, err := forecast.ParseObservation("2023-02-01", 110)
	require.NoError(t, err)
	sameDay := jan
	sameDay.Value = 105

	_, err = forecast.FromHistory([]forecast.Observation{jan, sameDay, feb}, 2, nil)
	assert.NoError(t, err, "equal dates are in order")

	_, err = forecast.FromHistory([]forecast.Observation{feb, jan}, 2, nil)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)

	_, err = forecast.Schedule([]forecast.Observation{jan, feb, jan}, 2, nil)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)
}

func TestObservation_Next(t *testing.T) {
	o, err := forecast.ParseObservation("2023-02-01", 10500)
	require.NoError(t, err)
	assert.Equal(t, 10500.0, o.Next(), "no recorded rate")

	o.Rate = 4.5
	assert.InDelta(t, 10972.5, o.Next(), 1e-9)
}

func TestSchedule(t *testing.T) {
	history := sampleHistory(t)

	points, err := forecast.Schedule(history, 3, memo.NewUnbounded())
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, 1, points[0].Period)
	assert.Equal(t, date.New(2023, time.July, 1), points[0].Date)
	assert.Equal(t, date.New(2023, time.September, 1), points[2].Date)
	assert.InDelta(t, points[0].Value-12760.9, points[0].Growth, 1e-9)
	assert.InDelta(t, points[2].Value-points[1].Value, points[2].Growth, 1e-9)

	_, err = forecast.Schedule(history[:1], 3, nil)
	assert.ErrorIs(t, err, forecast.ErrInvalidInput)
}
