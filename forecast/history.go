package forecast

import (
	"fmt"
	"math"

	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/tally/memo"
)

// Observation is one historical data point. Rate is the growth rate, in
// percent, recorded alongside the value; zero when the source has none.
// AverageGrowthRate derives its rate from the values and ignores Rate.
type Observation struct {
	Date  date.Date
	Value float64
	Rate  float64
}

// Next projects one period ahead at the observation's recorded rate.
func (o Observation) Next() float64 {
	return Grow(o.Value, o.Rate)
}

// ParseObservation builds an Observation from an ISO-8601 date such as
// "2023-01-01".
func ParseObservation(isoDate string, value float64) (Observation, error) {
	d, err := date.ParseISO(isoDate)
	if err != nil {
		return Observation{}, fmt.Errorf("%w: date %q: %w", ErrInvalidInput, isoDate, err)
	}
	return Observation{Date: d, Value: value}, nil
}

// Point is one forecast period.
//
// Fields:
//   - Period: 1-based period number.
//   - Date: projected calendar date of the period.
//   - Value: forecast value.
//   - Growth: change from the previous period (or from the last
//     observation for Period 1).
type Point struct {
	Period int
	Date   date.Date
	Value  float64
	Growth float64
}

// AverageGrowthRate returns the mean percentage growth between consecutive
// observations. Pairs whose earlier value is not positive are skipped; if
// none remain the rate is 0.
func AverageGrowthRate(history []Observation) float64 {
	total := 0.0
	count := 0
	for i := 1; i < len(history); i++ {
		prev, cur := history[i-1].Value, history[i].Value
		if prev <= 0 {
			continue
		}
		total += (cur - prev) / prev * 100
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// FromHistory forecasts steps periods past the most recent observation at
// the history's average growth rate. The result holds periods 1..steps.
func FromHistory(history []Observation, steps int, cache *memo.Cache) ([]float64, error) {
	if err := validateHistory(history); err != nil {
		return nil, err
	}

	rate := AverageGrowthRate(history)
	current := history[len(history)-1].Value

	out := make([]float64, max(steps, 0))
	for i := range out {
		out[i] = EvaluateMemoized(current, rate, i+1, cache)
	}
	return out, nil
}

// Schedule is FromHistory with every value labelled by its projected date.
// Periods advance by the history's average cadence in whole months, at least
// one.
func Schedule(history []Observation, steps int, cache *memo.Cache) ([]Point, error) {
	values, err := FromHistory(history, steps, cache)
	if err != nil {
		return nil, err
	}

	last := history[len(history)-1]
	cadence := cadenceMonths(history)
	points := make([]Point, len(values))
	prev := last.Value
	for i, v := range values {
		points[i] = Point{
			Period: i + 1,
			Date:   last.Date.AddDate(0, cadence*(i+1), 0),
			Value:  v,
			Growth: v - prev,
		}
		prev = v
	}
	return points, nil
}

func validateHistory(history []Observation) error {
	if len(history) < 2 {
		return fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidInput, len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Date < history[i-1].Date {
			return fmt.Errorf("%w: observation %d (%s) precedes observation %d (%s)",
				ErrInvalidInput, i, history[i].Date, i-1, history[i-1].Date)
		}
	}
	return nil
}

func cadenceMonths(history []Observation) int {
	first, last := history[0].Date, history[len(history)-1].Date
	months := (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month())
	cadence := int(math.Round(float64(months) / float64(len(history)-1)))
	return max(cadence, 1)
}
