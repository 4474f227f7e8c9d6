package search

import "github.com/on-the-ground/tally/record"

// Result is the outcome of a single lookup.
//
// Fields:
//   - Record: the matching record; zero value when Found is false.
//   - Found: false means "not found", a normal outcome.
//   - Comparisons: key comparisons performed (one per probed element).
type Result struct {
	Record      record.Record
	Found       bool
	Comparisons int
}

func found(r record.Record, comparisons int) Result {
	return Result{Record: r, Found: true, Comparisons: comparisons}
}

func notFound(comparisons int) Result {
	return Result{Comparisons: comparisons}
}
