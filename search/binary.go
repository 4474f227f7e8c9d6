package search

import (
	"cmp"
	"math/bits"

	"github.com/on-the-ground/tally/record"
)

// BinaryByID looks id up in records sorted by ID ascending.
//
// Time: O(log n). Space: O(1).
func BinaryByID(sorted []record.Record, id int) Result {
	assertSorted(sorted, record.CompareID)
	return halve(sorted, func(r record.Record) int {
		return cmp.Compare(r.ID(), id)
	})
}

// BinaryByName looks name up, case-insensitively, in records sorted with
// record.CompareName.
//
// Time: O(log n) comparisons, each O(len(name)).
func BinaryByName(sortedByName []record.Record, name string) Result {
	assertSorted(sortedByName, record.CompareName)
	return halve(sortedByName, func(r record.Record) int {
		return record.CompareNames(r.Name(), name)
	})
}

// halve runs the inclusive-bounds halving loop. probe reports how the element
// at mid compares with the target: <0 means the target lies to the right.
func halve(sorted []record.Record, probe func(record.Record) int) Result {
	low, high := 0, len(sorted)-1
	comparisons := 0

	for low <= high {
		mid := low + (high-low)/2
		comparisons++

		switch c := probe(sorted[mid]); {
		case c == 0:
			return found(sorted[mid], comparisons)
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return notFound(comparisons)
}

// MaxComparisons returns ceil(log2(n+1)), the most probes a binary search
// over n elements can perform.
func MaxComparisons(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
