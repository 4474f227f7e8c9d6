package search

import (
	"slices"

	"github.com/on-the-ground/tally/record"
)

// SortByID stable-sorts records in place by ID ascending.
func SortByID(records []record.Record) {
	slices.SortStableFunc(records, record.CompareID)
}

// SortByName stable-sorts records in place by name, ignoring case.
func SortByName(records []record.Record) {
	slices.SortStableFunc(records, record.CompareName)
}

// SortedByID returns a sorted clone and leaves records untouched.
func SortedByID(records []record.Record) []record.Record {
	out := record.Clone(records)
	SortByID(out)
	return out
}

// SortedByName returns a clone sorted by name and leaves records untouched.
func SortedByName(records []record.Record) []record.Record {
	out := record.Clone(records)
	SortByName(out)
	return out
}
