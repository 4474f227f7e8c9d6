package search

import (
	"strings"

	"github.com/on-the-ground/tally/record"
)

// Linear returns the first record whose ID equals id.
//
// Time: O(n). Space: O(1).
func Linear(records []record.Record, id int) Result {
	for i, r := range records {
		if r.ID() == id {
			return found(r, i+1)
		}
	}
	return notFound(len(records))
}

// ByCategory returns the records whose category matches category, ignoring
// case, in their original order.
func ByCategory(records []record.Record, category string) []record.Record {
	var out []record.Record
	for _, r := range records {
		if strings.EqualFold(r.Category(), category) {
			out = append(out, r)
		}
	}
	return out
}

// LinearByName returns the first record whose name matches name, ignoring
// case.
func LinearByName(records []record.Record, name string) Result {
	for i, r := range records {
		if record.CompareNames(r.Name(), name) == 0 {
			return found(r, i+1)
		}
	}
	return notFound(len(records))
}
