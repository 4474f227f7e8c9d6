//go:build tallydebug

package search

import (
	"fmt"

	"github.com/on-the-ground/tally/record"
)

func assertSorted(records []record.Record, compare record.CompareFunc) {
	for i := 1; i < len(records); i++ {
		if compare(records[i-1], records[i]) > 0 {
			panic(fmt.Sprintf("search: input not sorted at index %d (%v > %v)", i, records[i-1], records[i]))
		}
	}
}
