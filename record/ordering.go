package record

import (
	"cmp"
	"strings"
)

// Ordering names the key a collection is sorted by.
type Ordering int

const (
	// ByID orders by identifier ascending.
	ByID Ordering = iota
	// ByName orders by name ascending, ignoring case.
	ByName
)

func (o Ordering) String() string {
	switch o {
	case ByID:
		return "id"
	case ByName:
		return "name"
	default:
		return "unknown"
	}
}

// CompareFunc is a three-way comparator over records.
type CompareFunc func(a, b Record) int

func CompareID(a, b Record) int {
	return cmp.Compare(a.id, b.id)
}

func CompareName(a, b Record) int {
	return CompareNames(a.name, b.name)
}

// CompareNames is the case-insensitive three-way ordering used for names.
func CompareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Comparator returns the comparator for o. Unknown orderings fall back to ByID.
func (o Ordering) Comparator() CompareFunc {
	if o == ByName {
		return CompareName
	}
	return CompareID
}
