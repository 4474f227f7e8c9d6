package record

import (
	"slices"
	"sort"
)

// Collection is a finite, ordered sequence of records plus its declared key.
// The zero value is an empty collection ordered ByID.
type Collection struct {
	data     []Record
	ordering Ordering
	compare  CompareFunc
}

// NewCollection clones records and stable-sorts the clone by ordering.
// The input slice is left untouched.
func NewCollection(records []Record, ordering Ordering) *Collection {
	data := Clone(records)
	if data == nil {
		data = []Record{}
	}
	compare := ordering.Comparator()
	slices.SortStableFunc(data, compare)
	return &Collection{data: data, ordering: ordering, compare: compare}
}

// Insert places r after any records that compare equal to it, so the
// declared order holds and insertion order breaks ties.
func (c *Collection) Insert(r Record) {
	if c.compare == nil {
		c.compare = c.ordering.Comparator()
	}
	idx := sort.Search(len(c.data), func(i int) bool {
		return c.compare(r, c.data[i]) < 0
	})

	c.data = append(c.data, r)
	copy(c.data[idx+1:], c.data[idx:])
	c.data[idx] = r
}

// Records returns a copy of the ordered records.
func (c *Collection) Records() []Record {
	return Clone(c.data)
}

// View exposes the backing slice without copying. Callers must not modify it.
func (c *Collection) View() []Record {
	return c.data
}

func (c *Collection) Len() int {
	return len(c.data)
}

func (c *Collection) Ordering() Ordering {
	return c.ordering
}
