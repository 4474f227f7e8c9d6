package search

import "github.com/on-the-ground/tally/record"

// FindID looks id up in c. A collection ordered ByID is searched by halving;
// any other ordering falls back to a linear scan.
func FindID(c *record.Collection, id int) Result {
	if c.Ordering() == record.ByID {
		return BinaryByID(c.View(), id)
	}
	return Linear(c.View(), id)
}

// FindName looks name up in c, ignoring case. A collection ordered ByName is
// searched by halving; any other ordering falls back to a linear scan.
func FindName(c *record.Collection, name string) Result {
	if c.Ordering() == record.ByName {
		return BinaryByName(c.View(), name)
	}
	return LinearByName(c.View(), name)
}
