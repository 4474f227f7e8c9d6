package record

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Record is a catalog entry. Two records are equal iff their IDs match.
type Record struct {
	id          int
	name        string
	category    string
	amount      decimal.Decimal
	description string
}

func New(id int, name, category string, amount decimal.Decimal, description string) Record {
	return Record{
		id:          id,
		name:        name,
		category:    category,
		amount:      amount,
		description: description,
	}
}

// MustAmount parses a monetary literal such as "999.99" and panics on failure.
// Intended for fixtures and generators.
func MustAmount(s string) decimal.Decimal {
	return decimal.MustParse(s)
}

func (r Record) ID() int                 { return r.id }
func (r Record) Name() string            { return r.name }
func (r Record) Category() string        { return r.category }
func (r Record) Amount() decimal.Decimal { return r.amount }
func (r Record) Description() string     { return r.description }

// Equal reports whether both records carry the same identifier.
func (r Record) Equal(other Record) bool {
	return r.id == other.id
}

func (r Record) String() string {
	return fmt.Sprintf("Record{ID=%d, Name=%q, Category=%q, Amount=%s, Description=%q}",
		r.id, r.name, r.category, r.amount.String(), r.description)
}

// Clone returns a new slice holding the same records.
func Clone(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
