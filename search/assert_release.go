//go:build !tallydebug

package search

import "github.com/on-the-ground/tally/record"

func assertSorted([]record.Record, record.CompareFunc) {}
