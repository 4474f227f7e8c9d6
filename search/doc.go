// Package search implements lookup over slices of record.Record.
//
// Two strategies are provided:
//
//   - Linear: scans in order, no precondition. Comparisons: worst n,
//     average n/2, best 1.
//   - BinaryByID / BinaryByName: iterative halving over an inclusive
//     [low, high] window. Comparisons never exceed ceil(log2(n+1)).
//   - FindID / FindName: lookup in a record.Collection, halving when the
//     collection's declared ordering matches the key, scanning otherwise.
//
// A miss is a normal outcome reported through Result.Found, never an error.
//
// Preconditions:
//
// Binary search requires its input sorted by the same key and ordering it
// compares with (SortByID / SortByName produce exactly that). Sortedness is
// not checked: doing so would cost O(n) and defeat the logarithmic bound, so
// unsorted input yields undefined results. Building with the tallydebug tag
// enables an O(n) assertion that panics on unsorted input.
//
// Duplicate identifiers are allowed but not tie-broken: the record returned is
// whichever duplicate the halving path reaches first.
package search
