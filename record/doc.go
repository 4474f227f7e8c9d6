// Package record defines the catalog entities searched by package search.
//
// A Record is immutable after construction and is identified solely by its
// integer ID. Alternate orderings (by name, case-insensitive) are expressed
// through Ordering and the three-way comparators CompareID and CompareName.
//
// A Collection is a cloned, ordered view of records. Building one never
// reorders the caller's slice. Binary search over a Collection (or any slice)
// is only correct when the data really is sorted by the declared key; this is
// a caller precondition and is not validated at runtime.
package record
