// Package memo provides the cache handle used by memoized evaluators.
//
// There is no process-wide cache. A *Cache is created by the caller and passed
// explicitly to every memoized call, so its sharing and lifetime are the
// caller's decision.
//
// Keys:
//
// Real-valued inputs are quantized to fixed-point integers: each component is
// multiplied by Options.Scale (default 1e6, one micro-unit) and rounded half
// away from zero. Two consequences are part of the contract:
//
//   - distinct states closer than one granule (1/Scale) share a key and
//     therefore a result;
//   - states that are mathematically equal but drift apart by more than one
//     granule in floating point miss each other.
//
// The granule is absolute, not relative: every magnitude below 0.5/Scale
// rounds to zero, so tiny values can alias each other. Raise Scale when
// evaluating values that small.
//
// Components whose scaled magnitude does not fit in an int64 (and NaN/Inf)
// are keyed by their exact IEEE-754 bits instead, flagged with Key.Exact so
// the two encodings never collide.
//
// Capacity:
//
//   - Unbounded (default) never evicts. Size is non-decreasing between
//     clears and memory growth is the caller's responsibility.
//   - LRU keeps at most Capacity entries, evicting the least recently used.
//   - Generational keeps two generations of up to Capacity entries each and
//     drops the older one whole when the newer fills up.
//
// Concurrency:
//
// Every Cache carries one mutex. Do runs a whole lookup-or-insert chain under
// it, and Clear takes the same lock, so a clear can never interleave with an
// in-flight insert. Do not call methods of the same Cache from inside Do.
package memo
