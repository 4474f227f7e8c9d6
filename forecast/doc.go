// Package forecast evaluates compounding sequences.
//
// The growth transform maps a value v and a percentage rate r to
// v * (1 + r/100). Evaluate applies it steps times by plain recursion;
// EvaluateMemoized overlays a cache lookup before every transition and
// records the final result of every state it resolves.
//
//	cache := memo.NewUnbounded()
//	v := forecast.EvaluateMemoized(10000, 5, 10, cache) // ≈ 16288.95
//	cache.Size()                                       // 11
//
// Cost:
//
// A single chain is O(steps) calls either way. Memoization pays off when
// callers issue many overlapping requests, or when the recursion branches:
// ExpectedValue walks an up/down lattice with 2^(steps+1)-1 calls, while
// ExpectedValueMemoized resolves each recombining state once.
//
// Recursion depth equals the step count. Callers are responsible for bounding
// it.
//
// Errors:
//
//   - ErrInvalidInput: fewer than two observations, or observations out of
//     chronological order.
//   - An unreachable target is reported as ok == false by PeriodsToReach.
package forecast
