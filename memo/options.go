package memo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrBadPolicy indicates an unknown capacity policy.
	ErrBadPolicy = errors.New("memo: unknown cache policy")
	// ErrBadCapacity indicates a bounded policy without a positive capacity.
	ErrBadCapacity = errors.New("memo: bounded policy requires capacity > 0")
	// ErrBadScale indicates a key scale that is not a positive finite number.
	ErrBadScale = errors.New("memo: scale must be positive and finite")
)

// Policy selects how a Cache bounds its growth.
type Policy int

const (
	Unbounded Policy = iota
	LRU
	Generational
)

func (p Policy) String() string {
	switch p {
	case Unbounded:
		return "unbounded"
	case LRU:
		return "lru"
	case Generational:
		return "generational"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps "unbounded", "lru" or "generational" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unbounded":
		return Unbounded, nil
	case "lru":
		return LRU, nil
	case "generational":
		return Generational, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPolicy, s)
}

// DefaultScale quantizes keys to one micro-unit.
const DefaultScale = 1e6

// Options configures a Cache.
//
// Fields:
//   - Policy: Unbounded, LRU or Generational.
//   - Capacity: entry bound for LRU, per-generation bound for
//     Generational. Ignored by Unbounded.
//   - Scale: fixed-point multiplier applied to real key components.
//   - Logger: receives debug events (clears, evictions). nil means no-op.
type Options struct {
	Policy   Policy
	Capacity int
	Scale    float64
	Logger   *zap.Logger
}

// DefaultOptions returns an unbounded cache with micro-unit keys.
func DefaultOptions() Options {
	return Options{
		Policy: Unbounded,
		Scale:  DefaultScale,
	}
}

// Validate reports the first problem with o, if any.
func (o Options) Validate() error {
	switch o.Policy {
	case Unbounded:
	case LRU, Generational:
		if o.Capacity <= 0 {
			return fmt.Errorf("%w: %s with capacity %d", ErrBadCapacity, o.Policy, o.Capacity)
		}
	default:
		return fmt.Errorf("%w: %s", ErrBadPolicy, o.Policy)
	}
	if o.Scale <= 0 || math.IsInf(o.Scale, 0) || math.IsNaN(o.Scale) {
		return fmt.Errorf("%w: %v", ErrBadScale, o.Scale)
	}
	return nil
}
