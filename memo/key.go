package memo

import "math"

// Kind separates key spaces of different evaluations sharing one cache.
type Kind uint8

const (
	// KindChain keys a linear compounding chain (value, rate, steps).
	KindChain Kind = iota
	// KindLattice keys a branching up/down lattice (value, up, down, steps).
	KindLattice
)

// Key is the structured cache key. Build it with (*Cache).Key.
type Key struct {
	Kind  Kind
	Value int64
	Rate  int64
	Down  int64
	Steps int
	Exact bool
}

// 2^63 as float64; anything at or beyond it does not fit in an int64.
const int64Limit = float64(1 << 63)

func quantize(x, scale float64) (int64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	s := math.Round(x * scale)
	if s >= int64Limit || s < -int64Limit {
		return 0, false
	}
	return int64(s), true
}

func makeKey(kind Kind, value, rate, down float64, steps int, scale float64) Key {
	v, okV := quantize(value, scale)
	r, okR := quantize(rate, scale)
	d, okD := quantize(down, scale)
	if okV && okR && okD {
		return Key{Kind: kind, Value: v, Rate: r, Down: d, Steps: steps}
	}
	return Key{
		Kind:  kind,
		Value: int64(math.Float64bits(value)),
		Rate:  int64(math.Float64bits(rate)),
		Down:  int64(math.Float64bits(down)),
		Steps: steps,
		Exact: true,
	}
}
