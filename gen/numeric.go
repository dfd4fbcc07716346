package gen

import (
	"math"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
	"github.com/kestrel-labs/qcheck/stream"
)

// Interval draws an int64 in [lo, hi], inclusive on both ends, shrinking
// toward zero if zero is within range, otherwise toward whichever bound is
// closest to zero.
func Interval(lo, hi int64) Generator[int64] {
	if hi < lo {
		panic(&ConfigError{Reason: "interval: hi must be >= lo"})
	}
	return func(r *rng.Random) shrink.Shrinkable[int64] {
		v := r.Interval(lo, hi)
		return shrink.IntBounded(v, lo, hi)
	}
}

// InRange draws an int64 in [lo, hi), shrinking the same way as Interval
// over the equivalent closed range [lo, hi-1].
func InRange(lo, hi int64) Generator[int64] {
	if hi <= lo {
		panic(&ConfigError{Reason: "in_range: hi must be > lo"})
	}
	return func(r *rng.Random) shrink.Shrinkable[int64] {
		v := r.InRange(lo, hi)
		return shrink.IntBounded(v, lo, hi-1)
	}
}

// Int32 and UInt variants narrow Interval/InRange to the widths generated
// structures commonly need, so callers don't have to cast at every use
// site.
func Int32Interval(lo, hi int32) Generator[int32] {
	return Map(Interval(int64(lo), int64(hi)), func(v int64) int32 { return int32(v) })
}

func UIntInRange(lo, hi uint64) Generator[uint64] {
	if hi <= lo {
		panic(&ConfigError{Reason: "uint in_range: hi must be > lo"})
	}
	return func(r *rng.Random) shrink.Shrinkable[uint64] {
		delta := r.InRange(0, int64(hi-lo))
		v := lo + uint64(delta)
		s := shrink.IntBounded(int64(v-lo), 0, int64(hi-lo-1))
		return shrink.Map(s, func(d int64) uint64 { return lo + uint64(d) })
	}
}

// Float draws a float64 uniformly over [-bound, bound) and shrinks toward
// zero, truncating toward integers before halving the fractional part (see
// shrink.Float).
func Float(bound float64) Generator[float64] {
	if bound <= 0 {
		panic(&ConfigError{Reason: "float: bound must be > 0"})
	}
	return func(r *rng.Random) shrink.Shrinkable[float64] {
		v := (r.NextFloat64()*2 - 1) * bound
		return shrink.Float(v)
	}
}

// FiniteFloat is Float restricted away from producing NaN/Inf inputs,
// which NextFloat64 never does anyway; kept as the named entry point the
// spec's numeric domain table expects next to Float.
func FiniteFloat(bound float64) Generator[float64] {
	return Filter(Float(bound), func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) })
}

// Decimal draws a shopspring/decimal.Decimal by generating an integer
// coefficient in [lo, hi] and scaling it by 10^-exp, shrinking the
// coefficient toward zero the same way Interval does. This extends the
// spec's numeric domain table with an arbitrary-precision decimal, useful
// for generating monetary or scientific quantities without float rounding.
func Decimal(lo, hi int64, exp int32) Generator[decimal.Decimal] {
	return Map(Interval(lo, hi), func(coef int64) decimal.Decimal {
		return decimal.New(coef, -exp)
	})
}

// UInt256 draws an unsigned 256-bit integer bounded by bits (1..256),
// shrinking toward zero by repeated halving. holiman/uint256 values are
// fixed-size and allocation-free, which is why this generator returns
// *uint256.Int rather than a big.Int.
func UInt256(bits int) Generator[*uint256.Int] {
	if bits <= 0 || bits > 256 {
		panic(&ConfigError{Reason: "uint256: bits must be in 1..256"})
	}
	return func(r *rng.Random) shrink.Shrinkable[*uint256.Int] {
		limbs := [4]uint64{}
		remaining := bits
		for i := 0; i < 4 && remaining > 0; i++ {
			take := remaining
			if take > 64 {
				take = 64
			}
			word := r.NextU64()
			if take < 64 {
				word &= (uint64(1) << uint(take)) - 1
			}
			limbs[i] = word
			remaining -= take
		}
		v := uint256.NewInt(0)
		for i := 3; i >= 0; i-- {
			v.Lsh(v, 64)
			v.Or(v, uint256.NewInt(limbs[i]))
		}
		return uint256Shrinkable(v)
	}
}

// uint256Shrinkable halves the value toward zero at each step, mirroring
// shrink.Int's halving strategy but over uint256's own arithmetic instead
// of int64, since the value may not fit in 64 bits.
func uint256Shrinkable(v *uint256.Int) shrink.Shrinkable[*uint256.Int] {
	if v.IsZero() {
		return shrink.Leaf(v)
	}
	return shrink.New(v, func() stream.Stream[shrink.Shrinkable[*uint256.Int]] {
		half := new(uint256.Int).Rsh(v, 1)
		zero := uint256.NewInt(0)
		return stream.FromSlice([]shrink.Shrinkable[*uint256.Int]{
			uint256Shrinkable(half),
			shrink.Leaf(zero),
		})
	})
}
