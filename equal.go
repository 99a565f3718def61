package doubleint

import (
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

var (
	minI128 = num.I128From64(Min)
	maxI128 = num.I128From64(Max)
	maxU128 = num.U128From64(UMax)

	minBig = big.NewInt(Min)
	maxBig = big.NewInt(Max)
)

// Equal reports whether d and v hold the same mathematical integer.
//
// Non-negative values are range-guarded against UMax before being narrowed, so
// wide unsigned values never wrap into the int64 representation.
func Equal[T Integer](d DoubleInt, v T) bool {
	if v < 0 {
		return d.v == int64(v)
	}
	if uint64(v) > UMax {
		return false
	}
	return d.v == int64(v)
}

// EqualTo is Equal with the operands swapped.
func EqualTo[T Integer](v T, d DoubleInt) bool {
	return Equal(d, v)
}

// EqualI128 reports whether d equals the signed 128-bit integer v.
func (d DoubleInt) EqualI128(v num.I128) bool {
	if v.GreaterThan(maxI128) || v.LessThan(minI128) {
		return false
	}
	return d.v == v.AsInt64()
}

// EqualU128 reports whether d equals the unsigned 128-bit integer v.
func (d DoubleInt) EqualU128(v num.U128) bool {
	if v.GreaterThan(maxU128) {
		return false
	}
	return d.v == int64(v.AsUint64())
}

// I128Equal is EqualI128 with the operands swapped.
func I128Equal(v num.I128, d DoubleInt) bool { return d.EqualI128(v) }

// U128Equal is EqualU128 with the operands swapped.
func U128Equal(v num.U128, d DoubleInt) bool { return d.EqualU128(v) }

// EqualBig reports whether d equals the arbitrary-precision integer v.
// A nil v is never equal.
func (d DoubleInt) EqualBig(v *big.Int) bool {
	if v == nil || v.Cmp(maxBig) > 0 || v.Cmp(minBig) < 0 {
		return false
	}
	return d.v == v.Int64()
}
