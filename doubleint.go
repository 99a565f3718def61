package doubleint

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/hupe1980/doubleint/internal/conv"
)

const (
	// Min is the smallest value a DoubleInt can hold: -(2^53) + 1.
	Min int64 = -(1 << 53) + 1
	// Max is the largest value a DoubleInt can hold: 2^53 - 1.
	Max int64 = 1<<53 - 1
	// UMax is Max as an unsigned value, used when comparing against unsigned types.
	UMax uint64 = 1<<53 - 1
)

// Narrow is the set of integer types whose whole range fits in [Min, Max].
type Narrow interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// Signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is every fixed-width Go integer type.
type Integer interface {
	Signed | Unsigned
}

// DoubleInt is an integer that can be stored in an IEEE 754 double-precision
// number without loss of precision.
//
// The zero value is 0. DoubleInt values are immutable and comparable with ==.
type DoubleInt struct {
	v int64
}

// From widens a narrow integer into a DoubleInt. It cannot fail.
func From[T Narrow](v T) DoubleInt {
	return DoubleInt{v: int64(v)}
}

// New validates v against [Min, Max].
func New(v int64) (DoubleInt, error) {
	if v < Min || v > Max {
		return DoubleInt{}, outOfRange(big.NewInt(v))
	}
	return DoubleInt{v: v}, nil
}

// MustNew is like New but panics if v is out of range.
func MustNew(v int64) DoubleInt {
	d, err := New(v)
	if err != nil {
		panic(err)
	}
	return d
}

// FromInteger validates an integer of any width against [Min, Max].
func FromInteger[T Integer](v T) (DoubleInt, error) {
	if v < 0 {
		return New(int64(v))
	}
	if uint64(v) > UMax {
		return DoubleInt{}, outOfRange(new(big.Int).SetUint64(uint64(v)))
	}
	return DoubleInt{v: int64(v)}, nil
}

// FromFloat64 converts an integral float64 exactly.
//
// NaN, infinities and values with a fractional part are not integers and fail
// with *ErrTypeMismatch. No rounding or clamping is applied.
func FromFloat64(f float64) (DoubleInt, error) {
	if i, ok := conv.Float64ToInt64(f); ok {
		return New(i)
	}
	if b, ok := conv.Float64ToBig(f); ok {
		return DoubleInt{}, outOfRange(b)
	}
	return DoubleInt{}, typeMismatch("", "float "+strconv.FormatFloat(f, 'g', -1, 64), nil)
}

// Parse parses a base-10 integer.
func Parse(s string) (DoubleInt, error) {
	return parse("text", s)
}

func parse(format, s string) (DoubleInt, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return New(i)
	}
	if errors.Is(err, strconv.ErrRange) {
		if b, ok := new(big.Int).SetString(s, 10); ok {
			return DoubleInt{}, outOfRange(b)
		}
	}
	return DoubleInt{}, typeMismatch(format, strconv.Quote(s), err)
}

// Int64 returns the value as an int64.
func (d DoubleInt) Int64() int64 { return d.v }

// Float64 returns the value as a float64. The conversion is always exact.
func (d DoubleInt) Float64() float64 { return float64(d.v) }

// String returns the base-10 representation.
func (d DoubleInt) String() string { return strconv.FormatInt(d.v, 10) }
