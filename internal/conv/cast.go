package conv

import (
	"math"
	"math/big"
)

// Float64ToInt64 converts an integral float64 to int64 exactly.
//
// It reports false for NaN, infinities, fractional values and values outside
// the int64 range. No rounding is ever applied.
func Float64ToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	// -2^63 is exact as a float64, 2^63 is the first value that no longer fits.
	if f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float64ToBig converts an integral float64 to a big.Int.
//
// It reports false for NaN, infinities and fractional values.
func Float64ToBig(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, false
	}
	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	return b, true
}
