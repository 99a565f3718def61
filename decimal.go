package doubleint

import "github.com/shopspring/decimal"

// Decimal returns the value as a decimal.Decimal.
func (d DoubleInt) Decimal() decimal.Decimal {
	return decimal.NewFromInt(d.v)
}

// FromDecimal converts an integral decimal exactly.
//
// Decimals with a fractional part fail with *ErrTypeMismatch.
func FromDecimal(v decimal.Decimal) (DoubleInt, error) {
	if !v.IsInteger() {
		return DoubleInt{}, typeMismatch("decimal", "fractional "+v.String(), nil)
	}

	b := v.BigInt()
	if b.Cmp(minBig) < 0 || b.Cmp(maxBig) > 0 {
		return DoubleInt{}, outOfRange(b)
	}
	return DoubleInt{v: b.Int64()}, nil
}
