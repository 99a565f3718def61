package doubleint

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	// ExpectedAboveMin describes the lower bound of the valid range.
	ExpectedAboveMin = "integer larger than -9007199254740991 / -(2^53) + 1"
	// ExpectedBelowMax describes the upper bound of the valid range.
	ExpectedBelowMax = "integer smaller than 9007199254740991 / (2^53) - 1"
)

// ErrOutOfRange indicates a well-formed integer outside [Min, Max].
type ErrOutOfRange struct {
	// Value is the rejected integer. It may be wider than 64 bits.
	Value *big.Int
	// Expected is a human-readable description of the violated bound.
	Expected string
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("doubleint: invalid value %s, expected %s", e.Value, e.Expected)
}

// ErrTypeMismatch indicates an encoded value that is not an integer at all.
//
// The underlying decoder error (if any) can be accessed via errors.Unwrap.
type ErrTypeMismatch struct {
	// Format names the encoding the value was read from (e.g. "json").
	Format string
	// Got describes what was found instead of an integer.
	Got   string
	cause error
}

func (e *ErrTypeMismatch) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("doubleint: invalid type %s, expected a 64-bit signed integer", e.Got)
	}
	return fmt.Sprintf("doubleint: invalid %s type %s, expected a 64-bit signed integer", e.Format, e.Got)
}

func (e *ErrTypeMismatch) Unwrap() error { return e.cause }

// IsOutOfRange reports whether err (or any error it wraps) is an *ErrOutOfRange.
func IsOutOfRange(err error) bool {
	var target *ErrOutOfRange
	return errors.As(err, &target)
}

// IsTypeMismatch reports whether err (or any error it wraps) is an *ErrTypeMismatch.
func IsTypeMismatch(err error) bool {
	var target *ErrTypeMismatch
	return errors.As(err, &target)
}

func outOfRange(v *big.Int) error {
	if v.Sign() < 0 {
		return &ErrOutOfRange{Value: v, Expected: ExpectedAboveMin}
	}
	return &ErrOutOfRange{Value: v, Expected: ExpectedBelowMax}
}

func typeMismatch(format, got string, cause error) error {
	return &ErrTypeMismatch{Format: format, Got: got, cause: cause}
}
