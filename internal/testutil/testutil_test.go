package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGReproducible(t *testing.T) {
	a := NewRNG(42).Int64s(256)
	b := NewRNG(42).Int64s(256)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), NewRNG(42).Seed())
}

func TestInt64sCoversBothSides(t *testing.T) {
	var inside, outside int
	for _, v := range NewRNG(7).Int64s(2000) {
		if v >= -SafeMax && v <= SafeMax {
			inside++
		} else {
			outside++
		}
	}
	assert.Positive(t, inside)
	assert.Positive(t, outside)
}
