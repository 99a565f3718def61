package doubleint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, int64(-9007199254740991), Min)
	assert.Equal(t, int64(9007199254740991), Max)
	assert.Equal(t, uint64(9007199254740991), UMax)
	assert.Equal(t, -Min, Max)

	// Both bounds survive a trip through float64.
	assert.Equal(t, Max, int64(float64(Max)))
	assert.Equal(t, Min, int64(float64(Min)))
}

func TestFrom(t *testing.T) {
	assert.Equal(t, int64(math.MinInt8), From(int8(math.MinInt8)).Int64())
	assert.Equal(t, int64(math.MaxInt16), From(int16(math.MaxInt16)).Int64())
	assert.Equal(t, int64(math.MinInt32), From(int32(math.MinInt32)).Int64())
	assert.Equal(t, int64(math.MaxUint8), From(uint8(math.MaxUint8)).Int64())
	assert.Equal(t, int64(math.MaxUint16), From(uint16(math.MaxUint16)).Int64())
	assert.Equal(t, int64(math.MaxUint32), From(uint32(math.MaxUint32)).Int64())

	type port uint16
	assert.Equal(t, int64(8080), From(port(8080)).Int64())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		in      int64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 42, false},
		{"negative", -42, false},
		{"max", Max, false},
		{"min", Min, false},
		{"max plus one", Max + 1, true},
		{"min minus one", Min - 1, true},
		{"2^55", 1 << 55, true},
		{"max int64", math.MaxInt64, true},
		{"min int64", math.MinInt64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsOutOfRange(err))
				assert.Equal(t, DoubleInt{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got.Int64())
		})
	}
}

func TestNewExpectedMessage(t *testing.T) {
	_, err := New(Max + 1)
	var oor *ErrOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, ExpectedBelowMax, oor.Expected)
	assert.Equal(t, "9007199254740992", oor.Value.String())

	_, err = New(Min - 1)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, ExpectedAboveMin, oor.Expected)
	assert.Equal(t, "-9007199254740992", oor.Value.String())
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, int64(7), MustNew(7).Int64())
	assert.Panics(t, func() { MustNew(Max + 1) })
}

func TestFromInteger(t *testing.T) {
	t.Run("valid uint64", func(t *testing.T) {
		got, err := FromInteger(uint64(5))
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.Int64())
	})

	t.Run("valid umax", func(t *testing.T) {
		got, err := FromInteger(UMax)
		require.NoError(t, err)
		assert.Equal(t, Max, got.Int64())
	})

	t.Run("valid negative int", func(t *testing.T) {
		got, err := FromInteger(-3)
		require.NoError(t, err)
		assert.Equal(t, int64(-3), got.Int64())
	})

	t.Run("invalid max uint64", func(t *testing.T) {
		_, err := FromInteger(uint64(math.MaxUint64))
		var oor *ErrOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "18446744073709551615", oor.Value.String())
		assert.Equal(t, ExpectedBelowMax, oor.Expected)
	})

	t.Run("invalid umax plus one", func(t *testing.T) {
		_, err := FromInteger(UMax + 1)
		assert.True(t, IsOutOfRange(err))
	})

	t.Run("invalid min int64", func(t *testing.T) {
		_, err := FromInteger(int64(math.MinInt64))
		assert.True(t, IsOutOfRange(err))
	})
}

func TestFromFloat64(t *testing.T) {
	t.Run("valid integral", func(t *testing.T) {
		got, err := FromFloat64(-42)
		require.NoError(t, err)
		assert.Equal(t, int64(-42), got.Int64())
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := FromFloat64(float64(Max))
		require.NoError(t, err)
		assert.Equal(t, Max, got.Int64())
	})

	t.Run("invalid fraction", func(t *testing.T) {
		_, err := FromFloat64(4.2)
		assert.True(t, IsTypeMismatch(err))
	})

	t.Run("invalid non-finite", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := FromFloat64(f)
			assert.True(t, IsTypeMismatch(err), "%v", f)
		}
	})

	t.Run("invalid 2^53", func(t *testing.T) {
		_, err := FromFloat64(1 << 53)
		assert.True(t, IsOutOfRange(err))
	})

	t.Run("invalid beyond int64", func(t *testing.T) {
		_, err := FromFloat64(-1e30)
		var oor *ErrOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, ExpectedAboveMin, oor.Expected)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		want     int64
		mismatch bool
		oor      bool
	}{
		{in: "42", want: 42},
		{in: "-42", want: -42},
		{in: "9007199254740991", want: Max},
		{in: "9007199254740992", oor: true},
		{in: "-9007199254740992", oor: true},
		{in: "340282366920938463463374607431768211455", oor: true},
		{in: "4.2", mismatch: true},
		{in: "abc", mismatch: true},
		{in: "", mismatch: true},
		{in: "0x10", mismatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			switch {
			case tt.mismatch:
				assert.True(t, IsTypeMismatch(err), "%v", err)
			case tt.oor:
				assert.True(t, IsOutOfRange(err), "%v", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Int64())
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	d := MustNew(Min)
	assert.Equal(t, Min, d.Int64())
	assert.Equal(t, float64(Min), d.Float64())
	assert.Equal(t, "-9007199254740991", d.String())

	var zero DoubleInt
	assert.Equal(t, int64(0), zero.Int64())
	assert.Equal(t, "0", zero.String())
}

func TestRangeSweep(t *testing.T) {
	// Walk the range with a coarse prime stride plus both edges.
	const step = 1_000_000_007 * 1_000_003
	values := []int64{Min, Min + 1, -1, 0, 1, Max - 1, Max}
	for v := Min; v <= Max-step; v += step {
		values = append(values, v)
	}

	for _, v := range values {
		d, err := New(v)
		require.NoError(t, err, "%d", v)
		assert.Equal(t, v, d.Int64())
		assert.Equal(t, v, int64(d.Float64()))

		back, err := FromFloat64(d.Float64())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}
