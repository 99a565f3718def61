package doubleint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestProtoValue(t *testing.T) {
	for _, v := range []int64{Min, -1, 0, 42, Max} {
		pv := MustNew(v).ProtoValue()
		assert.Equal(t, float64(v), pv.GetNumberValue())

		got, err := FromProtoValue(pv)
		require.NoError(t, err)
		assert.Equal(t, v, got.Int64())
	}
}

func TestFromProtoValueRejects(t *testing.T) {
	mismatch := []*structpb.Value{
		nil,
		structpb.NewNumberValue(4.2),
		structpb.NewNumberValue(math.NaN()),
		structpb.NewNullValue(),
		structpb.NewStringValue("42"),
		structpb.NewBoolValue(true),
		structpb.NewListValue(&structpb.ListValue{}),
		structpb.NewStructValue(&structpb.Struct{}),
	}
	for _, v := range mismatch {
		_, err := FromProtoValue(v)
		assert.True(t, IsTypeMismatch(err), "%v: %v", v, err)
	}

	_, err := FromProtoValue(structpb.NewNumberValue(1 << 55))
	assert.True(t, IsOutOfRange(err))
}

func TestProtoInt64(t *testing.T) {
	w := MustNew(-42).ProtoInt64()
	assert.Equal(t, int64(-42), w.GetValue())

	got, err := FromProtoInt64(w)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), got.Int64())

	_, err = FromProtoInt64(wrapperspb.Int64(1 << 55))
	assert.True(t, IsOutOfRange(err))

	_, err = FromProtoInt64(nil)
	assert.True(t, IsTypeMismatch(err))
}
