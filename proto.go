package doubleint

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProtoValue returns the value as a google.protobuf.Value number.
//
// Struct values carry every number as a double; the conversion is exact.
func (d DoubleInt) ProtoValue() *structpb.Value {
	return structpb.NewNumberValue(float64(d.v))
}

// ProtoInt64 returns the value as a google.protobuf.Int64Value.
func (d DoubleInt) ProtoInt64() *wrapperspb.Int64Value {
	return wrapperspb.Int64(d.v)
}

// FromProtoValue converts a google.protobuf.Value number.
//
// Non-number kinds and numbers with a fractional part fail with *ErrTypeMismatch.
func FromProtoValue(v *structpb.Value) (DoubleInt, error) {
	if v == nil {
		return DoubleInt{}, typeMismatch("protobuf", "nil", nil)
	}

	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		d, err := FromFloat64(k.NumberValue)
		if err != nil && IsTypeMismatch(err) {
			return DoubleInt{}, typeMismatch("protobuf", "non-integral number", err)
		}
		return d, err
	case *structpb.Value_NullValue:
		return DoubleInt{}, typeMismatch("protobuf", "null", nil)
	case *structpb.Value_StringValue:
		return DoubleInt{}, typeMismatch("protobuf", "string", nil)
	case *structpb.Value_BoolValue:
		return DoubleInt{}, typeMismatch("protobuf", "bool", nil)
	case *structpb.Value_StructValue:
		return DoubleInt{}, typeMismatch("protobuf", "struct", nil)
	case *structpb.Value_ListValue:
		return DoubleInt{}, typeMismatch("protobuf", "list", nil)
	default:
		return DoubleInt{}, typeMismatch("protobuf", fmt.Sprintf("%T", k), nil)
	}
}

// FromProtoInt64 converts a google.protobuf.Int64Value. A nil wrapper fails
// with *ErrTypeMismatch.
func FromProtoInt64(v *wrapperspb.Int64Value) (DoubleInt, error) {
	if v == nil {
		return DoubleInt{}, typeMismatch("protobuf", "nil", nil)
	}
	return New(v.GetValue())
}
