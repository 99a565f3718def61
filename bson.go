package doubleint

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MarshalBSONValue implements bson.ValueMarshaler. The value is always written
// as a BSON int64, never as a double.
func (d DoubleInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.Int64, bsoncore.AppendInt64(nil, d.v), nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
//
// BSON int32 and int64 are accepted. Doubles are rejected even when integral,
// because the encoded form is not an integer. Null leaves d unchanged.
func (d *DoubleInt) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bsoncore.Value{Type: t, Data: data}

	var i int64
	switch t {
	case bsontype.Null, bsontype.Undefined:
		return nil
	case bsontype.Int32:
		i32, ok := raw.Int32OK()
		if !ok {
			return typeMismatch("bson", "malformed int32", nil)
		}
		i = int64(i32)
	case bsontype.Int64:
		i64, ok := raw.Int64OK()
		if !ok {
			return typeMismatch("bson", "malformed int64", nil)
		}
		i = i64
	default:
		return typeMismatch("bson", t.String(), nil)
	}

	v, err := New(i)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
