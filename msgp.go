package doubleint

import (
	"errors"
	"math/big"

	"github.com/tinylib/msgp/msgp"
)

var (
	_ msgp.Marshaler   = DoubleInt{}
	_ msgp.Unmarshaler = (*DoubleInt)(nil)
	_ msgp.Encodable   = DoubleInt{}
	_ msgp.Decodable   = (*DoubleInt)(nil)
	_ msgp.Sizer       = DoubleInt{}
)

// MarshalMsg implements msgp.Marshaler.
func (d DoubleInt) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendInt64(b, d.v), nil
}

// UnmarshalMsg implements msgp.Unmarshaler. A nil leaves d unchanged.
func (d *DoubleInt) UnmarshalMsg(bts []byte) ([]byte, error) {
	if msgp.IsNil(bts) {
		return msgp.ReadNilBytes(bts)
	}
	i, o, err := msgp.ReadInt64Bytes(bts)
	if err != nil {
		return bts, msgpError(err)
	}
	v, err := New(i)
	if err != nil {
		return bts, err
	}
	*d = v
	return o, nil
}

// EncodeMsg implements msgp.Encodable.
func (d DoubleInt) EncodeMsg(en *msgp.Writer) error {
	return en.WriteInt64(d.v)
}

// DecodeMsg implements msgp.Decodable. A nil leaves d unchanged.
func (d *DoubleInt) DecodeMsg(dc *msgp.Reader) error {
	if dc.IsNil() {
		return dc.ReadNil()
	}
	i, err := dc.ReadInt64()
	if err != nil {
		return msgpError(err)
	}
	v, err := New(i)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Msgsize implements msgp.Sizer.
func (d DoubleInt) Msgsize() int { return msgp.Int64Size }

func msgpError(err error) error {
	var te msgp.TypeError
	if errors.As(err, &te) {
		return typeMismatch("msgpack", te.Encoded.String(), err)
	}
	var uo msgp.UintOverflow
	if errors.As(err, &uo) {
		return outOfRange(new(big.Int).SetUint64(uo.Value))
	}
	return err
}
