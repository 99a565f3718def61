package codec

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MsgPack is a MessagePack codec backed by github.com/tinylib/msgp.
//
// msgp relies on generated (or hand-written) methods rather than reflection:
// values must implement msgp.Marshaler and targets msgp.Unmarshaler. DoubleInt
// implements both.
type MsgPack struct{}

// Marshal encodes the value to MessagePack.
func (MsgPack) Marshal(v any) ([]byte, error) {
	m, ok := v.(msgp.Marshaler)
	if !ok {
		return nil, fmt.Errorf("msgpack: %T does not implement msgp.Marshaler", v)
	}
	var b []byte
	if s, ok := v.(msgp.Sizer); ok {
		b = make([]byte, 0, s.Msgsize())
	}
	return m.MarshalMsg(b)
}

// Unmarshal decodes the MessagePack data into v.
func (MsgPack) Unmarshal(data []byte, v any) error {
	u, ok := v.(msgp.Unmarshaler)
	if !ok {
		return fmt.Errorf("msgpack: %T does not implement msgp.Unmarshaler", v)
	}
	rest, err := u.UnmarshalMsg(data)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("msgpack: %d trailing bytes", len(rest))
	}
	return nil
}

// Name returns the unique name of the codec ("msgpack").
func (MsgPack) Name() string { return "msgpack" }
