package doubleint

import (
	"bytes"
	"strconv"
)

// MarshalJSON implements json.Marshaler. The value is written as a bare number.
func (d DoubleInt) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.v, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Only integer literals are accepted. Numbers with a fraction or exponent,
// strings, booleans, objects and arrays fail with *ErrTypeMismatch. As with
// the standard library, null leaves d unchanged.
func (d *DoubleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return typeMismatch("json", "empty input", nil)
	}

	switch c := data[0]; {
	case bytes.Equal(data, []byte("null")):
		return nil
	case c == '"':
		return typeMismatch("json", "string", nil)
	case c == 't' || c == 'f':
		return typeMismatch("json", "boolean", nil)
	case c == '{':
		return typeMismatch("json", "object", nil)
	case c == '[':
		return typeMismatch("json", "array", nil)
	case c == '-' || (c >= '0' && c <= '9'):
		if bytes.ContainsAny(data, ".eE") {
			return typeMismatch("json", "floating point "+string(data), nil)
		}
		v, err := parse("json", string(data))
		if err != nil {
			return err
		}
		*d = v
		return nil
	default:
		return typeMismatch("json", strconv.Quote(string(data)), nil)
	}
}
