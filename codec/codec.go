// Package codec centralizes encoding of documents that carry DoubleInt fields.
//
// Every built-in codec emits DoubleInt as a plain integer and surfaces the two
// decode failures of the doubleint package (*doubleint.ErrTypeMismatch and
// *doubleint.ErrOutOfRange) unchanged, wrapped at most by the format's own
// field context.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	case "bson":
		return BSON{}, true
	case "msgpack":
		return MsgPack{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "yaml", "bson", "msgpack"}
}

// MustMarshal is a helper for tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
