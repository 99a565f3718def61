// Package doubleint provides an integer type that can be stored in an IEEE 754
// double-precision number without loss of precision.
//
// DoubleInt implements the OpenAPI `format: double-int`: any value it holds lies
// in [-(2^53) + 1, 2^53 - 1], so consumers that decode every number as a double
// (JavaScript, many JSON parsers) read it back exactly.
//
// # Construction
//
// Narrow integers always fit and convert infallibly. Wider inputs are validated:
//
//	a := doubleint.From(int32(42))                 // infallible
//	b, err := doubleint.New(9007199254740992)      // *ErrOutOfRange
//	c, err := doubleint.FromInteger(uint64(5))     // range-guarded
//	d, err := doubleint.FromFloat64(4.2)           // *ErrTypeMismatch
//
// # Equality
//
// A DoubleInt compares against any integer width without wrapping:
//
//	doubleint.Equal(doubleint.From(int8(5)), uint64(5))              // true
//	doubleint.Equal(doubleint.From(int8(5)), uint64(math.MaxUint64)) // false
//	d.EqualU128(num.MaxU128)                                          // false
//
// # Serialization
//
// A DoubleInt encodes as a plain signed 64-bit integer in every supported
// format (JSON, text, YAML, BSON, MessagePack, SQL, Postgres, protobuf). Decoding
// rejects non-integers with *ErrTypeMismatch before the range is checked, and
// integers outside the range with *ErrOutOfRange:
//
//	type Config struct {
//	    Count doubleint.DoubleInt `json:"count"`
//	}
//
//	json.Unmarshal([]byte(`{"count": 42}`), &cfg)                // ok
//	json.Unmarshal([]byte(`{"count": 4.2}`), &cfg)               // *ErrTypeMismatch
//	json.Unmarshal([]byte(`{"count": 36028797018963968}`), &cfg) // *ErrOutOfRange
//
// See the codec package for named codecs over these formats.
package doubleint
