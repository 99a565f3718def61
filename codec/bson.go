package codec

import "go.mongodb.org/mongo-driver/bson"

// BSON is a codec backed by the MongoDB driver's bson package.
//
// Values must be documents (structs, maps or bson.D). DoubleInt fields are
// written as BSON int64; BSON doubles are rejected on decode.
type BSON struct{}

// Marshal encodes the value to a BSON document.
func (BSON) Marshal(v any) ([]byte, error) { return bson.Marshal(v) }

// Unmarshal decodes the BSON document into v.
func (BSON) Unmarshal(data []byte, v any) error { return bson.Unmarshal(data, v) }

// Name returns the unique name of the codec ("bson").
func (BSON) Name() string { return "bson" }
