package doubleint

import (
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"
)

// Format is the OpenAPI format name registered for double-safe integers.
const Format = "double-int"

// JSONSchema implements the jsonschema custom schema hook.
func (DoubleInt) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    "integer",
		Format:  Format,
		Minimum: json.Number(strconv.FormatInt(Min, 10)),
		Maximum: json.Number(strconv.FormatInt(Max, 10)),
	}
}
