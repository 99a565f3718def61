package doubleint

import (
	"math/big"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. The value is written as a plain !!int scalar.
func (d DoubleInt) MarshalYAML() (any, error) {
	return d.v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Only !!int scalars are accepted; !!null leaves d unchanged. Plain integers
// too wide for 64 bits resolve as !!float and are reported as out of range.
func (d *DoubleInt) UnmarshalYAML(value *yaml.Node) error {
	for value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.ScalarNode {
		return typeMismatch("yaml", yamlKind(value.Kind), nil)
	}

	switch tag := value.ShortTag(); tag {
	case "!!null":
		return nil
	case "!!int":
	case "!!float":
		if value.Style&yaml.TaggedStyle == 0 {
			if b, ok := new(big.Int).SetString(value.Value, 10); ok {
				return outOfRange(b)
			}
		}
		return typeMismatch("yaml", tag+" "+value.Value, nil)
	default:
		return typeMismatch("yaml", tag+" "+value.Value, nil)
	}

	var i int64
	if err := value.Decode(&i); err != nil {
		// Positive values beyond int64 still resolve as !!int.
		var u uint64
		if uerr := value.Decode(&u); uerr == nil {
			return outOfRange(new(big.Int).SetUint64(u))
		}
		return typeMismatch("yaml", "!!int "+value.Value, err)
	}

	v, err := New(i)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
