package doubleint

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// DefaultValidationTag is the struct tag registered by RegisterValidation.
const DefaultValidationTag = "doubleint"

var doubleIntType = reflect.TypeOf(DoubleInt{})

type validationOptions struct {
	tag string
}

// ValidationOption configures RegisterValidation.
type ValidationOption func(*validationOptions)

// WithTag registers the validation under a custom tag name.
//
// An empty tag keeps DefaultValidationTag.
func WithTag(tag string) ValidationOption {
	return func(o *validationOptions) {
		if tag != "" {
			o.tag = tag
		}
	}
}

// RegisterValidation registers a struct tag that accepts plain numeric fields
// only when they hold a double-safe integer.
//
//	type Order struct {
//	    Quantity int64 `validate:"doubleint"`
//	}
//
// Signed and unsigned integers are range checked, floats must additionally be
// integral. Any other kind fails validation.
func RegisterValidation(v *validator.Validate, opts ...ValidationOption) error {
	o := validationOptions{tag: DefaultValidationTag}
	for _, opt := range opts {
		opt(&o)
	}
	return v.RegisterValidation(o.tag, validateField)
}

func validateField(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Type() == doubleIntType {
		return true
	}

	var err error
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err = New(f.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, err = FromInteger(f.Uint())
	case reflect.Float32, reflect.Float64:
		_, err = FromFloat64(f.Float())
	default:
		return false
	}
	return err == nil
}
