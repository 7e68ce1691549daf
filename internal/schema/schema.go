// Package schema declares the fields each request must carry and validates
// them in declaration order, reporting only the first failure.
//
//	rules := schema.Rules{
//		schema.Required("correo", req.Correo, "correo es requerido"),
//		schema.Required("contrasenia", req.Contrasenia, "contrasenia es requerida"),
//	}
//	if err := rules.Validate(); err != nil { ... }
//
// A value is missing when it is the zero value of its type: an empty
// string, a zero number or a nil pointer.
package schema

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldError reports the first field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Rule binds a field value to the validation rules it must satisfy.
type Rule struct {
	Field string
	Value any
	Rules []validation.Rule
}

// Required declares a mandatory field. message is returned verbatim when the
// value is missing.
func Required(field string, value any, message string) Rule {
	return Rule{
		Field: field,
		Value: value,
		Rules: []validation.Rule{validation.Required.Error(message)},
	}
}

// Rules is an ordered validation schema.
type Rules []Rule

// Validate checks each rule in order and returns a *FieldError for the first
// one that fails, or nil.
func (rs Rules) Validate() error {
	for _, r := range rs {
		if err := validation.Validate(r.Value, r.Rules...); err != nil {
			return &FieldError{Field: r.Field, Message: err.Error()}
		}
	}
	return nil
}

// Validator is implemented by request payloads that declare their schema.
type Validator interface {
	Rules() Rules
}
