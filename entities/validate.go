package entities

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failing field in a create payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every failing field, not just the first.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field error, used by storage-level
// checks (uniqueness, cross-entity consistency) that the struct tags
// cannot express.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report errors under the json name, the way the API exposes fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}()

// Validate checks an entity against its schema tags and returns a
// *ValidationError listing all failing fields, or nil.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
