package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// FieldError is one human-readable validation failure. Failures are
// collected, never fail-fast: callers receive every invalid field together.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Result carries the collected field errors for one request
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// Valid reports whether no field failed
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Add appends a field error
func (r *Result) Add(field, format string, args ...any) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Merge appends every error from another result
func (r *Result) Merge(other *Result) {
	r.Errors = append(r.Errors, other.Errors...)
}

// Error summarizes all collected failures on one line
func (r *Result) Error() string {
	if r.Valid() {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Struct runs tag-based validation and converts every failure into a
// FieldError, keeping the full list rather than stopping at the first
func Struct(v any) *Result {
	result := &Result{}
	err := validate.Struct(v)
	if err == nil {
		return result
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Add("request", "%v", err)
		return result
	}

	for _, e := range validationErrs {
		result.Errors = append(result.Errors, FieldError{
			Field:   e.Field(),
			Message: describeTag(e.Tag(), e.Param()),
		})
	}
	return result
}

func describeTag(tag, param string) string {
	switch tag {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		return fmt.Sprintf("must not exceed %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("validation failed (%s)", tag)
	}
}
