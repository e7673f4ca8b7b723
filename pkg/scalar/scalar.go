// Package scalar converts loosely-typed scalar values into strict numeric
// types. Callers hand over whatever the surrounding layer produced (JSON
// decoding, config parsing, formula arguments) and get back a float64 or
// int, or a ValidationError describing why the value is not numeric.
//
// No range checking happens here; only type coercion and rejection.
package scalar

import (
	"fmt"

	"github.com/spf13/cast"
)

// ValidationError indicates that a supplied scalar could not be coerced
// into the required numeric type.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Float coerces a loosely-typed scalar into a float64.
func Float(value interface{}) (float64, error) {
	if value == nil {
		return 0, &ValidationError{Message: "expected a number, got nothing"}
	}
	if _, isBool := value.(bool); isBool {
		// cast would coerce booleans to 1/0; booleans are not numeric here.
		return 0, &ValidationError{Message: fmt.Sprintf("expected a number, got %v (bool)", value)}
	}
	result, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, &ValidationError{Message: fmt.Sprintf("expected a number, got %v (%T)", value, value)}
	}
	return result, nil
}

// Int coerces a loosely-typed scalar into an int. Fractional values are
// truncated toward zero, matching the coercion the surrounding formula
// layer applies to integer arguments.
func Int(value interface{}) (int, error) {
	if value == nil {
		return 0, &ValidationError{Message: "expected an integer, got nothing"}
	}
	if _, isBool := value.(bool); isBool {
		return 0, &ValidationError{Message: fmt.Sprintf("expected an integer, got %v (bool)", value)}
	}
	result, err := cast.ToIntE(value)
	if err != nil {
		// cast refuses to truncate numeric strings with fractions, so
		// retry through float coercion before rejecting.
		f, ferr := cast.ToFloat64E(value)
		if ferr != nil {
			return 0, &ValidationError{Message: fmt.Sprintf("expected an integer, got %v (%T)", value, value)}
		}
		return int(f), nil
	}
	return result, nil
}
