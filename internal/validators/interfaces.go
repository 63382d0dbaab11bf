// Package validators provides input validation for request schemas at the
// transport boundary, decoupled from handlers and services so that
// validation strategies stay reusable and testable.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. A failed validation is
	// reported as an error wrapping ErrValidation with a human-readable
	// description of the first offending field.
	Validate(context.Context, any) error
}
