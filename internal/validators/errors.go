package validators

import "errors"

var (
	// ErrValidation is the sentinel wrapped by every failed request
	// validation, so transport code can map the whole family to one
	// HTTP status with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned when a non-struct value is passed
	// for validation.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
