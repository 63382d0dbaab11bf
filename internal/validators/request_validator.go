package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator validates request schemas against their struct tags using
// go-playground/validator. Field names in error messages come from the json
// tag, matching what the caller actually sent.
type requestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &requestValidator{validate: validate}
}

// Validate checks the value against its validate struct tags. The first
// failing field is reported in a readable message wrapping ErrValidation.
func (v *requestValidator) Validate(_ context.Context, value any) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, describeFieldError(fieldErrors[0]))
	}

	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// describeFieldError renders one tag violation as a short human-readable
// sentence, e.g. "username must be at least 3 characters long".
func describeFieldError(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fieldError.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "max":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fieldError.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fieldError.Tag())
	}
}
