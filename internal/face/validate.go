package face

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrNotDetected is returned when validating a result without a detected face.
var ErrNotDetected = errors.New("no face detected")

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field string
	Tag   string
	err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed validation for tag '%s'", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error { return e.err }

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks that every enumerated field of a detected result is within its domain.
func Validate(r Result) error {
	if !r.Detected {
		return ErrNotDetected
	}
	if err := validatorInstance().Struct(r); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			return &ValidationError{Field: fieldName(ves[0]), Tag: ves[0].Tag(), err: err}
		}
		return err
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}
