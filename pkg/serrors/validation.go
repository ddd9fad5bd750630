package serrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ValidationErrors map[string]string

// Validation builds an UnprocessableEntity error carrying per-field detail.
func Validation(fields ValidationErrors) *Error {
	return New(UnprocessableEntity).WithFields(fields)
}

func ProcessValidatorErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = describeFieldError(fe)
	}
	return out
}

// FromValidator turns the result of validator.Struct into an *Error under the given descriptor.
// A nil input yields nil.
func FromValidator(d Descriptor, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Wrap(Undefined, err)
	}
	return New(d).WithFields(ProcessValidatorErrors(verrs))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte", "min":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
