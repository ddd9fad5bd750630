package serrors

import (
	"fmt"
	"net/http"
	"strings"
)

// Descriptor identifies a class of backend failure.
// Two descriptors are the same error when their codes match.
type Descriptor struct {
	Code    int
	Status  int
	Message string
}

func (d Descriptor) Error() string {
	return fmt.Sprintf("%d: %s", d.Code, d.Message)
}

// Error is a descriptor raised with request-specific context.
type Error struct {
	Descriptor
	Cause  string
	Fields map[string]string
	err    error
}

func New(d Descriptor) *Error {
	return &Error{Descriptor: d}
}

func Wrap(d Descriptor, err error) *Error {
	return &Error{Descriptor: d, err: err}
}

func (e *Error) WithCause(format string, args ...any) *Error {
	e.Cause = fmt.Sprintf(format, args...)
	return e
}

func (e *Error) WithFields(fields map[string]string) *Error {
	e.Fields = fields
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Descriptor.Error())
	if e.Cause != "" {
		b.WriteString(": ")
		b.WriteString(e.Cause)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Descriptor:
		return t.Code == e.Code
	case *Error:
		return t != nil && t.Code == e.Code
	default:
		return false
	}
}

// HTTPStatus falls back to 500 for descriptors declared without a status.
func (e *Error) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}
