package pagination

import (
	"errors"
	"net/http"

	"github.com/go-playground/form"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/constants"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Params struct {
	Limit  int `form:"limit" validate:"gte=0,lte=500"`
	Offset int `form:"offset" validate:"gte=0"`
}

func Default() Params {
	return Params{Limit: DefaultLimit}
}

func (p Params) Validate() error {
	return serrors.FromValidator(serrors.NumberOutOfBounds, constants.Validate.Struct(p))
}

// FromRequest reads limit/offset from the query string, applying defaults
// for absent keys and rejecting malformed or negative bounds.
func FromRequest(r *http.Request) (Params, error) {
	p := Default()
	if _, err := composables.UseQuery(&p, r); err != nil {
		var decodeErrs form.DecodeErrors
		if errors.As(err, &decodeErrs) {
			fields := make(serrors.ValidationErrors, len(decodeErrs))
			for field := range decodeErrs {
				fields[field] = "must be an integer"
			}
			return Params{}, serrors.New(serrors.NumberOutOfBounds).WithFields(fields)
		}
		return Params{}, serrors.Validation(nil).WithCause("%s", err.Error())
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

type Result[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func NewResult[T any](items []T, total int64, p Params) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, Total: total, Limit: p.Limit, Offset: p.Offset}
}
