package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/form"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/constants"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// PathUUID parses a mux path variable, reporting a malformed value as a
// validation error on that variable.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, serrors.Validation(serrors.ValidationErrors{name: "must be a valid UUID"})
	}
	return id, nil
}

// DecodeJSON reads the request body into v. Unknown fields are ignored.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.Validation(nil).WithCause("request body is empty")
		}
		return serrors.Validation(nil).WithCause("invalid JSON body: %s", err.Error())
	}
	return nil
}

// DecodeQuery fills v from the query string and runs its validate tags.
func DecodeQuery[T any](r *http.Request, v *T) error {
	if _, err := composables.UseQuery(v, r); err != nil {
		var decodeErrs form.DecodeErrors
		if errors.As(err, &decodeErrs) {
			fields := make(serrors.ValidationErrors, len(decodeErrs))
			for field := range decodeErrs {
				fields[field] = "has an invalid format"
			}
			return serrors.Validation(fields)
		}
		return serrors.Validation(nil).WithCause("%s", err.Error())
	}
	return serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(v))
}
