package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// ErrorEnvelope is the JSON body of every API error response.
type ErrorEnvelope struct {
	Code   int               `json:"code"`
	Detail string            `json:"detail"`
	Cause  string            `json:"cause,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// WriteError renders err with its declared status. Errors outside the
// serrors taxonomy are logged and answered with a bare Undefined envelope.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var se *serrors.Error
	if !errors.As(err, &se) {
		var d serrors.Descriptor
		if errors.As(err, &d) {
			se = serrors.New(d)
		} else {
			composables.UseLogger(r.Context()).WithError(err).Error("unhandled error")
			se = serrors.New(serrors.Undefined)
		}
	}
	if se.HTTPStatus() >= http.StatusInternalServerError && se.Unwrap() != nil {
		composables.UseLogger(r.Context()).WithError(se.Unwrap()).Error(se.Message)
	}
	if err := WriteJSON(w, se.HTTPStatus(), &ErrorEnvelope{
		Code:   se.Code,
		Detail: se.Message,
		Cause:  se.Cause,
		Fields: se.Fields,
	}); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to write error response")
	}
}
