package httpapi_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) httpapi.ErrorEnvelope {
	t.Helper()
	var env httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestWriteError(t *testing.T) {
	notFound := serrors.Descriptor{Code: 300, Status: http.StatusNotFound, Message: "Organization not found"}

	cases := []struct {
		name       string
		err        error
		wantStatus int
		want       httpapi.ErrorEnvelope
	}{
		{
			name:       "domain error keeps its status and cause",
			err:        fmt.Errorf("usecase: %w", serrors.New(notFound).WithCause("sid=abc")),
			wantStatus: http.StatusNotFound,
			want:       httpapi.ErrorEnvelope{Code: 300, Detail: "Organization not found", Cause: "sid=abc"},
		},
		{
			name:       "bare descriptor",
			err:        notFound,
			wantStatus: http.StatusNotFound,
			want:       httpapi.ErrorEnvelope{Code: 300, Detail: "Organization not found"},
		},
		{
			name:       "validation carries fields",
			err:        serrors.Validation(serrors.ValidationErrors{"limit": "must be greater than or equal to 0"}),
			wantStatus: http.StatusUnprocessableEntity,
			want: httpapi.ErrorEnvelope{
				Code:   serrors.UnprocessableEntity.Code,
				Detail: serrors.UnprocessableEntity.Message,
				Fields: map[string]string{"limit": "must be greater than or equal to 0"},
			},
		},
		{
			name:       "unknown error is not leaked",
			err:        errors.New("pq: relation \"secret\" does not exist"),
			wantStatus: http.StatusInternalServerError,
			want:       httpapi.ErrorEnvelope{Code: serrors.Undefined.Code, Detail: serrors.Undefined.Message},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpapi.WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.want, decodeEnvelope(t, rr))
		})
	}
}
