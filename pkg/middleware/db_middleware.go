package middleware

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// WithTransaction runs the handler inside a transaction on the request's
// session. The response is held back until the transaction is settled: it
// commits only when the handler answered with a non-error status, and a
// failed commit replaces the handler's answer with an Undefined error.
func WithTransaction() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := composables.UseLogger(r.Context())
			tx, err := composables.BeginTx(r.Context())
			if err != nil {
				httpapi.WriteError(w, r, err)
				return
			}
			defer func() {
				if err := tx.Rollback(r.Context()); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
					logger.WithError(err).Error("failed to rollback transaction")
				}
			}()

			buffered := &bufferedResponseWriter{ResponseWriter: w}
			next.ServeHTTP(buffered, r.WithContext(composables.WithTx(r.Context(), tx)))
			if buffered.Status() >= http.StatusBadRequest {
				buffered.flush()
				return
			}
			if err := tx.Commit(r.Context()); err != nil {
				w.Header().Del("Content-Length")
				httpapi.WriteError(w, r, serrors.Wrap(serrors.Undefined, err).WithCause("transaction was not committed"))
				return
			}
			buffered.flush()
		})
	}
}

// bufferedResponseWriter keeps status and body in memory until flush.
type bufferedResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *bufferedResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *bufferedResponseWriter) flush() {
	w.ResponseWriter.WriteHeader(w.Status())
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}
