package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/serrors"
	"github.com/iota-uz/org-directory/pkg/session"
)

// WithSessionScope binds a fresh session scope to each request. The scope is
// torn down when the handler returns, fails or panics; a panic is answered
// with a generic 500 if nothing was written yet.
func WithSessionScope(registry *session.Registry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := registry.Open()
			ctx := composables.WithScope(r.Context(), scope)
			logger := composables.UseLogger(ctx).WithField("scope-id", scope.ID().String())
			ctx = composables.WithLogger(ctx, logger)
			r = r.WithContext(ctx)

			wrapped := wrapResponseWriter(w, 0)
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.WithFields(logrus.Fields{
						"panic": recovered,
						"stack": string(debug.Stack()),
					}).Error("panic recovered inside session scope")
					if !wrapped.statusWritten {
						httpapi.WriteError(wrapped, r, serrors.New(serrors.Undefined))
					}
				}
				registry.Close(scope)
				logger.Debug("session scope torn down")
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}
