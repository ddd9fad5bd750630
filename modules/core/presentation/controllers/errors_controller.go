package controllers

import (
	"net/http"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

func requestMeta(r *http.Request) map[string]string {
	meta := map[string]string{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if requestID := composables.UseRequestID(r.Context()); requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}

// NotFound answers unmatched routes with the regular error envelope.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteError(w, r, serrors.New(serrors.RouteNotFound).WithFields(requestMeta(r)))
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteError(w, r, serrors.New(serrors.MethodNotAllowed).WithFields(requestMeta(r)))
	}
}
