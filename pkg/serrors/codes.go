package serrors

import "net/http"

// Common errors are not tied to a single domain.
// Domain groups live next to their aggregates: building 1xx, activity 2xx, organization 3xx.
var (
	Undefined           = Descriptor{Code: 0, Status: http.StatusInternalServerError, Message: "Unknown error"}
	NotUnique           = Descriptor{Code: 1, Status: http.StatusBadRequest, Message: "Non-unique field(s) during creation"}
	UnprocessableEntity = Descriptor{Code: 2, Status: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	AccessDenied        = Descriptor{Code: 3, Status: http.StatusForbidden, Message: "Access denied"}
	NumberOutOfBounds   = Descriptor{Code: 4, Status: http.StatusUnprocessableEntity, Message: "Number out of bounds"}
	TooManyRequests     = Descriptor{Code: 5, Status: http.StatusTooManyRequests, Message: "Too many requests"}
	RouteNotFound       = Descriptor{Code: 6, Status: http.StatusNotFound, Message: "Route not found"}
	MethodNotAllowed    = Descriptor{Code: 7, Status: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	Unavailable         = Descriptor{Code: 8, Status: http.StatusServiceUnavailable, Message: "Service unavailable"}
)
