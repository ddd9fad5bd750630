package activity

import (
	"net/http"

	"github.com/iota-uz/org-directory/pkg/serrors"
)

var (
	ErrNotFound       = serrors.Descriptor{Code: 200, Status: http.StatusNotFound, Message: "Activity not found"}
	ErrExceedMaxDepth = serrors.Descriptor{Code: 201, Status: http.StatusBadRequest, Message: "Exceeded maximum activity nesting depth"}
	ErrParentNotFound = serrors.Descriptor{Code: 202, Status: http.StatusNotFound, Message: "Parent activity not found"}
)
