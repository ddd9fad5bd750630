package organization

import (
	"net/http"

	"github.com/iota-uz/org-directory/pkg/serrors"
)

var ErrNotFound = serrors.Descriptor{Code: 300, Status: http.StatusNotFound, Message: "Organization not found"}
