package building

import (
	"net/http"

	"github.com/iota-uz/org-directory/pkg/serrors"
)

var ErrNotFound = serrors.Descriptor{Code: 100, Status: http.StatusNotFound, Message: "Building not found"}
