package composables

import (
	"context"
	"net/http"

	"github.com/go-playground/form"

	"github.com/iota-uz/org-directory/pkg/constants"
)

var decoder = form.NewDecoder()

type Params struct {
	IP        string
	UserAgent string
	Request   *http.Request
}

func UseParams(ctx context.Context) (*Params, bool) {
	params, ok := ctx.Value(constants.ParamsKey).(*Params)
	return params, ok
}

func WithParams(ctx context.Context, params *Params) context.Context {
	return context.WithValue(ctx, constants.ParamsKey, params)
}

// UseQuery decodes the request's query string into v. Keys absent from the
// query leave the corresponding fields untouched, so v may carry defaults.
func UseQuery[T any](v T, r *http.Request) (T, error) {
	return v, decoder.Decode(v, r.URL.Query())
}
