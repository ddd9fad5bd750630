package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/org-directory/modules/core/presentation/viewmodels"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/metrics"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type HealthController struct {
	app      application.Application
	basePath string
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{
		app:      app,
		basePath: "/health",
	}
}

func (c *HealthController) Key() string {
	return c.basePath
}

func (c *HealthController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(metrics.InstrumentRoutes())
	router.HandleFunc("", c.Health).Methods(http.MethodGet)
}

// Health acquires the request's session and pings it, so a 200 proves the
// whole scope lifecycle works against the database.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scope, err := composables.UseScope(ctx)
	if err != nil {
		httpapi.WriteError(w, r, serrors.Wrap(serrors.Unavailable, err))
		return
	}
	conn, err := scope.Session(ctx)
	if err != nil {
		httpapi.WriteError(w, r, serrors.Wrap(serrors.Unavailable, err).WithCause("session unavailable"))
		return
	}
	if err := conn.Ping(ctx); err != nil {
		httpapi.WriteError(w, r, serrors.Wrap(serrors.Unavailable, err).WithCause("database ping failed"))
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &viewmodels.Health{Status: "ok", ScopeID: scope.ID().String()})
}
