package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/modules/activity/presentation/mappers"
	"github.com/iota-uz/org-directory/modules/activity/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/metrics"
	"github.com/iota-uz/org-directory/pkg/middleware"
)

type DescendantsQuery struct {
	ActivityName string `form:"activityName" validate:"required"`
}

type ActivityAPIController struct {
	app        application.Application
	activities *services.ActivityService
	basePath   string
}

func NewActivityAPIController(app application.Application, apiPrefix string) application.Controller {
	return &ActivityAPIController{
		app:        app,
		activities: app.Service(services.ActivityService{}).(*services.ActivityService),
		basePath:   apiPrefix + "/activities",
	}
}

func (c *ActivityAPIController) Key() string {
	return c.basePath
}

func (c *ActivityAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(metrics.InstrumentRoutes())
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/descendants", c.Descendants).Methods(http.MethodGet)
	router.HandleFunc("/{sid}", c.GetBySID).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(metrics.InstrumentRoutes(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{sid}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/{sid}", c.Delete).Methods(http.MethodDelete)
}

func (c *ActivityAPIController) List(w http.ResponseWriter, r *http.Request) {
	all, err := c.activities.GetAll(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ActivitiesToViewModels(all))
}

func (c *ActivityAPIController) Descendants(w http.ResponseWriter, r *http.Request) {
	var q DescendantsQuery
	if err := httpapi.DecodeQuery(r, &q); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	sids, err := c.activities.GetAllDescendantActivitySIDs(r.Context(), q.ActivityName)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.DescendantsToViewModel(q.ActivityName, sids))
}

func (c *ActivityAPIController) GetBySID(w http.ResponseWriter, r *http.Request) {
	sid, err := httpapi.PathUUID(r, "sid")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	a, err := c.activities.GetBySID(r.Context(), sid)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ActivityToViewModel(a))
}

func (c *ActivityAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto activity.CreateDTO
	if err := httpapi.DecodeJSON(r, &dto); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	created, err := c.activities.Create(r.Context(), &dto)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.ActivityToViewModel(created))
}

func (c *ActivityAPIController) Update(w http.ResponseWriter, r *http.Request) {
	sid, err := httpapi.PathUUID(r, "sid")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	var dto activity.UpdateDTO
	if err := httpapi.DecodeJSON(r, &dto); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	updated, err := c.activities.Update(r.Context(), sid, &dto)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ActivityToViewModel(updated))
}

func (c *ActivityAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	sid, err := httpapi.PathUUID(r, "sid")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	deleted, err := c.activities.Delete(r.Context(), sid)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ActivityToViewModel(deleted))
}
