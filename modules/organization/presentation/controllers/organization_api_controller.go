package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/modules/organization/presentation/mappers"
	"github.com/iota-uz/org-directory/modules/organization/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/metrics"
	"github.com/iota-uz/org-directory/pkg/middleware"
	"github.com/iota-uz/org-directory/pkg/pagination"
)

type OrganizationAPIController struct {
	app           application.Application
	organizations *services.OrganizationUseCase
	basePath      string
}

func NewOrganizationAPIController(app application.Application, apiPrefix string) application.Controller {
	return &OrganizationAPIController{
		app:           app,
		organizations: app.Service(services.OrganizationUseCase{}).(*services.OrganizationUseCase),
		basePath:      apiPrefix + "/organizations",
	}
}

func (c *OrganizationAPIController) Key() string {
	return c.basePath
}

func (c *OrganizationAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(metrics.InstrumentRoutes())
	router.HandleFunc("/search/activity/descendant", c.SearchByDescendantActivity).Methods(http.MethodGet)
	router.HandleFunc("/search/activity", c.SearchByActivity).Methods(http.MethodGet)
	router.HandleFunc("/search/name", c.SearchByName).Methods(http.MethodGet)
	router.HandleFunc("/{sid}", c.GetBySID).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(metrics.InstrumentRoutes(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.RegisterOrganization).Methods(http.MethodPost)
}

func (c *OrganizationAPIController) GetBySID(w http.ResponseWriter, r *http.Request) {
	sid, err := httpapi.PathUUID(r, "sid")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	full, err := c.organizations.GetBySID(r.Context(), sid)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.FullToViewModel(full))
}

func (c *OrganizationAPIController) SearchByDescendantActivity(w http.ResponseWriter, r *http.Request) {
	var q organization.ActivityQuery
	if err := httpapi.DecodeQuery(r, &q); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	fulls, err := c.organizations.SearchByDescendantActivity(r.Context(), q.ActivityName)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.FullsToViewModels(fulls))
}

func (c *OrganizationAPIController) SearchByActivity(w http.ResponseWriter, r *http.Request) {
	var q organization.ActivityQuery
	if err := httpapi.DecodeQuery(r, &q); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	fulls, err := c.organizations.SearchByActivity(r.Context(), q.ActivityName)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.FullsToViewModels(fulls))
}

func (c *OrganizationAPIController) SearchByName(w http.ResponseWriter, r *http.Request) {
	var q organization.SearchByNameQuery
	if err := httpapi.DecodeQuery(r, &q); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	params, err := pagination.FromRequest(r)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	fulls, total, err := c.organizations.SearchByName(r.Context(), q.Name, params)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, pagination.NewResult(mappers.FullsToViewModels(fulls), total, params))
}

// RegisterOrganization answers 201 for a new organization and 200 when an existing one was extended.
func (c *OrganizationAPIController) RegisterOrganization(w http.ResponseWriter, r *http.Request) {
	var dto organization.CreateDTO
	if err := httpapi.DecodeJSON(r, &dto); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	full, created, err := c.organizations.Register(r.Context(), &dto)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	_ = httpapi.WriteJSON(w, status, mappers.FullToViewModel(full))
}
