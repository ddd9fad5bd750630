package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/modules/building/presentation/mappers"
	"github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/metrics"
)

type BuildingAPIController struct {
	app       application.Application
	buildings *services.BuildingUseCase
	basePath  string
}

func NewBuildingAPIController(app application.Application, apiPrefix string) application.Controller {
	return &BuildingAPIController{
		app:       app,
		buildings: app.Service(services.BuildingUseCase{}).(*services.BuildingUseCase),
		basePath:  apiPrefix + "/buildings",
	}
}

func (c *BuildingAPIController) Key() string {
	return c.basePath
}

func (c *BuildingAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(metrics.InstrumentRoutes())
	router.HandleFunc("/coordinates", c.GetByCoordinates).Methods(http.MethodGet)
	router.HandleFunc("/{buildingSid}/organizations", c.GetOrganizations).Methods(http.MethodGet)
}

func (c *BuildingAPIController) GetOrganizations(w http.ResponseWriter, r *http.Request) {
	sid, err := httpapi.PathUUID(r, "buildingSid")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	b, err := c.buildings.GetOrganizationsBySID(r.Context(), sid)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WithOrganizationsToViewModel(b))
}

func (c *BuildingAPIController) GetByCoordinates(w http.ResponseWriter, r *http.Request) {
	var filter building.CoordinatesFilter
	if err := httpapi.DecodeQuery(r, &filter); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	buildings, err := c.buildings.GetByCoordinates(r.Context(), filter)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WithOrganizationsToViewModels(buildings))
}
