package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	activitypersistence "github.com/iota-uz/org-directory/modules/activity/infrastructure/persistence"
	activityservices "github.com/iota-uz/org-directory/modules/activity/services"
	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	buildingpersistence "github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	buildingservices "github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/modules/organization/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/organization/presentation/controllers"
	"github.com/iota-uz/org-directory/modules/organization/presentation/viewmodels"
	"github.com/iota-uz/org-directory/modules/organization/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/httpapi"
	"github.com/iota-uz/org-directory/pkg/middleware"
	"github.com/iota-uz/org-directory/pkg/pagination"
	"github.com/iota-uz/org-directory/pkg/session"
	"github.com/iota-uz/org-directory/pkg/session/sessiontest"
)

const apiPrefix = "/api/v1"

type harness struct {
	router     *mux.Router
	registry   *session.Registry
	ctx        context.Context
	activities *activityservices.ActivityService
	buildings  *buildingservices.BuildingService
	usecase    *services.OrganizationUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := logrus.New()
	bus := eventbus.NewEventPublisher(logger)
	registry := session.NewRegistry(sessiontest.NewProvider())

	activityRepo := activitypersistence.NewInmemActivityRepository()
	buildingRepo := buildingpersistence.NewInmemBuildingRepository()
	repos := persistence.NewInmemRepositories(buildingRepo, activityRepo)
	activities := activityservices.NewActivityService(activityRepo, bus, nil)
	buildings := buildingservices.NewBuildingService(buildingRepo, bus)
	orgs := services.NewOrganizationService(repos.Organizations, repos.Phones, repos.Addresses, repos.ActivityLinks, bus)
	usecase := services.NewOrganizationUseCase(activities, buildings, orgs)

	app := application.New(&application.ApplicationOptions{Sessions: registry, EventBus: bus, Logger: logger})
	app.RegisterServices(activities, buildings, orgs, usecase)

	r := mux.NewRouter()
	r.Use(middleware.WithSessionScope(registry))
	controllers.NewOrganizationAPIController(app, apiPrefix).Register(r)

	ctx, _, _ := sessiontest.ScopedContext(t)
	return &harness{router: r, registry: registry, ctx: ctx, activities: activities, buildings: buildings, usecase: usecase}
}

func (h *harness) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) activity(t *testing.T, name string, parent *activity.Activity) activity.Activity {
	t.Helper()
	dto := &activity.CreateDTO{Name: name}
	if parent != nil {
		sid := parent.SID()
		dto.ParentSID = &sid
	}
	a, err := h.activities.Create(h.ctx, dto)
	require.NoError(t, err)
	return a
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []viewmodels.OrganizationFull {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out []viewmodels.OrganizationFull
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func names(vms []viewmodels.OrganizationFull) []string {
	out := make([]string, 0, len(vms))
	for _, vm := range vms {
		out = append(out, vm.Name)
	}
	return out
}

func TestOrganizationAPI_GetBySIDShape(t *testing.T) {
	h := newHarness(t)
	food := h.activity(t, "Еда", nil)
	b, err := h.buildings.Create(h.ctx, &building.CreateDTO{Address: "г. Москва, ул. Ленина 1", Latitude: 55.75, Longitude: 37.61})
	require.NoError(t, err)
	buildingSID := b.SID()
	full, _, err := h.usecase.Register(h.ctx, &organization.CreateDTO{
		Name:         "ООО Ромашка",
		PhoneNumbers: []string{"+7-495-123-45-67"},
		BuildingSID:  &buildingSID,
		Office:       "Офис 1",
		ActivitySIDs: []uuid.UUID{food.SID()},
	})
	require.NoError(t, err)
	sid := full.Organization.SID().String()

	rec := h.do(t, http.MethodGet, apiPrefix+"/organizations/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"sid": "`+sid+`",
		"name": "ООО Ромашка",
		"address": {
			"organizationSid": "`+sid+`",
			"buildingSid": "`+b.SID().String()+`",
			"office": "Офис 1",
			"building": {"sid": "`+b.SID().String()+`", "address": "г. Москва, ул. Ленина 1", "latitude": 55.75, "longitude": 37.61}
		},
		"activities": [{"sid": "`+food.SID().String()+`", "name": "Еда", "parentSid": null}],
		"phoneNumbers": [{"organizationSid": "`+sid+`", "phone": "+7-495-123-45-67"}]
	}`, rec.Body.String())
	assert.Equal(t, 0, h.registry.Active())
}

func TestOrganizationAPI_BareOrganizationShape(t *testing.T) {
	h := newHarness(t)
	full, _, err := h.usecase.Register(h.ctx, &organization.CreateDTO{Name: "ООО Пусто"})
	require.NoError(t, err)
	sid := full.Organization.SID().String()

	rec := h.do(t, http.MethodGet, apiPrefix+"/organizations/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sid":"`+sid+`","name":"ООО Пусто","address":null,"activities":[],"phoneNumbers":[]}`, rec.Body.String())
}

func TestOrganizationAPI_ActivitySearches(t *testing.T) {
	h := newHarness(t)
	root := h.activity(t, "Автомобили", nil)
	trucks := h.activity(t, "Грузовые", &root)
	for name, a := range map[string]activity.Activity{"ООО Корень": root, "ООО Грузовик": trucks} {
		_, _, err := h.usecase.Register(h.ctx, &organization.CreateDTO{Name: name, ActivitySIDs: []uuid.UUID{a.SID()}})
		require.NoError(t, err)
	}

	q := url.QueryEscape("Автомобили")
	descendant := decodeList(t, h.do(t, http.MethodGet, apiPrefix+"/organizations/search/activity/descendant?activityName="+q, ""))
	assert.Equal(t, []string{"ООО Грузовик", "ООО Корень"}, names(descendant))

	direct := decodeList(t, h.do(t, http.MethodGet, apiPrefix+"/organizations/search/activity?activityName="+q, ""))
	assert.Equal(t, []string{"ООО Корень"}, names(direct))

	rec := h.do(t, http.MethodGet, apiPrefix+"/organizations/search/activity/descendant?activityName=nothing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrganizationAPI_SearchByNamePaginates(t *testing.T) {
	h := newHarness(t)
	for _, name := range []string{"ООО Автоцентр Юг", "ООО Автоцентр Север", "ООО Автоцентр Запад"} {
		_, _, err := h.usecase.Register(h.ctx, &organization.CreateDTO{Name: name})
		require.NoError(t, err)
	}

	rec := h.do(t, http.MethodGet, apiPrefix+"/organizations/search/name?name="+url.QueryEscape("автоцентр")+"&limit=2&offset=1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page pagination.Result[viewmodels.OrganizationFull]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 1, page.Offset)
	assert.Equal(t, []string{"ООО Автоцентр Север", "ООО Автоцентр Юг"}, names(page.Items))
}

func TestOrganizationAPI_Register(t *testing.T) {
	h := newHarness(t)
	food := h.activity(t, "Еда", nil)
	body := `{"name":"ООО Ромашка","phoneNumbers":["+7-495-123-45-67"],"activitySids":["` + food.SID().String() + `"]}`

	rec := h.do(t, http.MethodPost, apiPrefix+"/organizations", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created viewmodels.OrganizationFull
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created.Activities, 1)

	rec = h.do(t, http.MethodPost, apiPrefix+"/organizations", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var again viewmodels.OrganizationFull
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, created.SID, again.SID)
	assert.Len(t, again.PhoneNumbers, 1)
}

func TestOrganizationAPI_Errors(t *testing.T) {
	h := newHarness(t)
	missing := "8f7d1c38-5a41-4c8e-9d59-0b9a3b7cf001"

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   int
	}{
		{"malformed sid", http.MethodGet, "/organizations/not-a-uuid", "", http.StatusUnprocessableEntity, 2},
		{"unknown sid", http.MethodGet, "/organizations/" + missing, "", http.StatusNotFound, 300},
		{"missing activityName", http.MethodGet, "/organizations/search/activity", "", http.StatusUnprocessableEntity, 2},
		{"unknown direct activity", http.MethodGet, "/organizations/search/activity?activityName=nothing", "", http.StatusNotFound, 200},
		{"missing name", http.MethodGet, "/organizations/search/name", "", http.StatusUnprocessableEntity, 2},
		{"negative limit", http.MethodGet, "/organizations/search/name?name=a&limit=-1", "", http.StatusUnprocessableEntity, 4},
		{"empty name on register", http.MethodPost, "/organizations", `{"name":""}`, http.StatusUnprocessableEntity, 2},
		{"unknown building", http.MethodPost, "/organizations", `{"name":"x","buildingSid":"` + missing + `"}`, http.StatusNotFound, 100},
		{"unknown activity", http.MethodPost, "/organizations", `{"name":"x","activitySids":["` + missing + `"]}`, http.StatusNotFound, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := h.do(t, tc.method, apiPrefix+tc.path, tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			var env httpapi.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tc.code, env.Code)
		})
	}
}
