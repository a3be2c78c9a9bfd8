package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"directory/config"
	apimiddleware "directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/response"
	"directory/internal/delivery/api/router"
	"directory/internal/delivery/api/router/handler"
	"directory/internal/domain/entity"
	"directory/internal/domain/service"
	"directory/internal/infra/auth"
	"directory/internal/infra/persistence/memory"
	"directory/internal/infra/qrcode"
	"directory/internal/seed"
	"directory/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testServer struct {
	echo   *echo.Echo
	seeded *seed.Result
	tokens service.TokenService
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()

	cfg := &config.Config{
		Auth:   &config.AuthConfig{Enabled: authEnabled},
		Geo:    &config.GeoConfig{MaxRadiusKm: 500},
		QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "10KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	buildingUC := impl.NewBuildingService(impl.BuildingServiceParams{
		BuildingRepo: store.BuildingRepository(),
		Config:       cfg,
		Logger:       logger,
	})
	activityUC := impl.NewActivityService(impl.ActivityServiceParams{
		TxManager:    store.TransactionManager(),
		ActivityRepo: store.ActivityRepository(),
		Logger:       logger,
	})
	orgUC := impl.NewOrganizationService(impl.OrganizationServiceParams{
		TxManager:    store.TransactionManager(),
		OrgRepo:      store.OrganizationRepository(),
		BuildingRepo: store.BuildingRepository(),
		ActivityRepo: store.ActivityRepository(),
		QRService:    qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
		Config:       cfg,
		Logger:       logger,
	})

	seeded, err := seed.Load(context.Background(), seed.Usecases{
		Buildings:     buildingUC,
		Activities:    activityUC,
		Organizations: orgUC,
	})
	require.NoError(t, err)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	routes := router.NewRouter(router.RouterParams{
		BuildingHandler:     handler.NewBuildingHandler(handler.BuildingHandlerParams{BuildingUC: buildingUC, Logger: logger}),
		ActivityHandler:     handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: activityUC, Logger: logger}),
		OrganizationHandler: handler.NewOrganizationHandler(handler.OrganizationHandlerParams{OrganizationUC: orgUC, Logger: logger}),
		AuthMiddleware:      apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokens, Config: cfg}),
	})

	return &testServer{
		echo:   newEcho(cfg, logger, routes),
		seeded: seeded,
		tokens: tokens,
	}
}

func (s *testServer) do(t *testing.T, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeOrganizations(t *testing.T, rec *httptest.ResponseRecorder) []handler.OrganizationResponse {
	t.Helper()

	var orgs []handler.OrganizationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &orgs))

	return orgs
}

func names(orgs []handler.OrganizationResponse) []string {
	out := make([]string, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, org.Name)
	}

	return out
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestHealthAndRequestID(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/health", "", map[string]string{"X-Request-Id": "req-123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))

	env := decode(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestBuildings(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/api/v1/buildings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var buildings []handler.BuildingResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &buildings))
	assert.Len(t, buildings, 5)

	rec = srv.do(t, http.MethodGet, "/api/v1/buildings/"+id(srv.seeded.Buildings[seed.BuildingMira]), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/buildings/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BUILDING_NOT_FOUND", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/buildings", `{"address":"ул. Новая 1","latitude":0,"longitude":0}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/buildings", `{"address":"ул. Новая 1","latitude":95}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"latitude": "must be at most 90", "longitude": "is required"}, env.Error.Details)
}

func TestBuildingSearch(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/v1/buildings/search/radius", `{"latitude":55.7558,"longitude":37.6173,"radius_km":1}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var buildings []handler.BuildingResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &buildings))
	assert.Len(t, buildings, 2)

	rec = srv.do(t, http.MethodPost, "/api/v1/buildings/search/rectangle", `{"min_lat":59.9,"max_lat":60,"min_lon":30.3,"max_lon":30.4}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &buildings))
	assert.Len(t, buildings, 2)

	rec = srv.do(t, http.MethodPost, "/api/v1/buildings/search/rectangle", `{"min_lat":60,"max_lat":59,"min_lon":30.3,"max_lon":30.4}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivities(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/api/v1/activities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var roots []handler.ActivityResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &roots))
	require.Len(t, roots, 2)
	assert.Len(t, roots[0].Children, 2)

	parts := srv.seeded.Activities["Запчасти"]
	rec = srv.do(t, http.MethodGet, "/api/v1/activities/"+id(parts), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var activity handler.ActivityResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &activity))
	assert.Equal(t, 2, activity.Level)
	require.Len(t, activity.Children, 1)
	assert.Equal(t, "Аксессуары", activity.Children[0].Name)

	body := `{"name":"Чехлы","parent_id":` + id(srv.seeded.Activities["Аксессуары"]) + `}`
	rec = srv.do(t, http.MethodPost, "/api/v1/activities", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MAX_DEPTH_EXCEEDED", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/activities", `{"name":"Сирота","parent_id":9999}`, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PARENT_ACTIVITY_NOT_FOUND", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/activities", `{"name":"Фрукты","parent_id":`+id(srv.seeded.Activities["Еда"])+`}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &activity))
	assert.Equal(t, 2, activity.Level)
}

func TestOrganizationsByActivity(t *testing.T) {
	srv := newTestServer(t, false)
	food := id(srv.seeded.Activities["Еда"])

	rec := srv.do(t, http.MethodGet, "/api/v1/organizations/activity/"+food, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeOrganizations(t, rec), 4)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/activity/"+food+"?include_children=false", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{`ИП Иванов "Продукты"`}, names(decodeOrganizations(t, rec)))

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/activity/"+food+"?include_children=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/activity/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ACTIVITY_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestOrganizationLookups(t *testing.T) {
	srv := newTestServer(t, false)

	meatTrade := srv.seeded.Organizations[`ООО "МясоТорг"`]
	rec := srv.do(t, http.MethodGet, "/api/v1/organizations/"+id(meatTrade), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var org handler.OrganizationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &org))
	assert.Equal(t, []string{"8-800-555-35-35"}, org.Phones)
	require.NotNil(t, org.Building)
	assert.Equal(t, srv.seeded.Buildings[seed.BuildingBlukher], org.Building.ID)
	assert.Len(t, org.Activities, 2)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORGANIZATION_NOT_FOUND", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/building/"+id(srv.seeded.Buildings[seed.BuildingLenina]), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{`ООО "Рога и Копыта"`, `ООО "Молочный Рай"`}, names(decodeOrganizations(t, rec)))

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/name?name="+url.QueryEscape("мясо"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{`ООО "МясоТорг"`}, names(decodeOrganizations(t, rec)))

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/name", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/"+id(meatTrade)+"/card", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestOrganizationGeoSearch(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/v1/organizations/search/radius", `{"latitude":55.7558,"longitude":37.6173,"radius_km":1}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{
		`ООО "Рога и Копыта"`,
		`ООО "МясоТорг"`,
		`ООО "Молочный Рай"`,
	}, names(decodeOrganizations(t, rec)))

	rec = srv.do(t, http.MethodPost, "/api/v1/organizations/search/radius", `{"latitude":55.7558,"longitude":37.6173,"radius_km":0}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"radius_km": "must be greater than 0"}, decode(t, rec).Error.Details)

	rec = srv.do(t, http.MethodPost, "/api/v1/organizations/search/rectangle", `{"min_lat":55.7558,"max_lat":55.7558,"min_lon":37.6173,"max_lon":37.6173}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeOrganizations(t, rec), 2)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/geo?lat=59.9343&lon=30.3351&radius_km=5&min_lat=0&max_lat=1&min_lon=0&max_lon=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeOrganizations(t, rec), 2)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/geo?lat=59.9343", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_GEO_QUERY", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/geo?lat=north&lon=1&radius_km=1", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"lat": "must be a number"}, decode(t, rec).Error.Details)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/geo?lat=0&lon=0&radius_km=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestCreateOrganization(t *testing.T) {
	srv := newTestServer(t, false)

	body := `{"name":"ООО Новое","phones":["1-111","2-222"],"building_id":` + id(srv.seeded.Buildings[seed.BuildingNevsky]) +
		`,"activity_ids":[` + id(srv.seeded.Activities["Сыры"]) + `]}`
	rec := srv.do(t, http.MethodPost, "/api/v1/organizations", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var org handler.OrganizationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &org))
	assert.Equal(t, []string{"1-111", "2-222"}, org.Phones)
	require.Len(t, org.Activities, 1)
	assert.Equal(t, "Сыры", org.Activities[0].Name)

	body = `{"name":"ООО Призрак","building_id":` + id(srv.seeded.Buildings[seed.BuildingNevsky]) + `,"activity_ids":[9999]}`
	rec = srv.do(t, http.MethodPost, "/api/v1/organizations", body, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REFERENCED_ACTIVITY_NOT_FOUND", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/organizations", `{"name":"x","building_id":9999}`, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BUILDING_NOT_FOUND", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/organizations", `{"name":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestCreateOrganization_RejectsBlankPhones(t *testing.T) {
	srv := newTestServer(t, false)
	building := id(srv.seeded.Buildings[seed.BuildingNevsky])

	rec := srv.do(t, http.MethodPost, "/api/v1/organizations",
		`{"name":"ООО Пустой","phones":["1-111",""],"building_id":`+building+`}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"phones[1]": "is required"}, body.Error.Details)

	rec = srv.do(t, http.MethodPost, "/api/v1/organizations",
		`{"name":"ООО Пробел","phones":["   "],"building_id":`+building+`}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "phones[0] is required", body.Error.Details)

	rec = srv.do(t, http.MethodGet, "/api/v1/organizations/search/name?name="+url.QueryEscape("ООО П"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestWriteRoutesRequireAdminToken(t *testing.T) {
	srv := newTestServer(t, true)
	body := `{"address":"ул. Новая 1","latitude":10,"longitude":10}`

	rec := srv.do(t, http.MethodPost, "/api/v1/buildings", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/buildings", body, map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	readerToken, err := srv.tokens.GenerateToken("reader-1", []string{entity.RoleReader.String()})
	require.NoError(t, err)
	rec = srv.do(t, http.MethodPost, "/api/v1/buildings", body, map[string]string{"Authorization": "Bearer " + readerToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := srv.tokens.GenerateToken("admin-1", []string{entity.RoleAdmin.String()})
	require.NoError(t, err)
	rec = srv.do(t, http.MethodPost, "/api/v1/buildings", body, map[string]string{"Authorization": "Bearer " + adminToken})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/buildings", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, false)

	srv.do(t, http.MethodGet, "/api/v1/buildings", "", nil)
	srv.do(t, http.MethodGet, "/api/v1/organizations/9999", "", nil)
	srv.do(t, http.MethodPost, "/api/v1/buildings/search/radius", `{"latitude":55.7558,"longitude":37.6173,"radius_km":1}`, nil)

	rec := srv.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `directory_http_requests_total{method="GET",route="/api/v1/buildings",status="200"}`)
	assert.Contains(t, body, `directory_http_requests_total{method="GET",route="/api/v1/organizations/:id",status="404"}`)
	assert.Contains(t, body, `directory_geo_search_candidates_count{mode="radius"}`)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/api/v1/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}
