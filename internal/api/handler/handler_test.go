package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "s3nha-forte"
)

type fakeRetention struct {
	triggered int
}

func (f *fakeRetention) GetStatus() map[string]any {
	return map[string]any{"enabled": true, "retention_days": 90}
}

func (f *fakeRetention) TriggerManualPurge(_ context.Context) {
	f.triggered++
}

type testEnv struct {
	router    router.Router
	retention *fakeRetention
	auth      authenticating.Authenticator
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log.SetupTestLogger()

	sales := repository.NewSalesRepository([]domain.SalesRecord{
		{OrderID: "1", OrderDate: day(2023, time.January, 5), Region: "East", Product: "Widget", TotalPrice: 100, ShippingCost: 10},
		{OrderID: "2", OrderDate: day(2023, time.February, 10), Region: "West", Product: "Widget", TotalPrice: 50, ShippingCost: 20},
	})
	analyzer := analyzing.NewService(sales, 10)
	collector := feedback.NewService(repository.NewMemoryFeedbackRepository())

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	auth := authenticating.NewService(config.Auth{
		Secret:            "test-secret",
		TokenTTL:          time.Hour,
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: string(hash),
	})

	retention := &fakeRetention{}

	rt := router.New(
		router.WithRoutes(Healthcheck(analyzer)...),
		router.WithRoutes(Analytics(analyzer)...),
		router.WithRoutes(Feedback(collector, auth)...),
		router.WithRoutes(Authentication(auth)...),
		router.WithRoutes(CronJobs(retention, auth)...),
	)

	return &testEnv{router: rt, retention: retention, auth: auth}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	resp, err := e.auth.Login(testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	return resp.Token
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthcheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[HealthcheckResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 2, body.Records)
	assert.NotEmpty(t, body.Time)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)

	t.Run("sem filtros", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[domain.DashboardResponse](t, rec)
		assert.Equal(t, 150.0, body.TotalSales)
		assert.Equal(t, 120.0, body.TotalProfit)
		assert.Equal(t, 2, body.TotalOrders)
		assert.Equal(t, []string{"2023-01", "2023-02"}, body.Months)
		assert.Equal(t, []float64{100, 50}, body.MonthlySales)
		assert.Equal(t, []string{"East", "West"}, body.Regions)
		require.NotNil(t, body.TopProduct)
		assert.Equal(t, "Widget", *body.TopProduct)
		assert.Len(t, body.TableData, 2)
		assert.NotEmpty(t, body.AISummary)
	})

	t.Run("filtro por região", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard?region=East", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[domain.DashboardResponse](t, rec)
		assert.Equal(t, 100.0, body.TotalSales)
		assert.Equal(t, 90.0, body.TotalProfit)
		assert.Equal(t, []string{"East", "West"}, body.Regions)
		assert.Equal(t, []string{"East"}, body.RegionNames)
	})

	t.Run("intervalo vazio", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=2024-01-01&end_date=2024-12-31", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[domain.DashboardResponse](t, rec)
		assert.Zero(t, body.TotalSales)
		assert.Zero(t, body.TotalOrders)
		assert.Nil(t, body.ShippingRatio)
		assert.Nil(t, body.TopProduct)
		assert.Empty(t, body.AutoInsights)
		assert.Empty(t, body.TableData)
	})

	t.Run("data inválida", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard?end_date=31/02/2023", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, apiErrors.ErrInvalidFormat, body["code"])
		details, ok := body["details"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, analyzing.ParamEndDate, details["param"])
	})
}

func TestDashboard_DatasetNotLoaded(t *testing.T) {
	log.SetupTestLogger()
	rt := router.New(router.WithRoutes(Analytics(analyzing.NewService(nil, 10))...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegions(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/regions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"East", "West"}, decodeBody[RegionsResponse](t, rec).Regions)
}

func TestSubmitFeedback(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{
			name:        "formulário",
			contentType: "application/x-www-form-urlencoded",
			body: url.Values{
				"name":    {"Ana"},
				"email":   {"ana@example.com"},
				"purpose": {"bug"},
				"message": {"O gráfico não carrega"},
			}.Encode(),
			wantStatus: http.StatusCreated,
		},
		{
			name:        "json",
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"Bruno","message":"Sugestão"}`,
			wantStatus:  http.StatusCreated,
		},
		{
			name:        "formulário vazio é aceito",
			contentType: "application/x-www-form-urlencoded",
			body:        "",
			wantStatus:  http.StatusCreated,
		},
		{
			name:        "json malformado",
			contentType: "application/json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			req := httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := env.do(req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				body := decodeBody[FeedbackSubmitResponse](t, rec)
				assert.Equal(t, "success", body.Status)
				assert.NotEmpty(t, body.ID)
			}
		})
	}
}

func TestListFeedback(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range []string{"primeiro", "segundo"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(`{"name":"`+name+`"}`))
		req.Header.Set("Content-Type", "application/json")
		require.Equal(t, http.StatusCreated, env.do(req).Code)
	}

	t.Run("sem token", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/feedback", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("com token de administrador", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/feedback?limit=1", nil)
		req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
		rec := env.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[FeedbackListResponse](t, rec)
		assert.Equal(t, 1, body.Count)
	})

	t.Run("limit inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/feedback?limit=abc", nil)
		req.Header.Set("Authorization", "Bearer "+env.adminToken(t))
		rec := env.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "sucesso", body: `{"email":"admin@example.com","password":"s3nha-forte"}`, wantStatus: http.StatusOK},
		{name: "senha incorreta", body: `{"email":"admin@example.com","password":"x"}`, wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "campos ausentes", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "corpo inválido", body: `not json`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody[apiErrors.APIError](t, rec).Code)
				return
			}
			assert.NotEmpty(t, decodeBody[domain.LoginResponse](t, rec).Token)
		})
	}
}

func TestCronJobs(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	t.Run("status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := env.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decodeBody[map[string]any](t, rec), CronJobTypeFeedbackRetention)
	})

	t.Run("execução manual", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/run/feedback-retention", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := env.do(req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, env.retention.triggered)
	})

	t.Run("tipo inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/run/unknown", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := env.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/v2/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeBody[apiErrors.APIError](t, rec).Code)
}
