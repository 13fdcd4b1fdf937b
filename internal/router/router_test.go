package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/form-demo/internal/config"
	"github.com/deppfellow/form-demo/internal/handler"
	"github.com/deppfellow/form-demo/internal/server"
	"github.com/deppfellow/form-demo/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, service.NewServices(s)))
}

func do(r *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_FormScenarios(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "buttons approve",
			path:       "/api/demo/buttons",
			body:       `{"username":"bob1","password":"abc123","email":"a@b.co","option":"approve"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ok","code":200}`,
		},
		{
			name:       "buttons reject",
			path:       "/api/demo/buttons",
			body:       `{"username":"bob1","password":"abc123","email":"a@b.co","option":"reject"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"bad_request","code":400}`,
		},
		{
			name:       "buttons pending",
			path:       "/api/demo/buttons",
			body:       `{"username":"bob1","password":"abc123","email":"a@b.co","option":"PENDING"}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"server_error","code":500}`,
		},
		{
			name:       "customer missing terms",
			path:       "/api/demo/customer",
			body:       `{"title":"Mr","firstName":"Al","lastName":"Bo","ageRange":2}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"You must agree to terms","code":400}`,
		},
		{
			name:       "product short sku",
			path:       "/api/demo/product",
			body:       `{"productName":"Lamp","category":"lighting","sku":"AB12","quantity":1,"priceRange":1,"inStock":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"SKU must be uppercase alphanumeric with dash (min 5 chars)","code":400}`,
		},
		{
			name:       "employee bad id",
			path:       "/api/demo/employee",
			body:       `{"employeeId":"EMP-123","department":"engineering","email":"jane@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Employee ID must match format: EMP-12345","code":400}`,
		},
		{
			name:       "forced server error ignores fields",
			path:       "/api/demo/customer",
			body:       `{"firstName":"1","forceCode":500}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"server_error","code":500}`,
		},
		{
			name:       "forced ok on empty form",
			path:       "/api/demo/employee",
			body:       `{"forceCode":200}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ok","code":200}`,
		},
		{
			name:       "unsupported force code is ignored",
			path:       "/api/demo/buttons",
			body:       `{"forceCode":404}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Required","code":400}`,
		},
		{
			name:       "malformed json",
			path:       "/api/demo/product",
			body:       `{"sku":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"bad_request","code":400}`,
		},
		{
			name:       "not a json object",
			path:       "/api/demo/customer",
			body:       `["title"]`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"bad_request","code":400}`,
		},
		{
			name:       "forced ok with unconvertible field",
			path:       "/api/demo/customer",
			body:       `{"forceCode":200,"ageRange":"x"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ok","code":200}`,
		},
		{
			name:       "forced code as string",
			path:       "/api/demo/product",
			body:       `{"forceCode":"500","quantity":[]}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"server_error","code":500}`,
		},
		{
			name:       "numeric string age range",
			path:       "/api/demo/customer",
			body:       `{"title":"Mr","firstName":"Al","lastName":"Bo","ageRange":"2","agreeToTerms":true}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ok","code":200}`,
		},
		{
			name:       "integral float age range and string bool",
			path:       "/api/demo/customer",
			body:       `{"title":"Mr","firstName":"Al","lastName":"Bo","ageRange":2.0,"agreeToTerms":"yes"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ok","code":200}`,
		},
		{
			name:       "unconvertible field fails its rule",
			path:       "/api/demo/customer",
			body:       `{"title":"Mr","firstName":"Al","lastName":"Bo","ageRange":"two","agreeToTerms":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Please select an age range","code":400}`,
		},
		{
			name:       "fractional age range fails its rule",
			path:       "/api/demo/customer",
			body:       `{"title":"Mr","firstName":"Al","lastName":"Bo","ageRange":2.5,"agreeToTerms":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Please select an age range","code":400}`,
		},
		{
			name:       "number where text is expected",
			path:       "/api/demo/buttons",
			body:       `{"username":1234}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Required","code":400}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_SystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/api/demo/unknown", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"not_found","code":404}`, rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		do(r, http.MethodPost, "/api/demo/buttons", `{"forceCode":400}`)

		rec := do(r, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `formdemo_form_submissions_total{code="400",form="buttons"} 1`)
	})

	t.Run("openapi", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/openapi.json", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/demo/employee")
	})

	t.Run("docs", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/docs", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	})
}

func TestRouter_MetricsDisabled(t *testing.T) {
	log := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Observability.Metrics.Enabled = false

	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)
	r := NewRouter(s, handler.NewHandlers(s, service.NewServices(s)))

	rec := do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/demo/buttons", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestRouter_CORSSimpleRequest(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestRouter_ConcurrentSubmissions(t *testing.T) {
	r := newTestRouter(t)

	bodies := map[string]string{
		`{"username":"bob1","password":"abc123","email":"a@b.co"}`: `{"message":"ok","code":200}`,
		`{"username":"bob!"}`:                  `{"message":"Please enter a valid username","code":400}`,
		`{"username":"bob1","password":"abc"}`: `{"message":"Please enter a valid password","code":400}`,
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for body, want := range bodies {
			body, want := body, want
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := do(r, http.MethodPost, "/api/demo/buttons", body)
				assert.JSONEq(t, want, rec.Body.String())
			}()
		}
	}
	wg.Wait()
}
