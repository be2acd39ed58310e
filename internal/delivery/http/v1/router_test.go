package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-contact/config"
	v1 "portfolio-contact/internal/delivery/http/v1"
	"portfolio-contact/internal/domain"
	"portfolio-contact/internal/usecase"
	"portfolio-contact/pkg/email"
	"portfolio-contact/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) SendContactMessage(ctx context.Context, req *domain.SubmissionPayload) error {
	return m.Called(ctx, req).Error(0)
}

type stubHealth struct{}

func (stubHealth) Check(context.Context) map[string]string {
	return map[string]string{"status": "ok", "mail": "configured"}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(uc domain.ContactUsecase, cfg *config.Config) *gin.Engine {
	if cfg == nil {
		cfg = &config.Config{GinMode: gin.TestMode}
	}
	return v1.NewRouter(v1.RouterDeps{ContactUC: uc, HealthUC: stubHealth{}, Config: cfg})
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmitContact(t *testing.T) {
	const payload = `{"name":"Ada","email":"ada@example.com","message":"Hello"}`

	for _, path := range []string{"/.netlify/functions/contact", "/v1/contact"} {
		t.Run("Should return 200 on "+path, func(t *testing.T) {
			uc := new(MockContactUsecase)
			uc.On("SendContactMessage", mock.Anything, &domain.SubmissionPayload{
				Name: "Ada", Email: "ada@example.com", Message: "Hello",
			}).Return(nil)

			w := do(newRouter(uc, nil), http.MethodPost, path, payload, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, map[string]string{"message": "Email sent successfully!"}, decode(t, w))
			uc.AssertExpectations(t)
		})
	}

	t.Run("Should return 500 with the provider error", func(t *testing.T) {
		uc := new(MockContactUsecase)
		uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		w := do(newRouter(uc, nil), http.MethodPost, "/.netlify/functions/contact", payload, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, map[string]string{"error": "connection refused"}, decode(t, w))
	})

	t.Run("Should return 500 without calling the usecase on malformed JSON", func(t *testing.T) {
		uc := new(MockContactUsecase)

		for _, body := range []string{`{"name":`, `not json`, ``, `null`, ` null `, `[]`} {
			w := do(newRouter(uc, nil), http.MethodPost, "/.netlify/functions/contact", body, nil)

			assert.Equal(t, http.StatusInternalServerError, w.Code, body)
			assert.NotEmpty(t, decode(t, w)["error"], body)
		}
		uc.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a null body with 500", func(t *testing.T) {
		uc := new(MockContactUsecase)

		w := do(newRouter(uc, nil), http.MethodPost, "/.netlify/functions/contact", `null`, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, map[string]string{"error": "request body must be a JSON object, got null"}, decode(t, w))
		uc.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
	})

	t.Run("Should relay non-string fields as text", func(t *testing.T) {
		uc := new(MockContactUsecase)
		uc.On("SendContactMessage", mock.Anything, &domain.SubmissionPayload{
			Name: "42", Email: "ada@example.com", Message: "true",
		}).Return(nil)

		w := do(newRouter(uc, nil), http.MethodPost, "/.netlify/functions/contact",
			`{"name": 42, "email": "ada@example.com", "message": true}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Should return 400 when strict validation rejects the payload", func(t *testing.T) {
		uc := new(MockContactUsecase)
		uc.On("SendContactMessage", mock.Anything, mock.Anything).
			Return(errors.Join(domain.ErrInvalidSubmission, errors.New("Email: is not a valid email address")))

		w := do(newRouter(uc, nil), http.MethodPost, "/v1/contact", `{"name":"Ada","email":"nope","message":"Hi"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "Email: is not a valid email address")
	})

	t.Run("Should report missing credentials as 500", func(t *testing.T) {
		uc := usecase.NewContactUsecase(email.NewSMTPSender("smtp.gmail.com", "587", "", ""), nil)

		w := do(newRouter(uc, nil), http.MethodPost, "/.netlify/functions/contact", payload, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, map[string]string{"error": email.ErrNotConfigured.Error()}, decode(t, w))
	})

	t.Run("Should dispatch every duplicate submission", func(t *testing.T) {
		uc := new(MockContactUsecase)
		uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil)
		r := newRouter(uc, nil)

		for i := 0; i < 3; i++ {
			w := do(r, http.MethodPost, "/.netlify/functions/contact", payload, nil)
			assert.Equal(t, http.StatusOK, w.Code)
		}
		uc.AssertNumberOfCalls(t, "SendContactMessage", 3)
	})
}

func TestRouterAmbient(t *testing.T) {
	t.Run("Health reports mail status", func(t *testing.T) {
		w := do(newRouter(new(MockContactUsecase), nil), http.MethodGet, "/v1/health", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]string{"status": "ok", "mail": "configured"}, decode(t, w))
	})

	t.Run("Request id is generated or echoed", func(t *testing.T) {
		r := newRouter(new(MockContactUsecase), nil)

		w := do(r, http.MethodGet, "/v1/health", "", nil)
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)

		w = do(r, http.MethodGet, "/v1/health", "", map[string]string{"X-Request-ID": "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("Request id reaches the usecase context", func(t *testing.T) {
		uc := new(MockContactUsecase)
		uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			assert.Equal(t, "abc-123", logger.RequestID(args.Get(0).(context.Context)))
		})

		w := do(newRouter(uc, nil), http.MethodPost, "/v1/contact",
			`{"name":"Ada","email":"ada@example.com","message":"Hi"}`, map[string]string{"X-Request-ID": "abc-123"})

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertNumberOfCalls(t, "SendContactMessage", 1)
	})

	t.Run("Preflight from a listed origin is accepted", func(t *testing.T) {
		cfg := &config.Config{GinMode: gin.ReleaseMode, AllowedOrigins: []string{"https://portfolio.example"}}
		r := newRouter(new(MockContactUsecase), cfg)

		w := do(r, http.MethodOptions, "/.netlify/functions/contact", "", map[string]string{"Origin": "https://portfolio.example"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

		w = do(r, http.MethodOptions, "/.netlify/functions/contact", "", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Metrics expose request latency per route", func(t *testing.T) {
		r := newRouter(new(MockContactUsecase), nil)
		do(r, http.MethodGet, "/v1/health", "", nil)

		w := do(r, http.MethodGet, "/metrics", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `http_request_duration_seconds_count{method="GET",path="/v1/health",status="200"}`)
	})

	t.Run("Unknown routes are JSON 404s without a static dir", func(t *testing.T) {
		w := do(newRouter(new(MockContactUsecase), nil), http.MethodGet, "/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]string{"error": "Not Found"}, decode(t, w))
	})

	t.Run("Static site is served from STATIC_DIR", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Portfolio</h1>"), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "index.js"), []byte("console.log(1)"), 0o644))

		r := newRouter(new(MockContactUsecase), &config.Config{GinMode: gin.TestMode, StaticDir: dir})

		w := do(r, http.MethodGet, "/", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Portfolio")
		assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))

		w = do(r, http.MethodGet, "/js/index.js", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "console.log(1)", w.Body.String())

		w = do(r, http.MethodDelete, "/js/index.js", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
