package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ichthyo-signup/internal/config"
	"ichthyo-signup/internal/handler"
	"ichthyo-signup/internal/service"
)

type fakeSignup struct{}

func (fakeSignup) Signup(ctx context.Context, in service.SignupInput) (service.SignupOutput, error) {
	return service.SignupOutput{UserID: "u1", AccessToken: "token"}, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>signup app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("wasm"), 0o644))

	cfg := &config.Config{
		StaticDir:       dir,
		RateLimitSignup: config.RateLimitConfig{Requests: 1, Interval: time.Minute},
		AllowedOrigins:  []string{"https://app.example"},
	}
	return New(Deps{
		Config:   cfg,
		Signup:   handler.NewSignupHandler(fakeSignup{}, nil),
		Registry: prometheus.NewRegistry(),
	})
}

func TestRouter(t *testing.T) {
	srv := newTestServer(t)

	do := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	payload := []byte(`{"name":"Ada","email":"ada@example.com","password":"engine"}`)
	rec = do(http.MethodPost, "/api/auth/signup", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = do(http.MethodPost, "/api/auth/signup", payload)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "signup route is rate limited")

	for _, path := range []string{"/", "/signup", "/login"} {
		rec = do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "signup app", path)
	}

	rec = do(http.MethodGet, "/main.wasm", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wasm", rec.Body.String())

	rec = do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `signup_http_requests_total{method="POST",path="/api/auth/signup",status="201"} 1`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/signup", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SignupLimitIsPerClient(t *testing.T) {
	srv := newTestServer(t)
	payload := []byte(`{"name":"Ada","email":"ada@example.com","password":"engine"}`)

	post := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec.Code
	}

	for _, addr := range []string{"10.0.0.1:40000", "10.0.0.2:40000"} {
		assert.Equal(t, http.StatusCreated, post(addr), addr)
	}
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:40001"))
}

func TestRouter_ServesShippedAssets(t *testing.T) {
	srv := New(Deps{
		Config:   &config.Config{StaticDir: filepath.Join("..", "..", "web")},
		Signup:   handler.NewSignupHandler(fakeSignup{}, nil),
		Registry: prometheus.NewRegistry(),
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/styles.css"`)

	rec = get("/styles.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	for _, class := range []string{".icon", ".bg-blue-500", `.aria-disabled\:opacity-50`, ".text-red-500"} {
		assert.Contains(t, rec.Body.String(), class)
	}
}
