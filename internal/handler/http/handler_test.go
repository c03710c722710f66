package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cleaner := &recordingCleaner{}

	cfg := config.StructuredConfig{}
	cfg.Storage.Files.UploadsDir = "uploads/images"
	cfg.Storage.Files.MaxImageSize = 1234
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}

	h := NewHandler(svc, nil, cleaner, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, cleaner, h.cleaner)
	assert.Equal(t, "uploads/images", h.uploadsDir)
	assert.Equal(t, int64(1234), h.maxImageSize)
	assert.Equal(t, []string{"http://localhost:3000"}, h.allowedOrigins)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/api/health"},
	{http.MethodGet, "/api/users"},
	{http.MethodPost, "/api/users/signup"},
	{http.MethodPost, "/api/users/login"},
	{http.MethodGet, "/api/places/p1"},
	{http.MethodGet, "/api/places/user/u1"},
	// auth middleware answers 403, which still proves the route exists
	{http.MethodPost, "/api/places"},
	{http.MethodPatch, "/api/places/p1"},
	{http.MethodDelete, "/api/places/p1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.users.listUsersFn = okUsers
	env.places.getPlaceByIDFn = okPlace
	env.places.getPlacesByUserIDFn = okPlaces

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := env.do(httptest.NewRequest(tc.method, tc.path, nil))

			if rr.Code == http.StatusNotFound {
				assert.NotEqual(t, app.MsgRouteNotFound, decodeMessage(t, rr), "route not found: %s %s", tc.method, tc.path)
			}
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []routeCase{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/nowhere"},
		{http.MethodPut, "/api/places/p1"},
		{http.MethodPost, "/api/health"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := env.do(httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, app.MsgRouteNotFound, decodeMessage(t, rr))
		})
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/places/p1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	rr := env.do(req)

	assert.Less(t, rr.Code, 300, "preflight must not be rejected by authentication")
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	env := newTestEnv(t)
	env.users.listUsersFn = okUsers

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	env := newTestEnv(t)
	env.users.listUsersFn = func(_ context.Context) ([]models.User, error) {
		panic("boom")
	}

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test-version", resp.Version)

	env.appInfo.health = service.ErrDatabaseUnavailable
	rr = env.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
}

// ─────────────────────────────────────────────
// Static images
// ─────────────────────────────────────────────

func TestStaticImages(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "a.png"), pngHeader, 0o644))

	rr := env.do(httptest.NewRequest(http.MethodGet, "/uploads/images/a.png", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, pngHeader, rr.Body.Bytes())

	rr = env.do(httptest.NewRequest(http.MethodGet, "/uploads/images/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(httptest.NewRequest(http.MethodGet, "/uploads/images/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code, "directory listing must not be served")
}

// ─────────────────────────────────────────────
// Error responder
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unknown")))
	assert.Equal(t, http.StatusBadRequest, statusFromError(service.ErrInvalidInput))
}
