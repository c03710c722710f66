package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks with overridable function fields
// ─────────────────────────────────────────────

type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.ID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if tokenString == "valid-u1" {
			return models.Token{UserID: "u1", Email: "u1@test.com"}, nil
		}
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	listUsersFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

type mockPlaceService struct {
	createPlaceFn       func(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error)
	getPlaceByIDFn      func(ctx context.Context, placeID string) (models.Place, error)
	getPlacesByUserIDFn func(ctx context.Context, userID string) ([]models.Place, error)
	updatePlaceFn       func(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error)
	deletePlaceFn       func(ctx context.Context, req models.DeletePlaceRequest) error
}

func (m *mockPlaceService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	return m.createPlaceFn(ctx, req)
}

func (m *mockPlaceService) GetPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	return m.getPlaceByIDFn(ctx, placeID)
}

func (m *mockPlaceService) GetPlacesByUserID(ctx context.Context, userID string) ([]models.Place, error) {
	return m.getPlacesByUserIDFn(ctx, userID)
}

func (m *mockPlaceService) UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error) {
	return m.updatePlaceFn(ctx, req)
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, req models.DeletePlaceRequest) error {
	return m.deletePlaceFn(ctx, req)
}

type mockAppInfoService struct {
	version string
	health  error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) CheckHealth(_ context.Context) error {
	return m.health
}

// recordingCleaner remembers every enqueued path.
type recordingCleaner struct {
	mu    sync.Mutex
	paths []string
}

func (c *recordingCleaner) Run(ctx context.Context) {}

func (c *recordingCleaner) Enqueue(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
	return true
}

func (c *recordingCleaner) enqueued() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testMaxImageSize = 500_000

type testEnv struct {
	handler *Handler
	router  http.Handler
	auth    *mockAuthService
	users   *mockUserService
	places  *mockPlaceService
	appInfo *mockAppInfoService
	cleaner *recordingCleaner
	dir     string
}

// newTestEnv builds a Handler over service mocks, a real image storage in a
// temporary directory and a recording cleaner.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	images, err := store.NewFileImageStorage(dir, testMaxImageSize, logger.Nop())
	require.NoError(t, err)

	env := &testEnv{
		auth:    &mockAuthService{},
		users:   &mockUserService{},
		places:  &mockPlaceService{},
		appInfo: &mockAppInfoService{version: "test-version"},
		cleaner: &recordingCleaner{},
		dir:     dir,
	}

	cfg := config.StructuredConfig{}
	cfg.Storage.Files.UploadsDir = dir
	cfg.Storage.Files.MaxImageSize = testMaxImageSize
	cfg.Server.AllowedOrigins = []string{"*"}

	env.handler = NewHandler(&service.Services{
		AuthService:    env.auth,
		UserService:    env.users,
		PlaceService:   env.places,
		AppInfoService: env.appInfo,
	}, images, env.cleaner, cfg, logger.Nop())
	env.router = env.handler.Init()

	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// pngHeader is enough of a PNG for the storage, which trusts the declared type.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// multipartBody builds a form with the given fields and, when image is not
// nil, an "image" part with the declared content type.
func multipartBody(t *testing.T, fields map[string]string, image []byte, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="pic.png"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Message
}
