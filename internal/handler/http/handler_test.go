package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/mock"
	"github.com/MKhiriev/voy/internal/service"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID     = "0190b6f4-7c1e-7b4a-9a57-3f1c2d4e5f60"
	testDocumentID = "0190b6f5-0000-7000-8000-000000000001"
	testToken      = "header.payload.signature"
)

type serviceMocks struct {
	auth        *mock.MockAuthService
	profile     *mock.MockProfileService
	documents   *mock.MockDocumentService
	notes       *mock.MockNoteService
	categories  *mock.MockCategoryService
	quickAccess *mock.MockQuickAccessService
	checklist   *mock.MockChecklistService
	aima        *mock.MockAimaService
	catalog     *mock.MockCatalogService
	appInfo     *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:        mock.NewMockAuthService(ctrl),
		profile:     mock.NewMockProfileService(ctrl),
		documents:   mock.NewMockDocumentService(ctrl),
		notes:       mock.NewMockNoteService(ctrl),
		categories:  mock.NewMockCategoryService(ctrl),
		quickAccess: mock.NewMockQuickAccessService(ctrl),
		checklist:   mock.NewMockChecklistService(ctrl),
		aima:        mock.NewMockAimaService(ctrl),
		catalog:     mock.NewMockCatalogService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:        m.auth,
		ProfileService:     m.profile,
		DocumentService:    m.documents,
		NoteService:        m.notes,
		CategoryService:    m.categories,
		QuickAccessService: m.quickAccess,
		ChecklistService:   m.checklist,
		AimaService:        m.aima,
		CatalogService:     m.catalog,
		AppInfoService:     m.appInfo,
	}

	return NewHandler(services, config.Server{MaxUploadSize: 1 << 10}, logger.Nop()), m
}

// expectAuthorized lets the auth middleware accept testToken as testUserID.
func (m serviceMocks) expectAuthorized() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil)
}

// serve runs the request through the full router. Requests to protected
// routes carry testToken.
func serve(h *Handler, method, target string, body io.Reader, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	log := logger.Nop()

	h := NewHandler(services, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.Equal(t, int64(defaultMaxUploadSize), h.maxUploadSize)
}

// ─────────────────────────────────────────────
// writeError / statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: errors.Join(service.ErrInvalidDataProvided, validators.ErrInvalidEmail), want: http.StatusBadRequest},
		{name: "validation", err: validators.ErrEmptyTitle, want: http.StatusBadRequest},
		{name: "credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "current password", err: service.ErrWrongPassword, want: http.StatusForbidden},
		{name: "throttled", err: service.ErrTooManyLoginAttempts, want: http.StatusTooManyRequests},
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{name: "missing note", err: store.ErrNoteNotFound, want: http.StatusNotFound},
		{name: "no file", err: service.ErrDocumentHasNoFile, want: http.StatusNotFound},
		{name: "too large", err: ErrFileTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "unsupported validation", err: errors.Join(service.ErrInvalidDataProvided, validators.ErrUnsupportedType), want: http.StatusInternalServerError},
		{name: "sql", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_ListsPasswordViolations(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	err := &validators.PasswordError{Errors: []string{"A senha deve ter pelo menos 8 caracteres"}}

	writeError(rr, req, errors.Join(service.ErrInvalidDataProvided, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody[errorResponse](t, rr)
	assert.Equal(t, []string{"A senha deve ter pelo menos 8 caracteres"}, body.Errors)
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeBody[errorResponse](t, rr).Error)
}

func TestListOf(t *testing.T) {
	assert.Equal(t, []string{}, listOf[string](nil))
	assert.Equal(t, []int{1}, listOf([]int{1}))
}
