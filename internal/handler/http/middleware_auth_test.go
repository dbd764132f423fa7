package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/voy/internal/service"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc", wantToken: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_RejectsRequests(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m serviceMocks)
	}{
		{name: "missing header"},
		{name: "malformed header", header: "Token abc"},
		{
			name:   "invalid token",
			header: "Bearer " + testToken,
			setup: func(m serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, called)
			assert.NotEmpty(t, decodeBody[errorResponse](t, rr).Error)
		})
	}
}

func TestAuth_StoresUserIDInContext(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, testUserID, gotUserID)

	_, ok := utils.GetUserIDFromContext(req.Context())
	assert.False(t, ok, "original request must not be mutated")
}
