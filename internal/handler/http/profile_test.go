package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestGetProfile(t *testing.T) {
	h, m := newTestHandler(t)
	profile := models.Profile{
		UserID:   testUserID,
		Language: models.LanguagePortuguese,
		Theme:    models.ThemeLight,
		NIF:      ptr("123456789"),
		Passport: ptr(crypto.ProtectedPlaceholder),
	}

	m.expectAuthorized()
	m.profile.EXPECT().GetProfile(gomock.Any(), testUserID).Return(profile, nil)

	rr := serve(h, http.MethodGet, "/api/profile", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[map[string]any](t, rr)
	assert.Equal(t, "123456789", got["nif"])
	assert.Equal(t, crypto.ProtectedPlaceholder, got["passport"])
	assert.Nil(t, got["niss"])
}

func TestGetProfile_NotFound(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.profile.EXPECT().GetProfile(gomock.Any(), testUserID).Return(models.Profile{}, store.ErrProfileNotFound)

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/profile", nil, true).Code)
}

func TestUpdateProfile_ScopesUpdateToCaller(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.profile.EXPECT().UpdateProfile(gomock.Any(), models.ProfileUpdate{
		UserID: testUserID,
		Theme:  ptr(models.ThemeDark),
	}).Return(models.Profile{UserID: testUserID, Theme: models.ThemeDark}, nil)

	rr := serve(h, http.MethodPatch, "/api/profile", jsonBody(t, map[string]any{"theme": "dark", "user_id": "someone-else"}), true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ThemeDark, decodeBody[models.Profile](t, rr).Theme)
}

func TestUpdateProfile_Invalid(t *testing.T) {
	h, m := newTestHandler(t)

	m.expectAuthorized()
	m.profile.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(models.Profile{}, validators.ErrInvalidTheme)

	rr := serve(h, http.MethodPatch, "/api/profile", jsonBody(t, map[string]any{"theme": "blue"}), true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, validators.ErrInvalidTheme.Error(), decodeBody[errorResponse](t, rr).Error)
}

func TestUpdateNumber(t *testing.T) {
	h, m := newTestHandler(t)
	update := models.NumberUpdate{Field: models.NumberNISS, Value: "12345678901"}

	m.expectAuthorized()
	m.profile.EXPECT().UpdateNumber(gomock.Any(), testUserID, update).
		Return(models.Profile{UserID: testUserID, NISS: ptr("12345678901")}, nil)

	rr := serve(h, http.MethodPut, "/api/profile/numbers", jsonBody(t, update), true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "12345678901", *decodeBody[models.Profile](t, rr).NISS)
}
