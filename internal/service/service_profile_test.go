package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/mock"
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

func TestGetProfile_DecryptsNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)
	cipher := crypto.NewFieldCipher()
	svc := NewProfileService(profiles, cipher, validators.NewDomainValidator(), logger.Nop())
	ctx := context.Background()

	nif, err := cipher.Encrypt(ctx, "123456789", testUserID)
	require.NoError(t, err)
	foreign, err := cipher.Encrypt(ctx, "AB123456", "someone-else")
	require.NoError(t, err)

	profiles.EXPECT().GetProfile(ctx, testUserID).Return(models.Profile{
		UserID:   testUserID,
		Language: models.LanguagePortuguese,
		NIF:      &nif,
		Passport: &foreign,
	}, nil)

	got, err := svc.GetProfile(ctx, testUserID)

	require.NoError(t, err)
	require.NotNil(t, got.NIF)
	assert.Equal(t, "123456789", *got.NIF)
	require.NotNil(t, got.Passport)
	assert.Equal(t, crypto.ProtectedPlaceholder, *got.Passport)
	assert.Nil(t, got.NISS)
	assert.Nil(t, got.SNS)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)
	svc := NewProfileService(profiles, mock.NewMockCipher(ctrl), validators.NewDomainValidator(), logger.Nop())

	profiles.EXPECT().GetProfile(gomock.Any(), testUserID).Return(models.Profile{}, store.ErrProfileNotFound)

	_, err := svc.GetProfile(context.Background(), testUserID)

	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestUpdateProfile_EncryptsNumbersBeforeStoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewProfileService(profiles, cipher, validators.NewDomainValidator(), logger.Nop())

	cipher.EXPECT().Encrypt(gomock.Any(), "123456789", testUserID).Return("sealed-nif", nil)
	cipher.EXPECT().Encrypt(gomock.Any(), "", testUserID).Return("", nil)
	profiles.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.ProfileUpdate) (models.Profile, error) {
			assert.Equal(t, "sealed-nif", *update.NIF)
			assert.Equal(t, "", *update.SNS)
			assert.Nil(t, update.NISS)
			assert.Equal(t, models.ThemeDark, *update.Theme)
			return models.Profile{UserID: testUserID, NIF: ptr("sealed-nif"), Theme: models.ThemeDark}, nil
		})
	cipher.EXPECT().Decrypt(gomock.Any(), "sealed-nif", testUserID).Return("123456789")

	got, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{
		UserID: testUserID,
		NIF:    ptr("123456789"),
		SNS:    ptr(""),
		Theme:  ptr(models.ThemeDark),
	})

	require.NoError(t, err)
	assert.Equal(t, "123456789", *got.NIF)
	assert.Equal(t, models.ThemeDark, got.Theme)
}

func TestUpdateProfile_EncryptionFailureAbortsSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewProfileService(profiles, cipher, validators.NewDomainValidator(), logger.Nop())

	cipher.EXPECT().Encrypt(gomock.Any(), "999", testUserID).Return("", crypto.ErrEncryptionFailed)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: testUserID, NISS: ptr("999")})

	assert.ErrorIs(t, err, crypto.ErrEncryptionFailed)
}

func TestUpdateProfile_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewProfileService(mock.NewMockProfileRepository(ctrl), mock.NewMockCipher(ctrl), validators.NewDomainValidator(), logger.Nop())

	tests := []struct {
		name    string
		update  models.ProfileUpdate
		wantErr error
	}{
		{name: "empty", update: models.ProfileUpdate{UserID: testUserID}, wantErr: validators.ErrNoFieldsToUpdate},
		{name: "language", update: models.ProfileUpdate{UserID: testUserID, Language: ptr(models.Language("fr"))}, wantErr: validators.ErrInvalidLanguage},
		{name: "theme", update: models.ProfileUpdate{UserID: testUserID, Theme: ptr(models.Theme("blue"))}, wantErr: validators.ErrInvalidTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewProfileService(profiles, cipher, validators.NewDomainValidator(), logger.Nop())

	cipher.EXPECT().Encrypt(gomock.Any(), "P1234567", testUserID).Return("sealed-passport", nil)
	profiles.EXPECT().UpdateProfile(gomock.Any(), models.ProfileUpdate{UserID: testUserID, Passport: ptr("sealed-passport")}).
		Return(models.Profile{UserID: testUserID, Passport: ptr("sealed-passport")}, nil)
	cipher.EXPECT().Decrypt(gomock.Any(), "sealed-passport", testUserID).Return("P1234567")

	got, err := svc.UpdateNumber(context.Background(), testUserID, models.NumberUpdate{Field: models.NumberPassport, Value: "P1234567"})

	require.NoError(t, err)
	assert.Equal(t, "P1234567", *got.Passport)
}

func TestUpdateNumber_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewProfileService(mock.NewMockProfileRepository(ctrl), mock.NewMockCipher(ctrl), validators.NewDomainValidator(), logger.Nop())

	_, err := svc.UpdateNumber(context.Background(), testUserID, models.NumberUpdate{Field: "cpf", Value: "1"})

	assert.ErrorIs(t, err, validators.ErrInvalidNumberField)
}

func TestUpdateProfile_ValidatorIsConsulted(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mock.NewMockValidator(ctrl)
	svc := NewProfileService(mock.NewMockProfileRepository(ctrl), mock.NewMockCipher(ctrl), validator, logger.Nop())
	rejected := errors.New("rejected")

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(rejected)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: testUserID, Theme: ptr(models.ThemeLight)})

	assert.ErrorIs(t, err, rejected)
}
