// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewDomainValidator(t *testing.T) {
	require.NotNil(t, NewDomainValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewDomainValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
}

func TestValidate_User(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{"valid registration", models.User{Email: "ana@voy.pt", Password: "Segura2026"}, nil, nil},
		{"invalid email", models.User{Email: "ana", Password: "Segura2026"}, nil, ErrInvalidEmail},
		{"email with name", models.User{Email: "Ana <ana@voy.pt>", Password: "Segura2026"}, nil, ErrInvalidEmail},
		{"email with spaces", models.User{Email: " ana@voy.pt", Password: "Segura2026"}, nil, ErrInvalidEmail},
		{"weak password", models.User{Email: "ana@voy.pt", Password: "123"}, nil, ErrWeakPassword},
		{"login only needs a password", models.User{Email: "ana@voy.pt", Password: "123"}, []string{FieldEmail, FieldPasswordPresent}, nil},
		{"login empty password", models.User{Email: "ana@voy.pt"}, []string{FieldEmail, FieldPasswordPresent}, ErrEmptyPassword},
		{"unknown field", models.User{}, []string{"nickname"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			errPtr := v.Validate(ctx, &tt.user, tt.fields...)
			assert.Equal(t, err, errPtr)
		})
	}
}

func TestValidate_UserPasswordErrorsListed(t *testing.T) {
	err := NewDomainValidator().Validate(context.Background(), models.User{Email: "ana@voy.pt", Password: "abc"})

	var pe *PasswordError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{MsgPasswordTooShort, MsgPasswordNoDigit}, pe.Errors)
}

func TestValidate_ChangePassword(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "NovaSenha1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{NewPassword: "NovaSenha1"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, &models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "qwerty"}), ErrWeakPassword)
}

func TestValidate_ProfileUpdate(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.ProfileUpdate
		wantErr error
	}{
		{"empty", models.ProfileUpdate{}, ErrNoFieldsToUpdate},
		{"language", models.ProfileUpdate{Language: ptr(models.LanguageEnglish)}, nil},
		{"bad language", models.ProfileUpdate{Language: ptr(models.Language("fr"))}, ErrInvalidLanguage},
		{"profile", models.ProfileUpdate{UserProfile: ptr(models.UserProfileLegalizing)}, nil},
		{"bad profile", models.ProfileUpdate{UserProfile: ptr(models.UserProfileKind("tourist"))}, ErrInvalidUserProfile},
		{"theme", models.ProfileUpdate{Theme: ptr(models.ThemeDark)}, nil},
		{"bad theme", models.ProfileUpdate{Theme: ptr(models.Theme("blue"))}, ErrInvalidTheme},
		{"numbers only", models.ProfileUpdate{NIF: ptr("123456789")}, nil},
		{"flags only", models.ProfileUpdate{BiometricEnabled: ptr(false)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NumberUpdate(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	for _, field := range models.ProtectedNumbers {
		assert.NoError(t, v.Validate(ctx, models.NumberUpdate{Field: field, Value: "1"}))
	}
	assert.ErrorIs(t, v.Validate(ctx, models.NumberUpdate{Field: "cpf"}), ErrInvalidNumberField)
}

func TestValidate_Documents(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	file := &models.DocumentFile{FileName: "a.pdf", Size: 3, Content: strings.NewReader("pdf")}

	assert.NoError(t, v.Validate(ctx, models.NewDocument{Name: "Passaporte", Category: "identidade"}))
	assert.NoError(t, v.Validate(ctx, &models.NewDocument{Name: "Passaporte", Category: "identidade", File: file}))
	assert.ErrorIs(t, v.Validate(ctx, models.NewDocument{Name: "  ", Category: "identidade"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.NewDocument{Name: "Passaporte"}), ErrEmptyCategory)
	assert.ErrorIs(t, v.Validate(ctx, models.NewDocument{Name: "P", Category: "c", File: &models.DocumentFile{FileName: "a.pdf"}}), ErrEmptyFile)

	assert.ErrorIs(t, v.Validate(ctx, models.DocumentUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.DocumentUpdate{Name: ptr("")}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.DocumentUpdate{Category: ptr(" ")}), ErrEmptyCategory)
	assert.NoError(t, v.Validate(ctx, models.DocumentUpdate{Name: ptr("Visto")}))
}

func TestValidate_Notes(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Note{Title: "Marcar AIMA"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Note{Title: " "}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.NoteUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.NoteUpdate{Title: ptr("")}), ErrEmptyTitle)
	assert.NoError(t, v.Validate(ctx, &models.NoteUpdate{IsImportant: ptr(true)}))
}

func TestValidate_CategoriesAndQuickAccess(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Category{Label: "Saúde"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Category{Label: "  "}), ErrEmptyLabel)

	assert.NoError(t, v.Validate(ctx, models.QuickAccess{}))
	assert.NoError(t, v.Validate(ctx, models.QuickAccess{DocumentIDs: []string{"0192f5c4-7d1e-7b3a-9c2d-4e5f6a7b8c9d"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.QuickAccess{DocumentIDs: []string{"0192f5c4-7d1e-7b3a-9c2d-4e5f6a7b8c9d", "nope"}}), ErrInvalidDocumentID)
}

func TestValidate_Checklist(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ChecklistToggle{DocumentName: "Passaporte válido"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ChecklistToggle{}), ErrEmptyDocumentName)
}

func TestValidate_Aima(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ImportantDate{Label: "Entrevista", Date: "2026-03-15"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ImportantDate{Date: "2026-03-15"}), ErrEmptyLabel)
	assert.ErrorIs(t, v.Validate(ctx, models.ImportantDate{Label: "Entrevista", Date: "15/03/2026"}), ErrInvalidDate)
	assert.ErrorIs(t, v.Validate(ctx, models.ImportantDate{Label: "Entrevista", Date: "2026-02-30"}), ErrInvalidDate)

	assert.ErrorIs(t, v.Validate(ctx, models.AimaProcessUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.AimaProcessUpdate{ProcessType: ptr("")}))
	assert.NoError(t, v.Validate(ctx, models.AimaProcessUpdate{CompletedSteps: &[]string{}}))
	assert.ErrorIs(t, v.Validate(ctx, models.AimaProcessUpdate{
		ImportantDates: &[]models.ImportantDate{{Label: "ok", Date: "2026-01-01"}, {Label: "bad", Date: "amanhã"}},
	}), ErrInvalidDate)

	assert.NoError(t, v.Validate(ctx, models.AimaStepToggle{StepID: "agendamento"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AimaStepToggle{}), ErrEmptyStepID)
	assert.NoError(t, v.Validate(ctx, &models.AimaProtocol{Protocol: "AIMA-2026-001"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AimaProtocol{Protocol: " "}), ErrEmptyProtocol)

	assert.NoError(t, v.Validate(ctx, models.AimaProcessTypeSelect{ProcessType: "residencia"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.AimaProcessTypeSelect{}), ErrEmptyProcessType)
}
