package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
)

// Field name constants used to restrict validation of a [models.User] to a
// subset of its fields.
const (
	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword applies the full password policy (registration).
	FieldPassword = "password"

	// FieldPasswordPresent only requires a non-empty password (login).
	FieldPasswordPresent = "password_present"
)

// DateLayout is the layout of AIMA important dates.
const DateLayout = time.DateOnly

// DomainValidator implements [Validator] for the request models of the VOY API.
// Both value and pointer forms of each supported model are accepted.
type DomainValidator struct {
}

// NewDomainValidator constructs a new DomainValidator
// and returns it as the Validator interface.
func NewDomainValidator() Validator {
	return &DomainValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)

	case models.NumberUpdate:
		return v.validateNumberUpdate(value)
	case *models.NumberUpdate:
		return v.validateNumberUpdate(*value)

	case models.NewDocument:
		return v.validateNewDocument(value)
	case *models.NewDocument:
		return v.validateNewDocument(*value)

	case models.DocumentUpdate:
		return v.validateDocumentUpdate(value)
	case *models.DocumentUpdate:
		return v.validateDocumentUpdate(*value)

	case models.Note:
		return v.validateNote(value)
	case *models.Note:
		return v.validateNote(*value)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value)

	case models.Category:
		return v.validateCategory(value)
	case *models.Category:
		return v.validateCategory(*value)

	case models.QuickAccess:
		return v.validateQuickAccess(value)
	case *models.QuickAccess:
		return v.validateQuickAccess(*value)

	case models.ChecklistToggle:
		return v.validateChecklistToggle(value)
	case *models.ChecklistToggle:
		return v.validateChecklistToggle(*value)

	case models.ImportantDate:
		return v.validateImportantDate(value)
	case *models.ImportantDate:
		return v.validateImportantDate(*value)

	case models.AimaProcessUpdate:
		return v.validateAimaProcessUpdate(value)
	case *models.AimaProcessUpdate:
		return v.validateAimaProcessUpdate(*value)

	case models.AimaStepToggle:
		return v.validateStepToggle(value)
	case *models.AimaStepToggle:
		return v.validateStepToggle(*value)

	case models.AimaProcessTypeSelect:
		return v.validateProcessTypeSelect(value)
	case *models.AimaProcessTypeSelect:
		return v.validateProcessTypeSelect(*value)

	case models.AimaProtocol:
		return v.validateProtocol(value)
	case *models.AimaProtocol:
		return v.validateProtocol(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateUser validates account credentials.
//
// Default validated fields (when none specified): Email, Password.
func (v *DomainValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := passwordPolicy(user.Password); err != nil {
				return err
			}
		case FieldPasswordPresent:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateChangePassword(req models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" {
		return ErrEmptyPassword
	}
	return passwordPolicy(req.NewPassword)
}

func (v *DomainValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Language != nil && !isLanguage(*update.Language) {
		return ErrInvalidLanguage
	}
	if update.UserProfile != nil && !isUserProfileKind(*update.UserProfile) {
		return ErrInvalidUserProfile
	}
	if update.Theme != nil && !isTheme(*update.Theme) {
		return ErrInvalidTheme
	}
	return nil
}

func (v *DomainValidator) validateNumberUpdate(update models.NumberUpdate) error {
	for _, name := range models.ProtectedNumbers {
		if update.Field == name {
			return nil
		}
	}
	return ErrInvalidNumberField
}

func (v *DomainValidator) validateNewDocument(doc models.NewDocument) error {
	if isBlank(doc.Name) {
		return ErrEmptyName
	}
	if isBlank(doc.Category) {
		return ErrEmptyCategory
	}
	if doc.File != nil && (doc.File.Content == nil || doc.File.Size == 0) {
		return ErrEmptyFile
	}
	return nil
}

func (v *DomainValidator) validateDocumentUpdate(update models.DocumentUpdate) error {
	if update.Name == nil && update.Category == nil {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil && isBlank(*update.Name) {
		return ErrEmptyName
	}
	if update.Category != nil && isBlank(*update.Category) {
		return ErrEmptyCategory
	}
	return nil
}

func (v *DomainValidator) validateNote(note models.Note) error {
	if isBlank(note.Title) {
		return ErrEmptyTitle
	}
	return nil
}

func (v *DomainValidator) validateNoteUpdate(update models.NoteUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil && isBlank(*update.Title) {
		return ErrEmptyTitle
	}
	return nil
}

func (v *DomainValidator) validateCategory(category models.Category) error {
	if isBlank(category.Label) {
		return ErrEmptyLabel
	}
	return nil
}

func (v *DomainValidator) validateQuickAccess(qa models.QuickAccess) error {
	for i, id := range qa.DocumentIDs {
		if !utils.IsUUID(id) {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidDocumentID)
		}
	}
	return nil
}

func (v *DomainValidator) validateChecklistToggle(toggle models.ChecklistToggle) error {
	if isBlank(toggle.DocumentName) {
		return ErrEmptyDocumentName
	}
	return nil
}

func (v *DomainValidator) validateImportantDate(date models.ImportantDate) error {
	if isBlank(date.Label) {
		return ErrEmptyLabel
	}
	if _, err := time.Parse(DateLayout, date.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (v *DomainValidator) validateAimaProcessUpdate(update models.AimaProcessUpdate) error {
	if update.ProcessType == nil && update.CompletedSteps == nil && update.ImportantDates == nil &&
		update.Protocols == nil && update.Notes == nil {
		return ErrNoFieldsToUpdate
	}
	if update.ImportantDates != nil {
		for i, date := range *update.ImportantDates {
			if err := v.validateImportantDate(date); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
	}
	return nil
}

func (v *DomainValidator) validateStepToggle(toggle models.AimaStepToggle) error {
	if isBlank(toggle.StepID) {
		return ErrEmptyStepID
	}
	return nil
}

func (v *DomainValidator) validateProcessTypeSelect(selection models.AimaProcessTypeSelect) error {
	if isBlank(selection.ProcessType) {
		return ErrEmptyProcessType
	}
	return nil
}

func (v *DomainValidator) validateProtocol(protocol models.AimaProtocol) error {
	if isBlank(protocol.Protocol) {
		return ErrEmptyProtocol
	}
	return nil
}

func passwordPolicy(password string) error {
	result := ValidatePassword(password)
	if !result.IsValid {
		return &PasswordError{Errors: result.Errors}
	}
	return nil
}

func isEmail(email string) bool {
	if email == "" || strings.TrimSpace(email) != email {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isLanguage(l models.Language) bool {
	return l == models.LanguagePortuguese || l == models.LanguageEnglish
}

func isUserProfileKind(k models.UserProfileKind) bool {
	switch k {
	case models.UserProfileRecent, models.UserProfileResident, models.UserProfileLegalizing:
		return true
	}
	return false
}

func isTheme(t models.Theme) bool {
	return t == models.ThemeLight || t == models.ThemeDark
}
