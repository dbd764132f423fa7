package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrWeakPassword       = errors.New("password does not meet the requirements")
	ErrInvalidLanguage    = errors.New("invalid language")
	ErrInvalidUserProfile = errors.New("invalid user profile")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrInvalidNumberField = errors.New("invalid protected number field")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyCategory      = errors.New("category is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyLabel         = errors.New("label is required")
	ErrInvalidDocumentID  = errors.New("invalid document id")
	ErrEmptyDocumentName  = errors.New("document name is required")
	ErrEmptyStepID        = errors.New("step id is required")
	ErrEmptyProtocol      = errors.New("protocol is required")
	ErrEmptyProcessType   = errors.New("process type is required")
	ErrInvalidDate        = errors.New("date must use the YYYY-MM-DD layout")
	ErrEmptyFile          = errors.New("uploaded file is empty")
)

// PasswordError lists every rule a password breaks, in the user's language.
// It matches [ErrWeakPassword] with errors.Is.
type PasswordError struct {
	Errors []string
}

func (e *PasswordError) Error() string {
	return ErrWeakPassword.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *PasswordError) Unwrap() error {
	return ErrWeakPassword
}
