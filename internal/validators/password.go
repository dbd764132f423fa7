package validators

import (
	"strings"
	"unicode/utf16"
)

const minPasswordLength = 8

// Password rule messages, shown to the user as they are.
const (
	MsgPasswordTooShort = "A senha deve ter pelo menos 8 caracteres"
	MsgPasswordNoLetter = "A senha deve conter pelo menos 1 letra"
	MsgPasswordNoDigit  = "A senha deve conter pelo menos 1 número"
	MsgPasswordTooWeak  = "Esta senha é muito comum. Escolha uma senha mais forte"
)

var weakPasswords = map[string]struct{}{
	"123456": {}, "123456789": {}, "12345678": {}, "password": {}, "password1": {},
	"111111": {}, "12345": {}, "1234567": {}, "qwerty": {}, "abc123": {},
	"senha123": {}, "admin123": {}, "letmein": {}, "welcome": {}, "monkey": {},
}

// PasswordStrength grades a password for the strength meter.
type PasswordStrength string

const (
	StrengthWeak   PasswordStrength = "weak"
	StrengthMedium PasswordStrength = "medium"
	StrengthStrong PasswordStrength = "strong"
)

// PasswordValidationResult holds every rule violation of a password.
type PasswordValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// ValidatePassword checks the account password rules and reports all
// violations at once.
func ValidatePassword(password string) PasswordValidationResult {
	errs := make([]string, 0, 4)

	if passwordLength(password) < minPasswordLength {
		errs = append(errs, MsgPasswordTooShort)
	}
	if !strings.ContainsFunc(password, isASCIILetter) {
		errs = append(errs, MsgPasswordNoLetter)
	}
	if !strings.ContainsFunc(password, isASCIIDigit) {
		errs = append(errs, MsgPasswordNoDigit)
	}
	if _, weak := weakPasswords[strings.ToLower(password)]; weak {
		errs = append(errs, MsgPasswordTooWeak)
	}

	return PasswordValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// GetPasswordStrength scores a password: one point each for reaching 8 and 12
// characters, mixing lower and upper case, containing a digit, and containing
// a symbol. Up to two points is weak, up to four is medium.
func GetPasswordStrength(password string) PasswordStrength {
	length := passwordLength(password)
	if length < minPasswordLength {
		return StrengthWeak
	}

	score := 1
	if length >= 12 {
		score++
	}
	if strings.ContainsFunc(password, isASCIILower) && strings.ContainsFunc(password, isASCIIUpper) {
		score++
	}
	if strings.ContainsFunc(password, isASCIIDigit) {
		score++
	}
	if strings.ContainsFunc(password, isSymbol) {
		score++
	}

	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

// passwordLength counts UTF-16 code units, the unit browsers use for the same
// rule, so a character outside the BMP counts as two.
func passwordLength(password string) int {
	n := 0
	for _, r := range password {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}

func isASCIILower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isASCIIUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isASCIIDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isASCIILetter(r rune) bool { return isASCIILower(r) || isASCIIUpper(r) }
func isSymbol(r rune) bool      { return !isASCIILetter(r) && !isASCIIDigit(r) }
