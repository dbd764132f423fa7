package crypto

import "errors"

var (
	ErrEmptyUserID          = errors.New("empty user id")
	ErrMalformedPayload     = errors.New("malformed encrypted payload")
	ErrPayloadTooShort      = errors.New("encrypted payload too short")
	ErrAuthenticationFailed = errors.New("encrypted payload authentication failed")
	ErrEncryptionFailed     = errors.New("field encryption failed")
)
