package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTooManyLoginAttempts = errors.New("too many login attempts")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrDocumentHasNoFile = errors.New("document has no file attached")
)
