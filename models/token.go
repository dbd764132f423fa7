package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptySubject = errors.New("empty subject in token")

// Token is an issued or verified access token. The claims double as the
// parse target for jwt.ParseWithClaims.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent to clients.
	SignedString string `json:"-"`

	// UserID caches the subject once the token has been verified.
	UserID string `json:"-"`
}

// GetUserID returns the subject claim, the account id.
func (t *Token) GetUserID() (string, error) {
	if t.Subject == "" {
		return "", ErrEmptySubject
	}
	return t.Subject, nil
}

// ExpiresIn is the remaining lifetime at now, zero when expired or unbounded.
func (t *Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	return max(t.ExpiresAt.Sub(now), 0)
}

func (t *Token) String() string {
	return t.SignedString
}
