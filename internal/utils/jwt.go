package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/voy/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

const bearerScheme = "Bearer"

// GenerateJWTToken signs an HS256 token for userID. Besides iss, sub, iat
// and exp it carries a random jti so that two tokens issued within the same
// second still differ.
//
//	token, err := utils.GenerateJWTToken("voy", userID, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, token.RegisteredClaims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}
	token.SignedString = signed

	return token, nil
}

// ValidateAndParseJWTToken verifies the HS256 signature, the issuer and the
// expiry, and requires a subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var token models.Token

	_, err := jwt.ParseWithClaims(tokenString, &token.RegisteredClaims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	token.UserID = userID
	token.SignedString = tokenString
	return token, nil
}

// ParseBearerToken returns the credentials of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
