package models

import "time"

// User represents an account entity used for authentication and authorization.
// The password travels only on the way in (registration, login) and is never
// persisted or serialized back.
type User struct {
	// UserID is the account UUID. It is also the key material of the field
	// cipher, so it must never change once protected values were written.
	UserID string `json:"-"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password is the plain password received from the client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the HMAC-SHA256 of Password computed with the server key.
	PasswordHash string `json:"-"`

	// DisplayName is an optional name set at registration time. It seeds the
	// profile's display_name.
	DisplayName string `json:"display_name,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ChangePasswordRequest is the body of the password change endpoint.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PasswordCheckRequest is the body of the password check endpoint.
type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// PasswordCheckResponse reports password policy violations together with the
// estimated strength so that clients can render a meter.
type PasswordCheckResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Strength string   `json:"strength"`
}
