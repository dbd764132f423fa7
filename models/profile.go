// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Language is the interface language chosen during onboarding.
type Language string

const (
	LanguagePortuguese Language = "pt"
	LanguageEnglish    Language = "en"
)

// UserProfileKind describes where the user is in the immigration journey.
type UserProfileKind string

const (
	UserProfileRecent     UserProfileKind = "recent"
	UserProfileResident   UserProfileKind = "resident"
	UserProfileLegalizing UserProfileKind = "legalizing"
)

// Theme is the color scheme of the client.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ProtectedNumber names one of the government identifiers kept in the
// profile. Their values are stored through the field cipher.
type ProtectedNumber string

const (
	NumberNIF      ProtectedNumber = "nif"
	NumberNISS     ProtectedNumber = "niss"
	NumberSNS      ProtectedNumber = "sns"
	NumberPassport ProtectedNumber = "passport"
)

// Profile holds the user's settings and personal identifiers.
//
// NIF, NISS, SNS and Passport hold ciphertext while the profile travels
// between the service and the store, and plaintext (or the protected
// placeholder) once the service hands it to the transport layer.
type Profile struct {
	ID                   string           `json:"id"`
	UserID               string           `json:"user_id"`
	Language             Language         `json:"language"`
	UserProfile          *UserProfileKind `json:"user_profile"`
	DisplayName          *string          `json:"display_name"`
	NIF                  *string          `json:"nif"`
	NISS                 *string          `json:"niss"`
	SNS                  *string          `json:"sns"`
	Passport             *string          `json:"passport"`
	NotificationsEnabled bool             `json:"notifications_enabled"`
	BiometricEnabled     bool             `json:"biometric_enabled"`
	Theme                Theme            `json:"theme"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// Number returns a pointer to the profile field that stores the given
// protected number, or nil for an unknown name.
func (p *Profile) Number(name ProtectedNumber) **string {
	switch name {
	case NumberNIF:
		return &p.NIF
	case NumberNISS:
		return &p.NISS
	case NumberSNS:
		return &p.SNS
	case NumberPassport:
		return &p.Passport
	}
	return nil
}

// ProfileUpdate is a partial profile update. Only non-nil fields are written.
type ProfileUpdate struct {
	UserID               string           `json:"-"`
	Language             *Language        `json:"language,omitempty"`
	UserProfile          *UserProfileKind `json:"user_profile,omitempty"`
	DisplayName          *string          `json:"display_name,omitempty"`
	NIF                  *string          `json:"nif,omitempty"`
	NISS                 *string          `json:"niss,omitempty"`
	SNS                  *string          `json:"sns,omitempty"`
	Passport             *string          `json:"passport,omitempty"`
	NotificationsEnabled *bool            `json:"notifications_enabled,omitempty"`
	BiometricEnabled     *bool            `json:"biometric_enabled,omitempty"`
	Theme                *Theme           `json:"theme,omitempty"`
}

// Number returns a pointer to the update field for the given protected number,
// or nil for an unknown name.
func (u *ProfileUpdate) Number(name ProtectedNumber) **string {
	switch name {
	case NumberNIF:
		return &u.NIF
	case NumberNISS:
		return &u.NISS
	case NumberSNS:
		return &u.SNS
	case NumberPassport:
		return &u.Passport
	}
	return nil
}

// IsEmpty reports whether the update carries no field at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Language == nil && u.UserProfile == nil && u.DisplayName == nil &&
		u.NIF == nil && u.NISS == nil && u.SNS == nil && u.Passport == nil &&
		u.NotificationsEnabled == nil && u.BiometricEnabled == nil && u.Theme == nil
}

// NumberUpdate sets a single protected number.
type NumberUpdate struct {
	Field ProtectedNumber `json:"field"`
	Value string          `json:"value"`
}

// ProtectedNumbers lists every protected profile field.
var ProtectedNumbers = []ProtectedNumber{NumberNIF, NumberNISS, NumberSNS, NumberPassport}
