package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered UUID v7 identifiers for new rows.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a well-formed UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
