package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for accounts and notes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 if the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a well-formed UUID.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
