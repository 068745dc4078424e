package utils

import "github.com/google/uuid"

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

// IsValidID reports whether s is a syntactically well-formed identifier.
// Used to reject malformed note and owner IDs before any store round trip.
func IsValidID(s string) bool {
	return uuid.Validate(s) == nil
}
