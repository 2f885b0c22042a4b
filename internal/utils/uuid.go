package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 identifiers for notes, tree
// entries and images.
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
