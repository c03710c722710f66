package utils

import "github.com/google/uuid"

// UUIDGenerator issues the ids of users and places, trace ids and the names
// of stored images.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so that new rows sort after old
// ones. If the clock source fails it falls back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
