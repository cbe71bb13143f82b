package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered (v7) UUID strings, used for correlation IDs.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// RandomUUID generates random (v4) UUID strings. Nothing about the moment of
// creation can be read back from them, so they are safe to hand to callers as
// error references.
type RandomUUID struct{}

// NewRandomUUID returns a random UUID generator.
func NewRandomUUID() *RandomUUID {
	return &RandomUUID{}
}

// Generate returns a new random UUID string.
func (u *RandomUUID) Generate() string {
	return uuid.NewString()
}
