package uid

import "github.com/google/uuid"

// UUID implements StringID with RFC 4122 UUIDs, preferring the time-ordered
// v7 form.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString() // v4 fallback
	}
	return id.String()
}
