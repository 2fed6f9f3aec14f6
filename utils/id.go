package utils

import "github.com/google/uuid"

// GenerateEntryID returns a fresh opaque id for a tracker entry.
func GenerateEntryID() string {
	return uuid.New().String()
}
