package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 generates a new UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ReferenceCode returns prefix followed by 8 hex characters of a fresh UUID.
// v7 UUIDs lead with the timestamp, so the random tail is used.
func ReferenceCode(prefix string) string {
	hex := strings.ReplaceAll(GenerateUUIDv7().String(), "-", "")
	return prefix + hex[len(hex)-8:]
}

// SequenceID renders a counter as PREFIX_001
func SequenceID(prefix string, n int64) string {
	return fmt.Sprintf("%s_%03d", prefix, n)
}
