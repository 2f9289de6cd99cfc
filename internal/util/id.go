package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random UUID string. Used for event and timeline
// config identifiers so they stay independent of any storage key.
func NewID() string {
	return uuid.NewString()
}

// ShortID returns the first segment of a UUID, enough for display in
// CLI and TUI output.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
