// Package storage persists the most recent resume text per user. One entry
// per user, full text, no versioning; every backend keys by the normalized
// user identifier.
package storage

import (
	"context"
	"strings"
)

// ResumeStore persists the last extracted resume text per user
type ResumeStore interface {
	// Save overwrites any previously stored text for the user.
	Save(ctx context.Context, user, text string) error

	// Load returns the stored text, or ok=false when the user has never
	// saved a resume. A missing entry is not an error.
	Load(ctx context.Context, user string) (text string, ok bool, err error)
}

// NormalizeUser canonicalizes a user identifier for use as a storage key
func NormalizeUser(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}
