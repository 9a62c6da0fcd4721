// Package credstore provides durable persistence for the portal credential.
//
// The credentials file stores the bearer token and chosen role that survive
// process restarts. This package provides atomic writes, file locking, and
// restrictive permissions so a half-written or world-readable credential
// never exists on disk.
package credstore

import "time"

// Credential is the single record persisted in credentials.json.
// It exists on disk iff a login succeeded and logout has not since run.
type Credential struct {
	// Token is the opaque bearer token issued by the portal on login.
	Token string `json:"token"`

	// Role is the role the user logged in as: "doctor" or "patient".
	Role string `json:"role"`

	// SavedAt is when this credential was persisted (UTC).
	SavedAt time.Time `json:"saved_at"`
}
