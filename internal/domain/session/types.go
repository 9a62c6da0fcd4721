// Package session owns the client-side login state: who is signed in, as
// which role, and whether the initial restore check is still running.
package session

import (
	"context"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/credstore"
	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/portal"
)

// Role gates which console a user can reach.
type Role string

const (
	// RoleDoctor is the doctor console role.
	RoleDoctor Role = "doctor"

	// RolePatient is the patient console role.
	RolePatient Role = "patient"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// Session is the in-memory record of the current user. Exactly one exists
// per Store. A nil User with an empty Role is the anonymous state.
type Session struct {
	// User is the identity fetched from the backend, nil when signed out.
	User *portal.UserInfo
	// Role is the role the user logged in as, empty when signed out.
	Role Role
	// Loading is true only between process start and the first completed
	// restore check. Every lifecycle operation terminates it.
	Loading bool
}

// Authenticated reports whether a user is signed in.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Role != ""
}

// Backend is the slice of the portal client the session store depends on.
type Backend interface {
	Login(ctx context.Context, email, password string) (*portal.TokenResponse, error)
	Me(ctx context.Context) (*portal.UserInfo, error)
	Signup(ctx context.Context, req portal.SignupRequest) (*portal.UserInfo, error)
}

// CredentialStore is the durable store for the persisted credential.
type CredentialStore interface {
	Load() (*credstore.Credential, error)
	Save(cred *credstore.Credential) error
	Clear() error
}
