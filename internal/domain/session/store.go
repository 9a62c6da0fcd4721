package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/credstore"
	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/portal"
)

// ErrInvalidRole is returned when a login requests a role other than
// doctor or patient.
var ErrInvalidRole = errors.New("invalid role")

// Store is the single source of truth for the current session and the only
// component that reads or writes the persisted credential. All operations
// are safe for concurrent use; when calls overlap, the operation that
// started last wins and a stale response can never overwrite a newer
// committed session.
type Store struct {
	backend Backend
	creds   CredentialStore
	logger  *slog.Logger

	mu            sync.Mutex
	session       Session
	nextOp        uint64
	lastCommitted uint64
	onChange      []func(Session)
}

// NewStore creates a session store. The session starts anonymous with
// Loading=true until Restore completes.
func NewStore(backend Backend, creds CredentialStore, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		creds:   creds,
		logger:  logger,
		session: Session{Loading: true},
	}
}

// Current returns a copy of the current session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// OnChange registers a callback invoked after every committed session
// transition. Callbacks run outside the store lock.
func (s *Store) OnChange(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Restore reconstructs the session from the persisted credential. Invoked
// once at startup. A missing credential resolves to the anonymous session;
// a rejected or unreachable token clears the credential and resolves to the
// anonymous session without surfacing an error to the caller. Every path
// terminates the Loading state.
func (s *Store) Restore(ctx context.Context) {
	op := s.begin()

	cred, err := s.creds.Load()
	if err != nil {
		if !errors.Is(err, credstore.ErrNoCredential) {
			s.logger.Warn("failed to read persisted credential", "error", err)
			_ = s.creds.Clear()
		}
		s.commit(op, Session{})
		return
	}

	user, err := s.backend.Me(ctx)
	if err != nil {
		// Stale or rejected token: silently drop it and start signed out.
		s.logger.Info("persisted session not restorable", "error", err)
		_ = s.creds.Clear()
		s.commit(op, Session{})
		return
	}

	role := Role(cred.Role)
	if !role.Valid() {
		role = Role(user.Role)
	}
	s.commit(op, Session{User: user, Role: role})
}

// Login authenticates against the backend and establishes the session.
// On any failure the session is left unchanged and the error carries a
// human-readable reason. The credential is persisted before the dependent
// identity fetch; if that fetch fails, the credential is cleared again so
// no half-logged-in state survives.
func (s *Store) Login(ctx context.Context, email, password string, role Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	op := s.begin()

	token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.logger.Info("login rejected", "email", email, "role", role)
		return err
	}

	if err := s.creds.Save(&credstore.Credential{Token: token.AccessToken, Role: string(role)}); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	user, err := s.backend.Me(ctx)
	if err != nil {
		_ = s.creds.Clear()
		return fmt.Errorf("fetch identity after login: %w", err)
	}

	if !s.commit(op, Session{User: user, Role: role}) {
		s.logger.Debug("login result superseded by a newer operation")
	}
	s.logger.Info("logged in", "user", user.DisplayName(), "role", role)
	return nil
}

// Signup forwards a registration to the backend. It never mutates the
// session or the persisted credential; a separate login is required.
func (s *Store) Signup(ctx context.Context, req portal.SignupRequest) error {
	if _, err := s.backend.Signup(ctx, req); err != nil {
		return err
	}
	s.logger.Info("account created", "email", req.Email, "role", req.Role)
	return nil
}

// Logout resets the session to anonymous and clears the persisted
// credential unconditionally. Calling it twice in a row is a no-op the
// second time.
func (s *Store) Logout() error {
	op := s.begin()
	s.commit(op, Session{})
	if err := s.creds.Clear(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}

// begin assigns the operation its start-order sequence number.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOp++
	return s.nextOp
}

// commit publishes a session value unless an operation that started later
// has already committed. Returns false when the result was stale.
func (s *Store) commit(op uint64, sess Session) bool {
	s.mu.Lock()
	if op < s.lastCommitted {
		s.mu.Unlock()
		return false
	}
	s.lastCommitted = op
	s.session = sess
	callbacks := make([]func(Session), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(sess)
	}
	return true
}
