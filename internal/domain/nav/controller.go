// Package nav decides which view is visible given session transitions and
// explicit navigation requests.
package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ImpanaSR/Symptom-story/internal/domain/session"
)

// Page identifies one view of the portal.
type Page string

const (
	// PageRoleSelect is the entry view.
	PageRoleSelect Page = "role-select"

	PageDoctorLogin   Page = "doctor-login"
	PagePatientLogin  Page = "patient-login"
	PagePatientSignup Page = "patient-signup"

	// PageDoctorHome is the doctor console, gated behind RoleDoctor.
	PageDoctorHome Page = "doctor-home"

	// PagePatientHome is the patient console, gated behind RolePatient.
	PagePatientHome Page = "patient-home"
)

// ErrForbidden is returned when a navigation request targets a view gated
// behind a role the current session does not hold.
var ErrForbidden = errors.New("view requires a role the session does not hold")

// SessionSource provides the current session for authorization checks.
type SessionSource interface {
	Current() session.Session
}

// Controller holds the single mutable current-page value. Every transition
// into a role-gated view re-checks the session; navigation never offering a
// forbidden path is not relied upon.
type Controller struct {
	sessions SessionSource
	logger   *slog.Logger

	mu      sync.Mutex
	current Page
}

// NewController creates a controller positioned on the entry view.
func NewController(sessions SessionSource, logger *slog.Logger) *Controller {
	return &Controller{
		sessions: sessions,
		logger:   logger,
		current:  PageRoleSelect,
	}
}

// Current returns the visible page.
func (c *Controller) Current() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Go transitions to the requested page. A request for a role-gated view
// without that role's identity lands on the matching login view instead and
// returns ErrForbidden. It returns the page actually landed on.
func (c *Controller) Go(p Page) (Page, error) {
	if role, gated := gatedRole(p); gated {
		sess := c.sessions.Current()
		if !sess.Authenticated() || sess.Role != role {
			fallback := loginFor(role)
			c.set(fallback)
			c.logger.Warn("navigation denied",
				"requested", string(p), "redirected", string(fallback))
			return fallback, fmt.Errorf("%w: %s", ErrForbidden, p)
		}
	}
	c.set(p)
	return p, nil
}

// HandleSessionChange reacts to committed session transitions. Wire it as
// the session store's OnChange callback: a login lands on the role's
// console, a logout (or failed restore while on a gated view) lands on the
// entry view.
func (c *Controller) HandleSessionChange(sess session.Session) {
	if sess.Loading {
		return
	}
	if sess.Authenticated() {
		switch sess.Role {
		case session.RoleDoctor:
			c.set(PageDoctorHome)
		case session.RolePatient:
			c.set(PagePatientHome)
		}
		return
	}

	// Signed out: leave login/signup flows alone, but never keep showing
	// a gated console to an anonymous session.
	if _, gated := gatedRole(c.Current()); gated {
		c.set(PageRoleSelect)
	}
}

func (c *Controller) set(p Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != p {
		c.logger.Debug("navigated", "from", string(c.current), "to", string(p))
		c.current = p
	}
}

// gatedRole returns the role required to view the page, if any.
func gatedRole(p Page) (session.Role, bool) {
	switch p {
	case PageDoctorHome:
		return session.RoleDoctor, true
	case PagePatientHome:
		return session.RolePatient, true
	default:
		return "", false
	}
}

// loginFor maps a role to its login view.
func loginFor(role session.Role) Page {
	if role == session.RoleDoctor {
		return PageDoctorLogin
	}
	return PagePatientLogin
}
