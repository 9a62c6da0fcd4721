package nav

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/portal"
	"github.com/ImpanaSR/Symptom-story/internal/domain/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fixedSession is a SessionSource returning a constant session.
type fixedSession struct {
	sess session.Session
}

func (f *fixedSession) Current() session.Session { return f.sess }

func anonymous() *fixedSession {
	return &fixedSession{sess: session.Session{}}
}

func loggedIn(role session.Role) *fixedSession {
	return &fixedSession{sess: session.Session{
		User: &portal.UserInfo{Username: "u@x.com", Role: string(role)},
		Role: role,
	}}
}

func TestNewController_StartsOnEntryView(t *testing.T) {
	c := NewController(anonymous(), testLogger())
	if c.Current() != PageRoleSelect {
		t.Errorf("expected role-select entry page, got %s", c.Current())
	}
}

func TestGo_UngatedPages(t *testing.T) {
	c := NewController(anonymous(), testLogger())

	for _, p := range []Page{PageDoctorLogin, PagePatientLogin, PagePatientSignup, PageRoleSelect} {
		landed, err := c.Go(p)
		if err != nil {
			t.Fatalf("Go(%s) failed: %v", p, err)
		}
		if landed != p || c.Current() != p {
			t.Errorf("expected to land on %s, got %s", p, landed)
		}
	}
}

func TestGo_GatedPageDeniedWhenAnonymous(t *testing.T) {
	c := NewController(anonymous(), testLogger())

	landed, err := c.Go(PageDoctorHome)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if landed != PageDoctorLogin || c.Current() != PageDoctorLogin {
		t.Errorf("expected redirect to doctor-login, got %s", landed)
	}

	landed, err = c.Go(PagePatientHome)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if landed != PagePatientLogin {
		t.Errorf("expected redirect to patient-login, got %s", landed)
	}
}

func TestGo_GatedPageDeniedForWrongRole(t *testing.T) {
	c := NewController(loggedIn(session.RolePatient), testLogger())

	if _, err := c.Go(PageDoctorHome); !errors.Is(err, ErrForbidden) {
		t.Fatalf("patient must not reach the doctor console, got %v", err)
	}

	landed, err := c.Go(PagePatientHome)
	if err != nil {
		t.Fatalf("patient should reach the patient console: %v", err)
	}
	if landed != PagePatientHome {
		t.Errorf("expected patient-home, got %s", landed)
	}
}

func TestGo_GatedPageAllowedForMatchingRole(t *testing.T) {
	c := NewController(loggedIn(session.RoleDoctor), testLogger())

	landed, err := c.Go(PageDoctorHome)
	if err != nil {
		t.Fatalf("doctor should reach the doctor console: %v", err)
	}
	if landed != PageDoctorHome {
		t.Errorf("expected doctor-home, got %s", landed)
	}
}

func TestHandleSessionChange_LoginLandsOnConsole(t *testing.T) {
	src := anonymous()
	c := NewController(src, testLogger())

	c.HandleSessionChange(loggedIn(session.RoleDoctor).sess)
	if c.Current() != PageDoctorHome {
		t.Errorf("doctor login should land on doctor-home, got %s", c.Current())
	}

	c.HandleSessionChange(loggedIn(session.RolePatient).sess)
	if c.Current() != PagePatientHome {
		t.Errorf("patient login should land on patient-home, got %s", c.Current())
	}
}

func TestHandleSessionChange_LogoutLandsOnEntry(t *testing.T) {
	src := loggedIn(session.RolePatient)
	c := NewController(src, testLogger())
	if _, err := c.Go(PagePatientHome); err != nil {
		t.Fatalf("Go failed: %v", err)
	}

	src.sess = session.Session{}
	c.HandleSessionChange(src.sess)
	if c.Current() != PageRoleSelect {
		t.Errorf("logout should land on role-select, got %s", c.Current())
	}
}

func TestHandleSessionChange_AnonymousLeavesLoginFlowAlone(t *testing.T) {
	c := NewController(anonymous(), testLogger())
	if _, err := c.Go(PagePatientLogin); err != nil {
		t.Fatalf("Go failed: %v", err)
	}

	// Anonymous restore completing mid-login must not yank the user away.
	c.HandleSessionChange(session.Session{})
	if c.Current() != PagePatientLogin {
		t.Errorf("expected to stay on patient-login, got %s", c.Current())
	}
}

func TestHandleSessionChange_IgnoresLoadingState(t *testing.T) {
	c := NewController(anonymous(), testLogger())
	if _, err := c.Go(PageDoctorLogin); err != nil {
		t.Fatalf("Go failed: %v", err)
	}

	c.HandleSessionChange(session.Session{Loading: true})
	if c.Current() != PageDoctorLogin {
		t.Errorf("loading transition must not navigate, got %s", c.Current())
	}
}
