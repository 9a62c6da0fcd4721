package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/credstore"
	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/portal"
	"github.com/ImpanaSR/Symptom-story/internal/config"
	"github.com/ImpanaSR/Symptom-story/internal/domain/nav"
	"github.com/ImpanaSR/Symptom-story/internal/domain/session"
)

// app wires the process-root object graph: config, logger, credential
// store, backend client, session store, and navigation controller. Every
// command builds one app instead of sharing module-level state.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	creds     *credstore.FileStore
	client    *portal.Client
	sessions  *session.Store
	navigator *nav.Controller
}

// newApp loads configuration and builds the object graph.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	credPath := credentialsPath
	if credPath == "" {
		credPath = cfg.Storage.CredentialsPath
	}
	if err := os.MkdirAll(filepath.Dir(credPath), 0700); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	creds := credstore.NewFileStore(credPath, logger)

	client := portal.NewClient(creds,
		portal.WithServerAddr(cfg.Server.Addr),
		portal.WithTimeout(cfg.RequestTimeout()),
		portal.WithAnalysisCacheTTL(cfg.CacheTTL()),
		portal.WithLogger(logger),
	)

	sessions := session.NewStore(client, creds, logger)
	navigator := nav.NewController(sessions, logger)
	sessions.OnChange(navigator.HandleSessionChange)

	return &app{
		cfg:       cfg,
		logger:    logger,
		creds:     creds,
		client:    client,
		sessions:  sessions,
		navigator: navigator,
	}, nil
}

// requireLogin restores the session and verifies someone is signed in,
// regardless of role.
func (a *app) requireLogin(ctx context.Context) (session.Session, error) {
	a.sessions.Restore(ctx)
	sess := a.sessions.Current()
	if !sess.Authenticated() {
		return sess, fmt.Errorf("not logged in: run \"symptom-story login\" first")
	}
	return sess, nil
}

// requireRole restores the session and verifies the given role is signed
// in. Used by every role-gated command.
func (a *app) requireRole(ctx context.Context, role session.Role) (session.Session, error) {
	a.sessions.Restore(ctx)
	sess := a.sessions.Current()
	if !sess.Authenticated() {
		return sess, fmt.Errorf("not logged in: run \"symptom-story login --role %s\" first", role)
	}
	if sess.Role != role {
		return sess, fmt.Errorf("this command requires the %s role, but you are logged in as %s", role, sess.Role)
	}
	return sess, nil
}

// consoleFor maps a role to its console page.
func consoleFor(role session.Role) nav.Page {
	if role == session.RoleDoctor {
		return nav.PageDoctorHome
	}
	return nav.PagePatientHome
}

// parseLogLevel converts a string log level to slog.Level.
// Returns slog.LevelInfo for unrecognized values.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
