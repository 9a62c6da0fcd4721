package credstore

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLoad_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"), testLogger())

	_, err := s.Load()
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if s.Exists() {
		t.Error("expected Exists() false for missing file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path, testLogger())

	if err := s.Save(&Credential{Token: "T1", Role: "doctor"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cred, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cred.Token != "T1" {
		t.Errorf("expected token T1, got %q", cred.Token)
	}
	if cred.Role != "doctor" {
		t.Errorf("expected role doctor, got %q", cred.Role)
	}
	if cred.SavedAt.IsZero() {
		t.Error("expected SavedAt to be set")
	}
}

func TestSave_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path, testLogger())

	if err := s.Save(&Credential{Token: "T1", Role: "patient"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %04o", perm)
	}
}

func TestSave_IndentedJSONWithTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path, testLogger())

	if err := s.Save(&Credential{Token: "T1", Role: "patient"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("expected trailing newline")
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	s := NewFileStore(path, testLogger())

	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestLoad_EmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	data, _ := json.Marshal(Credential{Token: "", Role: "doctor"})
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	s := NewFileStore(path, testLogger())

	if _, err := s.Load(); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential for empty token, got %v", err)
	}
}

func TestClear_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path, testLogger())

	if err := s.Save(&Credential{Token: "T1", Role: "patient"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("first Clear failed: %v", err)
	}
	if s.Exists() {
		t.Error("expected file removed after Clear")
	}
	// Second clear on an already-empty store is a no-op.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestToken_FreshReadEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path, testLogger())

	if got := s.Token(); got != "" {
		t.Errorf("expected empty token before save, got %q", got)
	}
	if err := s.Save(&Credential{Token: "T1", Role: "doctor"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := s.Token(); got != "T1" {
		t.Errorf("expected T1, got %q", got)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := s.Token(); got != "" {
		t.Errorf("expected empty token after clear, got %q", got)
	}
}

func TestSave_ConcurrentWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(&Credential{Token: "T1", Role: "patient"})
		}()
	}
	wg.Wait()

	cred, err := s.Load()
	if err != nil {
		t.Fatalf("Load after concurrent saves failed: %v", err)
	}
	if cred.Token != "T1" {
		t.Errorf("expected intact credential, got %+v", cred)
	}

	// No stray temp file should survive.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be cleaned up")
	}
}
