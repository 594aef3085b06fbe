package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rohan-06-eng/cantilver-expense/internal/storage/sqlite"
)

func newTestAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth-test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewPasswordAuthenticator(store)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected user ID to be generated")
	}
	if user.PasswordHash == "secret" {
		t.Error("Password stored verbatim; expected a hash")
	}

	got, err := a.Authenticate(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "alice", "secret"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := a.Authenticate(ctx, "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	a := newTestAuthenticator(t)

	_, err := a.Authenticate(context.Background(), "nobody", "secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateIsCaseSensitive(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "alice", "secret"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := a.Authenticate(ctx, "Alice", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for case-mismatched username, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "bob", "first-password"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := a.Register(ctx, "bob", "second-password")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("Expected ErrDuplicateUsername, got %v", err)
	}

	// First registration's credentials remain valid
	if _, err := a.Authenticate(ctx, "bob", "first-password"); err != nil {
		t.Errorf("First user's credentials invalidated by failed duplicate: %v", err)
	}
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "", "secret"); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("Expected ErrEmptyUsername, got %v", err)
	}
	if _, err := a.Register(ctx, "alice", ""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected ErrEmptyPassword, got %v", err)
	}
}
