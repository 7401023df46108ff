package auth

import (
	"errors"
	"testing"

	"github.com/chatterd/chatterd/server/store"
)

func testAuth(t *testing.T) *Auth {
	t.Helper()
	s, err := store.Open(t.TempDir(), "127.0.0.1", "5001")
	if err != nil {
		t.Fatalf("failed to open store: %s", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := testAuth(t)

	if err := a.Register("alice", "secret", "a@example.com"); err != nil {
		t.Fatalf("failed to register: %s", err)
	}

	cases := []struct {
		name     string
		username string
		password string
		expected error
	}{
		{"correct credentials", "alice", "secret", nil},
		{"wrong password", "alice", "wrong", ErrInvalidCredentials},
		{"unknown user", "mallory", "secret", ErrInvalidCredentials},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := a.Authenticate(c.username, c.password)
			if !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	a := testAuth(t)

	if err := a.Register("alice", "secret", ""); err != nil {
		t.Fatalf("failed to register: %s", err)
	}
	if err := a.Register("alice", "other", ""); !errors.Is(err, store.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got: %v", err)
	}
}

func TestRegisterRequiresCredentials(t *testing.T) {
	a := testAuth(t)

	if err := a.Register("", "secret", ""); err == nil {
		t.Error("expected empty username to be rejected")
	}
	if err := a.Register("alice", "", ""); err == nil {
		t.Error("expected empty password to be rejected")
	}
}

func TestHashPasswordIsStable(t *testing.T) {
	if HashPassword("secret") != HashPassword("secret") {
		t.Error("hashing the same password twice should give the same digest")
	}
	if HashPassword("secret") == HashPassword("Secret") {
		t.Error("distinct passwords should not collide")
	}
}
