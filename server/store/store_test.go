package store

import (
	"errors"
	"testing"
	"time"

	"github.com/go-test/deep"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), "127.0.0.1", "5001")
	if err != nil {
		t.Fatalf("failed to open store: %s", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateUser(t *testing.T) {
	s := testStore(t)

	if err := s.CreateUser("alice", "hash", "a@example.com"); err != nil {
		t.Fatalf("failed to create user: %s", err)
	}

	t.Run("duplicate username", func(t *testing.T) {
		err := s.CreateUser("alice", "otherhash", "a2@example.com")
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got: %v", err)
		}
	})

	t.Run("default inbox limit", func(t *testing.T) {
		limit, err := s.Settings("alice")
		if err != nil {
			t.Fatalf("failed to read settings: %s", err)
		}
		if limit != DefaultInboxLimit {
			t.Fatalf("expected default limit %d, got %d", DefaultInboxLimit, limit)
		}
	})

	t.Run("password hash round-trips", func(t *testing.T) {
		hash, err := s.PasswordHash("alice")
		if err != nil {
			t.Fatalf("failed to read hash: %s", err)
		}
		if hash != "hash" {
			t.Fatalf("expected stored hash, got %q", hash)
		}
	})
}

func TestPasswordHashUnknownUser(t *testing.T) {
	s := testStore(t)
	if _, err := s.PasswordHash("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSaveSettings(t *testing.T) {
	s := testStore(t)
	if err := s.CreateUser("bob", "hash", ""); err != nil {
		t.Fatalf("failed to create user: %s", err)
	}

	if err := s.SaveSettings("bob", 2); err != nil {
		t.Fatalf("failed to save settings: %s", err)
	}
	// Idempotent: a second identical write leaves the same state.
	if err := s.SaveSettings("bob", 2); err != nil {
		t.Fatalf("failed to re-save settings: %s", err)
	}
	limit, err := s.Settings("bob")
	if err != nil {
		t.Fatalf("failed to read settings: %s", err)
	}
	if limit != 2 {
		t.Fatalf("expected limit 2, got %d", limit)
	}

	if err := s.SaveSettings("nobody", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	s := testStore(t)
	if err := s.CreateUser("carol", "hash", ""); err != nil {
		t.Fatalf("failed to create user: %s", err)
	}

	if err := s.DeleteUser("carol"); err != nil {
		t.Fatalf("failed to delete user: %s", err)
	}
	if _, err := s.PasswordHash("carol"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected user gone, got: %v", err)
	}
	if err := s.DeleteUser("carol"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got: %v", err)
	}
}

func TestListUsernames(t *testing.T) {
	s := testStore(t)
	for _, u := range []string{"carol", "alice", "bob"} {
		if err := s.CreateUser(u, "hash", ""); err != nil {
			t.Fatalf("failed to create user %s: %s", u, err)
		}
	}

	users, err := s.ListUsernames()
	if err != nil {
		t.Fatalf("failed to list users: %s", err)
	}
	if diff := deep.Equal(users, []string{"alice", "bob", "carol"}); diff != nil {
		t.Errorf("unexpected user list: %v", diff)
	}
}

func TestPendingMessages(t *testing.T) {
	s := testStore(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of timestamp order to exercise the ordering clause.
	for _, offset := range []time.Duration{2 * time.Second, 0, time.Second} {
		_, err := s.SaveMessage(Message{
			Sender:    "alice",
			Recipient: "bob",
			Body:      "hi",
			Timestamp: base.Add(offset).Format(time.RFC3339),
			Pending:   true,
		})
		if err != nil {
			t.Fatalf("failed to save message: %s", err)
		}
	}
	if _, err := s.SaveMessage(Message{
		Sender: "alice", Recipient: "carol", Body: "other", Timestamp: base.Format(time.RFC3339), Pending: true,
	}); err != nil {
		t.Fatalf("failed to save message: %s", err)
	}

	msgs, err := s.PendingMessages("bob")
	if err != nil {
		t.Fatalf("failed to read pending messages: %s", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 pending messages, got %d", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i-1].Timestamp > msgs[i].Timestamp {
			t.Fatalf("pending messages out of order: %q after %q", msgs[i-1].Timestamp, msgs[i].Timestamp)
		}
	}

	if err := s.MarkDelivered(msgs[0].ID); err != nil {
		t.Fatalf("failed to mark delivered: %s", err)
	}
	remaining, err := s.PendingMessages("bob")
	if err != nil {
		t.Fatalf("failed to re-read pending messages: %s", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 pending messages after delivery, got %d", len(remaining))
	}
}

func TestHistory(t *testing.T) {
	s := testStore(t)

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
	id, err := s.SaveMessage(Message{Sender: "alice", Recipient: "bob", Body: "hi", Timestamp: ts, Pending: true})
	if err != nil {
		t.Fatalf("failed to save message: %s", err)
	}

	// Pending messages are invisible to history until delivered.
	msgs, err := s.History("bob")
	if err != nil {
		t.Fatalf("failed to read history: %s", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(msgs))
	}

	if err := s.MarkDelivered(id); err != nil {
		t.Fatalf("failed to mark delivered: %s", err)
	}

	for _, user := range []string{"alice", "bob"} {
		msgs, err := s.History(user)
		if err != nil {
			t.Fatalf("failed to read history for %s: %s", user, err)
		}
		if len(msgs) != 1 || msgs[0].Body != "hi" {
			t.Fatalf("unexpected history for %s: %+v", user, msgs)
		}
	}
}
