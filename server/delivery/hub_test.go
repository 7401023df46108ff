package delivery

import (
	"errors"
	"testing"
	"time"

	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/server/store"
)

func testHub(t *testing.T) (*Hub, *store.Store) {
	t.Helper()
	s, err := store.Open(t.TempDir(), "127.0.0.1", "5001")
	if err != nil {
		t.Fatalf("failed to open store: %s", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewHub(s), s
}

func msg(body string) *pb.ChatMessage {
	return &pb.ChatMessage{
		Sender:    "alice",
		Recipient: "bob",
		Body:      body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestDeliverOffline(t *testing.T) {
	hub, st := testHub(t)

	live, err := hub.Deliver(msg("hi"))
	if err != nil {
		t.Fatalf("failed to deliver: %s", err)
	}
	if live {
		t.Fatal("expected stored delivery for offline recipient")
	}

	pending, err := st.PendingMessages("bob")
	if err != nil {
		t.Fatalf("failed to read pending messages: %s", err)
	}
	if len(pending) != 1 || !pending[0].Pending {
		t.Fatalf("expected one pending message, got %+v", pending)
	}
}

func TestDeliverLive(t *testing.T) {
	hub, st := testHub(t)

	sess := hub.Attach("bob")
	defer hub.Detach(sess)

	live, err := hub.Deliver(msg("hi"))
	if err != nil {
		t.Fatalf("failed to deliver: %s", err)
	}
	if !live {
		t.Fatal("expected live delivery for attached recipient")
	}

	m, err := sess.Next(nil, nil)
	if err != nil {
		t.Fatalf("failed to pop delivered message: %s", err)
	}
	if m.GetBody() != "hi" {
		t.Fatalf("unexpected message body: %q", m.GetBody())
	}

	pending, err := st.PendingMessages("bob")
	if err != nil {
		t.Fatalf("failed to read pending messages: %s", err)
	}
	if len(pending) != 0 {
		t.Fatalf("live-delivered message must not be pending, got %+v", pending)
	}
}

func TestAttachReplacesSubscription(t *testing.T) {
	hub, _ := testHub(t)

	first := hub.Attach("bob")
	second := hub.Attach("bob")
	defer hub.Detach(second)

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("expected the first subscription to be detached")
	}

	if _, err := first.Next(nil, nil); !errors.Is(err, ErrDetached) {
		t.Fatalf("expected ErrDetached from replaced session, got: %v", err)
	}
}

func TestNextBlocksUntilDelivery(t *testing.T) {
	hub, _ := testHub(t)

	sess := hub.Attach("bob")
	defer hub.Detach(sess)

	done := make(chan *pb.ChatMessage, 1)
	go func() {
		m, err := sess.Next(nil, nil)
		if err != nil {
			return
		}
		done <- m
	}()

	// Give the waiter time to park on the notify channel.
	time.Sleep(50 * time.Millisecond)
	if _, err := hub.Deliver(msg("wake up")); err != nil {
		t.Fatalf("failed to deliver: %s", err)
	}

	select {
	case m := <-done:
		if m.GetBody() != "wake up" {
			t.Fatalf("unexpected message body: %q", m.GetBody())
		}
	case <-time.After(time.Second):
		t.Fatal("Next never woke up after delivery")
	}
}

func TestNextObservesCancel(t *testing.T) {
	hub, _ := testHub(t)

	sess := hub.Attach("bob")
	defer hub.Detach(sess)

	cancel := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		_, err := sess.Next(cancel, nil)
		errCh <- err
	}()

	close(cancel)
	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected an error after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("Next did not observe cancellation")
	}
}

func TestCloseAllDetachesEverySession(t *testing.T) {
	hub, _ := testHub(t)

	a := hub.Attach("alice")
	b := hub.Attach("bob")
	hub.CloseAll()

	for _, sess := range []*Session{a, b} {
		select {
		case <-sess.Done():
		case <-time.After(time.Second):
			t.Fatalf("session %s not closed", sess.User())
		}
	}
}
