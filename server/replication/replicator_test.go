package replication

import (
	"context"
	"testing"
	"time"

	"github.com/chatterd/chatterd/server/membership"
	"github.com/chatterd/chatterd/testutil"
)

func TestFanoutReachesEveryPeer(t *testing.T) {
	m := membership.New("self", "127.0.0.1", "5001", testutil.FakeDialer(&testutil.FakeChatClient{}))
	for _, peer := range []struct{ id, port string }{
		{"peer-1", "5002"},
		{"peer-2", "5003"},
	} {
		if err := m.AddPeer(peer.id, "127.0.0.1", peer.port); err != nil {
			t.Fatalf("failed to add peer %s: %s", peer.id, err)
		}
	}

	r := New(m)
	called := make(chan string, 2)
	r.Fanout("SendMessage", func(ctx context.Context, peer membership.Peer) error {
		called <- peer.ID
		return nil
	})

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-called:
			seen[id] = true
		case <-time.After(time.Second):
			t.Fatal("fan-out did not reach every peer")
		}
	}
	if !seen["peer-1"] || !seen["peer-2"] {
		t.Fatalf("unexpected fan-out targets: %v", seen)
	}
}

func TestFanoutSwallowsFailures(t *testing.T) {
	m := membership.New("self", "127.0.0.1", "5001", testutil.FakeDialer(&testutil.FakeChatClient{}))
	if err := m.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}

	r := New(m)
	done := make(chan struct{})
	r.Fanout("Register", func(ctx context.Context, peer membership.Peer) error {
		defer close(done)
		return context.DeadlineExceeded
	})

	select {
	case <-done:
		// The error must not propagate anywhere; reaching here without a
		// panic is the assertion.
	case <-time.After(time.Second):
		t.Fatal("fan-out callback never ran")
	}
}

func TestFanoutContextIsBounded(t *testing.T) {
	m := membership.New("self", "127.0.0.1", "5001", testutil.FakeDialer(&testutil.FakeChatClient{}))
	if err := m.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}

	r := New(m)
	deadlines := make(chan bool, 1)
	r.Fanout("Login", func(ctx context.Context, peer membership.Peer) error {
		_, ok := ctx.Deadline()
		deadlines <- ok
		return nil
	})

	select {
	case ok := <-deadlines:
		if !ok {
			t.Fatal("fan-out context must carry a deadline")
		}
	case <-time.After(time.Second):
		t.Fatal("fan-out callback never ran")
	}
}
