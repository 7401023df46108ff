package membership

import (
	"testing"
	"time"

	"github.com/chatterd/chatterd/testutil"
)

func testMap(t *testing.T, selfID string) *Map {
	t.Helper()
	m := New(selfID, "127.0.0.1", "5001", testutil.FakeDialer(&testutil.FakeChatClient{}))
	t.Cleanup(m.Close)
	return m
}

func TestAddPeer(t *testing.T) {
	m := testMap(t, "self")

	if err := m.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	if err := m.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("re-adding a known peer should be a no-op: %s", err)
	}
	if err := m.AddPeer("self", "127.0.0.1", "5001"); err != nil {
		t.Fatalf("adding self should be a no-op: %s", err)
	}

	peers := m.Peers()
	if len(peers) != 1 || peers[0].ID != "peer-1" {
		t.Fatalf("unexpected peer table: %+v", peers)
	}
	if peers[0].Addr() != "127.0.0.1:5002" {
		t.Fatalf("unexpected peer address: %s", peers[0].Addr())
	}
}

func TestBecomeLeader(t *testing.T) {
	m := testMap(t, "self")

	if m.IsLeader() {
		t.Fatal("fresh map must not believe itself leader")
	}
	if err := m.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}
	if !m.IsLeader() {
		t.Fatal("expected map to be leader after BecomeLeader")
	}
	leader := m.Leader()
	if leader.ID != "self" || leader.Client == nil {
		t.Fatalf("unexpected leader reference: %+v", leader)
	}
}

func TestExpireDropsSilentPeers(t *testing.T) {
	m := testMap(t, "self")

	if err := m.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	if err := m.AddPeer("peer-2", "127.0.0.1", "5003"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}

	m.mu.Lock()
	m.peers["peer-1"].lastHeartbeat = time.Now().Add(-2 * FailureThreshold)
	m.mu.Unlock()

	m.expire()

	peers := m.Peers()
	if len(peers) != 1 || peers[0].ID != "peer-2" {
		t.Fatalf("expected only peer-2 to survive, got %+v", peers)
	}
}

func TestRefreshKeepsPeerAlive(t *testing.T) {
	m := testMap(t, "self")

	if err := m.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	m.mu.Lock()
	m.peers["peer-1"].lastHeartbeat = time.Now().Add(-2 * FailureThreshold)
	m.mu.Unlock()

	m.Refresh("peer-1")
	m.expire()

	if len(m.Peers()) != 1 {
		t.Fatal("refreshed peer must survive the sweep")
	}
}

func TestElectionSelfWins(t *testing.T) {
	// Identifiers sort lexicographically; "a-self" beats the survivors.
	m := testMap(t, "a-self")

	if err := m.AddPeer("b-peer", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	if err := m.AddPeer("z-leader", "127.0.0.1", "5003"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	m.mu.Lock()
	m.leader = Leader{ID: "z-leader", IP: "127.0.0.1", Port: "5003", Client: m.peers["z-leader"].Client}
	m.peers["z-leader"].lastHeartbeat = time.Now().Add(-2 * FailureThreshold)
	m.mu.Unlock()

	leaderChange := m.LeaderChange()
	m.expire()

	select {
	case <-leaderChange:
	default:
		t.Fatal("expected the leader-change signal to fire")
	}
	if !m.IsLeader() {
		t.Fatalf("expected self to win the election, leader is %s", m.Leader().ID)
	}
}

func TestElectionPeerWins(t *testing.T) {
	m := testMap(t, "m-self")

	if err := m.AddPeer("b-peer", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	if err := m.AddPeer("a-peer", "127.0.0.1", "5004"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	if err := m.AddPeer("z-leader", "127.0.0.1", "5003"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	m.mu.Lock()
	m.leader = Leader{ID: "z-leader", IP: "127.0.0.1", Port: "5003", Client: m.peers["z-leader"].Client}
	m.peers["z-leader"].lastHeartbeat = time.Now().Add(-2 * FailureThreshold)
	m.mu.Unlock()

	m.expire()

	leader := m.Leader()
	if leader.ID != "a-peer" {
		t.Fatalf("expected a-peer to win the election, got %s", leader.ID)
	}
	if m.IsLeader() {
		t.Fatal("self must not believe it is leader")
	}
	if leader.Client == nil {
		t.Fatal("elected leader must carry a live client handle")
	}
}

func TestElectionLastSurvivor(t *testing.T) {
	m := testMap(t, "z-self")

	if err := m.AddPeer("a-leader", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}
	m.mu.Lock()
	m.leader = Leader{ID: "a-leader", IP: "127.0.0.1", Port: "5002", Client: m.peers["a-leader"].Client}
	m.peers["a-leader"].lastHeartbeat = time.Now().Add(-2 * FailureThreshold)
	m.mu.Unlock()

	m.expire()

	// With no survivors the highest id still wins: it is the only candidate.
	if !m.IsLeader() {
		t.Fatalf("last survivor must become leader, leader is %s", m.Leader().ID)
	}
}
