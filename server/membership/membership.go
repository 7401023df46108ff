// Package membership tracks the cluster: the peer table, the current leader
// reference, heartbeat liveness, and leader election. The peer table and
// leader reference share one lock and one lifecycle; election swaps the
// leader atomically under that lock.
package membership

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	logging "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	pb "github.com/chatterd/chatterd/gen/chat"
)

const (
	// HeartbeatInterval is the period of the liveness sweep.
	HeartbeatInterval = 1 * time.Second

	// FailureThreshold is how long a peer may stay silent before it is
	// declared failed and dropped.
	FailureThreshold = 3 * HeartbeatInterval

	// RPCTimeout bounds heartbeat probes and the join handshake. Fan-out
	// calls use their own timeout in package replication.
	RPCTimeout = 2 * time.Second
)

var (
	clusterPeers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cluster_peers",
		Help: "Number of live peers in this server's peer table.",
	})
	leaderElections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leader_elections_total",
		Help: "Number of leader elections run by this server.",
	})
)

// Dialer opens a Chat client to the given host:port address.
type Dialer func(addr string) (pb.ChatClient, *grpc.ClientConn, error)

// Peer is one known server process.
type Peer struct {
	ID   string
	IP   string
	Port string

	Client pb.ChatClient

	conn          *grpc.ClientConn
	lastHeartbeat time.Time
}

// Addr returns the peer's dialable address.
func (p *Peer) Addr() string {
	return net.JoinHostPort(p.IP, p.Port)
}

// Leader names the server currently sequencing writes, along with a live
// client handle to it. The handle is a self-loopback connection when this
// process is the leader.
type Leader struct {
	ID     string
	IP     string
	Port   string
	Client pb.ChatClient
}

// Map is the membership view of one server process.
type Map struct {
	selfID   string
	selfIP   string
	selfPort string
	dial     Dialer
	log      *logging.Entry

	mu           sync.Mutex
	peers        map[string]*Peer
	leader       Leader
	selfConn     *grpc.ClientConn
	leaderChange chan struct{}

	stopOnce sync.Once
	stopCh   chan struct{}
	started  bool
	stopped  chan struct{}
}

// New returns a membership map with an empty peer table and no leader.
func New(selfID, selfIP, selfPort string, dial Dialer) *Map {
	return &Map{
		selfID:   selfID,
		selfIP:   selfIP,
		selfPort: selfPort,
		dial:     dial,
		log: logging.WithFields(logging.Fields{
			"component": "membership",
			"self":      selfID,
		}),
		peers:        make(map[string]*Peer),
		leaderChange: make(chan struct{}),
		stopCh:       make(chan struct{}),
		stopped:      make(chan struct{}),
	}
}

// SelfID returns this process's identifier.
func (m *Map) SelfID() string {
	return m.selfID
}

// SelfAddr returns this process's advertised ip and port.
func (m *Map) SelfAddr() (string, string) {
	return m.selfIP, m.selfPort
}

// Leader returns the current leader reference.
func (m *Map) Leader() Leader {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leader
}

// IsLeader reports whether this process currently believes it is the leader.
func (m *Map) IsLeader() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leader.ID == m.selfID
}

// LeaderChange returns a channel that is closed the next time the leader
// reference is swapped. Long-lived streams select on it so they can unwind
// and let clients re-discover.
func (m *Map) LeaderChange() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderChange
}

// Peers returns a snapshot of the peer table. The returned values are copies;
// callers may invoke RPCs on the embedded clients without holding any lock.
func (m *Map) Peers() []Peer {
	m.mu.Lock()
	defer m.mu.Unlock()
	peers := make([]Peer, 0, len(m.peers))
	for _, p := range m.peers {
		peers = append(peers, *p)
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i].ID < peers[j].ID })
	return peers
}

// AddPeer dials and records a newly announced peer. Adding self or an
// already-known peer is a no-op.
func (m *Map) AddPeer(id, ip, port string) error {
	if id == m.selfID {
		return nil
	}
	m.mu.Lock()
	_, known := m.peers[id]
	m.mu.Unlock()
	if known {
		return nil
	}

	client, conn, err := m.dial(net.JoinHostPort(ip, port))
	if err != nil {
		return fmt.Errorf("failed to dial peer %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, known := m.peers[id]; known {
		conn.Close()
		return nil
	}
	m.peers[id] = &Peer{
		ID:            id,
		IP:            ip,
		Port:          port,
		Client:        client,
		conn:          conn,
		lastHeartbeat: time.Now(),
	}
	clusterPeers.Set(float64(len(m.peers)))
	m.log.Infof("added peer %s at %s:%s", id, ip, port)
	return nil
}

// Refresh records receipt of a heartbeat from (or a successful probe of) the
// given peer.
func (m *Map) Refresh(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.peers[id]; ok {
		p.lastHeartbeat = time.Now()
	}
}

// BecomeLeader installs this process as the cluster leader, dialing a
// loopback handle to itself. Used at startup by the initial server.
func (m *Map) BecomeLeader() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.installSelfLocked()
}

func (m *Map) installSelfLocked() error {
	client, conn, err := m.dial(net.JoinHostPort(m.selfIP, m.selfPort))
	if err != nil {
		return fmt.Errorf("failed to dial loopback: %w", err)
	}
	if m.selfConn != nil {
		m.selfConn.Close()
	}
	m.selfConn = conn
	m.swapLeaderLocked(Leader{ID: m.selfID, IP: m.selfIP, Port: m.selfPort, Client: client})
	m.log.Info("assuming cluster leadership")
	return nil
}

func (m *Map) swapLeaderLocked(l Leader) {
	m.leader = l
	close(m.leaderChange)
	m.leaderChange = make(chan struct{})
}

// Join performs the cluster join handshake through a bootstrap address:
// announce self, learn the leader, then copy the leader's peer table.
func (m *Map) Join(bootstrapIP, bootstrapPort string) error {
	bootClient, bootConn, err := m.dial(net.JoinHostPort(bootstrapIP, bootstrapPort))
	if err != nil {
		return fmt.Errorf("failed to dial bootstrap %s:%s: %w", bootstrapIP, bootstrapPort, err)
	}
	defer bootConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), RPCTimeout)
	defer cancel()
	resp, err := bootClient.NewReplica(ctx, &pb.NewReplicaRequest{
		ReplicaId: m.selfID,
		Ip:        m.selfIP,
		Port:      m.selfPort,
	})
	if err != nil {
		return fmt.Errorf("join handshake failed: %w", err)
	}

	if err := m.AddPeer(resp.GetLeaderId(), resp.GetIp(), resp.GetPort()); err != nil {
		return err
	}
	m.mu.Lock()
	leaderPeer, ok := m.peers[resp.GetLeaderId()]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("bootstrap named self as leader for %s", m.selfID)
	}
	m.swapLeaderLocked(Leader{
		ID:     leaderPeer.ID,
		IP:     leaderPeer.IP,
		Port:   leaderPeer.Port,
		Client: leaderPeer.Client,
	})
	leaderClient := leaderPeer.Client
	m.mu.Unlock()
	m.log.Infof("joined cluster, leader is %s", resp.GetLeaderId())

	streamCtx, cancelStream := context.WithTimeout(context.Background(), RPCTimeout)
	defer cancelStream()
	stream, err := leaderClient.GetServers(streamCtx, &pb.GetServersRequest{RequestorId: m.selfID})
	if err != nil {
		return fmt.Errorf("failed to fetch peer table from leader: %w", err)
	}
	for {
		info, err := stream.Recv()
		if err != nil {
			break
		}
		if err := m.AddPeer(info.GetServerId(), info.GetIp(), info.GetPort()); err != nil {
			m.log.Warnf("failed to add announced peer %s: %s", info.GetServerId(), err)
		}
	}
	return nil
}

// Start launches the background heartbeat and failure-detection sweep. One
// ticker drives both so teardown is deterministic.
func (m *Map) Start() {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
	go func() {
		defer close(m.stopped)
		ticker := time.NewTicker(HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stopCh:
				return
			}
		}
	}()
}

// Close stops the sweep and tears down every connection.
func (m *Map) Close() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.mu.Lock()
	started := m.started
	m.mu.Unlock()
	if started {
		<-m.stopped
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.peers {
		p.conn.Close()
		delete(m.peers, id)
	}
	if m.selfConn != nil {
		m.selfConn.Close()
		m.selfConn = nil
	}
	clusterPeers.Set(0)
}

func (m *Map) sweep() {
	peers := m.Peers()
	var wg sync.WaitGroup
	for _, p := range peers {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), RPCTimeout)
			defer cancel()
			_, err := p.Client.Heartbeat(ctx, &pb.HeartbeatRequest{
				RequestorId: m.selfID,
				ServerId:    p.ID,
			})
			if err != nil {
				m.log.Debugf("heartbeat to %s failed: %s", p.ID, err)
				return
			}
			m.Refresh(p.ID)
		}()
	}
	wg.Wait()
	m.expire()
}

func (m *Map) expire() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	lostLeader := false
	for id, p := range m.peers {
		if now.Sub(p.lastHeartbeat) <= FailureThreshold {
			continue
		}
		m.log.Warnf("peer %s failed (no heartbeat for %s), removing", id, now.Sub(p.lastHeartbeat).Truncate(time.Millisecond))
		p.conn.Close()
		delete(m.peers, id)
		if id == m.leader.ID {
			lostLeader = true
		}
	}
	clusterPeers.Set(float64(len(m.peers)))

	if lostLeader {
		m.electLocked()
	}
}

// electLocked runs the minimum-identifier election over the surviving peers
// and self. Every surviving detector computes the same winner from its own
// table, so no vote exchange is needed.
func (m *Map) electLocked() {
	leaderElections.Inc()

	winnerID := m.selfID
	var winnerPeer *Peer
	for id, p := range m.peers {
		if id < winnerID {
			winnerID = id
			winnerPeer = p
		}
	}

	if winnerPeer == nil {
		if err := m.installSelfLocked(); err != nil {
			m.log.Errorf("failed to install self as leader: %s", err)
		}
		return
	}
	m.swapLeaderLocked(Leader{
		ID:     winnerPeer.ID,
		IP:     winnerPeer.IP,
		Port:   winnerPeer.Port,
		Client: winnerPeer.Client,
	})
	m.log.Infof("elected new leader %s at %s", winnerPeer.ID, winnerPeer.Addr())
}
