// Package replication implements the leader's write fan-out. Replication is
// best-effort and fire-and-forget: a peer that cannot be reached keeps the
// leader's state authoritative and is dropped by the next heartbeat sweep.
package replication

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	logging "github.com/sirupsen/logrus"

	"github.com/chatterd/chatterd/server/membership"
)

var fanoutFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "replication_fanout_failures_total",
		Help: "Write fan-outs to a peer that failed, partitioned by operation.",
	},
	[]string{"op"},
)

// FanoutTimeout bounds each per-peer replication call. It matches the
// heartbeat interval so a persistently unreachable peer is expelled before
// fan-outs pile up behind it.
const FanoutTimeout = membership.HeartbeatInterval

// Replicator fans client-originated writes out from the leader to every
// known peer.
type Replicator struct {
	members *membership.Map
	log     *logging.Entry
}

// New returns a Replicator over the given membership view.
func New(members *membership.Map) *Replicator {
	return &Replicator{
		members: members,
		log:     logging.WithField("component", "replication"),
	}
}

// Fanout re-issues one logical write to every peer concurrently. Each call
// gets its own bounded context; errors are counted and logged, never
// surfaced, and the caller does not wait for completion.
func (r *Replicator) Fanout(op string, call func(ctx context.Context, peer membership.Peer) error) {
	for _, p := range r.members.Peers() {
		p := p
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), FanoutTimeout)
			defer cancel()
			if err := call(ctx, p); err != nil {
				fanoutFailures.WithLabelValues(op).Inc()
				r.log.Warnf("failed to replicate %s to peer %s: %s", op, p.ID, err)
			}
		}()
	}
}
