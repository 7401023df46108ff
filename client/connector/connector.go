// Package connector keeps one logical connection to the cluster alive for a
// chat client. It probes the current server before use and walks the
// configured server list when the probe fails, so callers always see a live
// handle or an explicit discovery failure.
package connector

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	logging "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/yaml.v2"

	pb "github.com/chatterd/chatterd/gen/chat"
)

const (
	// ProbeTimeout bounds the heartbeat sent before each operation.
	ProbeTimeout = 2 * time.Second

	// RescanDelay is how long Acquire sleeps when no server answered,
	// giving replicas time to come back before the next scan.
	RescanDelay = 1 * time.Second

	// RequestorID marks client probes so servers leave their peer tables
	// alone.
	RequestorID = "Client"
)

// ErrNoServers is returned by Ensure when no configured server answered a
// probe.
var ErrNoServers = errors.New("no server reachable")

// Address is one server endpoint in preference order.
type Address struct {
	IP   string `yaml:"ip"`
	Port string `yaml:"port"`
}

func (a Address) String() string {
	return net.JoinHostPort(a.IP, a.Port)
}

// Config is the client's static server list.
type Config struct {
	Servers []Address `yaml:"servers"`
}

// LoadConfig reads the YAML server list at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read server config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse server config %s: %w", path, err)
	}
	return cfg, nil
}

// Dialer opens a Chat client to the given host:port address.
type Dialer func(addr string) (pb.ChatClient, *grpc.ClientConn, error)

// Connector discovers and holds at most one active server handle.
type Connector struct {
	addrs []Address
	dial  Dialer
	log   *logging.Entry

	mu     sync.Mutex
	client pb.ChatClient
	conn   *grpc.ClientConn
	gen    int
}

// New returns a Connector scanning addrs in order. A nil dialer uses an
// insecure gRPC dial.
func New(addrs []Address, dial Dialer) *Connector {
	if dial == nil {
		dial = func(addr string) (pb.ChatClient, *grpc.ClientConn, error) {
			conn, err := grpc.Dial(addr, grpc.WithInsecure())
			if err != nil {
				return nil, nil, err
			}
			return pb.NewChatClient(conn), conn, nil
		}
	}
	return &Connector{
		addrs: addrs,
		dial:  dial,
		log:   logging.WithField("component", "connector"),
	}
}

// Generation identifies the current handle. Streaming callers record it so a
// handle swap during the stream's lifetime can be detected.
func (c *Connector) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Ensure returns a live server handle, probing the current one first and
// falling back to a scan of the configured list.
func (c *Connector) Ensure(ctx context.Context) (pb.ChatClient, int, error) {
	c.mu.Lock()
	client, gen := c.client, c.gen
	c.mu.Unlock()

	if client != nil {
		if c.probe(ctx, client) == nil {
			return client, gen, nil
		}
		c.log.Info("current server stopped answering, rediscovering")
		c.Invalidate(gen)
	}

	for _, addr := range c.addrs {
		client, conn, err := c.dial(addr.String())
		if err != nil {
			continue
		}
		if err := c.probe(ctx, client); err != nil {
			c.log.Debugf("server %s not answering: %s", addr, err)
			conn.Close()
			continue
		}

		c.mu.Lock()
		if c.client != nil {
			// Another goroutine installed a handle while we scanned.
			client, gen = c.client, c.gen
			c.mu.Unlock()
			conn.Close()
			return client, gen, nil
		}
		c.client, c.conn = client, conn
		c.gen++
		gen = c.gen
		c.mu.Unlock()
		c.log.Infof("connected to server %s", addr)
		return client, gen, nil
	}
	return nil, 0, ErrNoServers
}

// Acquire is Ensure with patience: it rescans every RescanDelay until a
// server answers or the context ends.
func (c *Connector) Acquire(ctx context.Context) (pb.ChatClient, int, error) {
	for {
		client, gen, err := c.Ensure(ctx)
		if err == nil {
			return client, gen, nil
		}
		select {
		case <-time.After(RescanDelay):
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
}

// Invalidate drops the handle identified by gen. Stale generations are
// ignored so a slow caller cannot tear down a newer handle.
func (c *Connector) Invalidate(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.conn == nil {
		return
	}
	c.conn.Close()
	c.client, c.conn = nil, nil
}

// Close tears down the active handle.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.client, c.conn = nil, nil
	}
}

func (c *Connector) probe(ctx context.Context, client pb.ChatClient) error {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()
	_, err := client.Heartbeat(ctx, &pb.HeartbeatRequest{RequestorId: RequestorID})
	return err
}
