package connector

import (
	"context"
	"errors"
	"os"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/testutil"
)

// dialerFor routes each address to its own fake client, failing addresses
// with no entry.
func dialerFor(t *testing.T, clients map[string]*testutil.FakeChatClient) Dialer {
	t.Helper()
	return func(addr string) (pb.ChatClient, *grpc.ClientConn, error) {
		client, ok := clients[addr]
		if !ok {
			return nil, nil, errors.New("no route to " + addr)
		}
		conn, err := grpc.Dial("127.0.0.1:1", grpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		return client, conn, nil
	}
}

func deadClient() *testutil.FakeChatClient {
	return &testutil.FakeChatClient{
		HeartbeatFunc: func(ctx context.Context, in *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
}

func TestEnsureScansInPreferenceOrder(t *testing.T) {
	addrs := []Address{
		{IP: "127.0.0.1", Port: "5001"},
		{IP: "127.0.0.1", Port: "5002"},
	}
	alive := &testutil.FakeChatClient{}
	c := New(addrs, dialerFor(t, map[string]*testutil.FakeChatClient{
		"127.0.0.1:5001": deadClient(),
		"127.0.0.1:5002": alive,
	}))
	defer c.Close()

	client, gen, err := c.Ensure(context.Background())
	if err != nil {
		t.Fatalf("Ensure failed: %s", err)
	}
	if client != pb.ChatClient(alive) {
		t.Fatal("expected the second server to be installed")
	}
	if gen != 1 {
		t.Fatalf("expected generation 1, got %d", gen)
	}
}

func TestEnsureReusesHealthyHandle(t *testing.T) {
	probes := 0
	alive := &testutil.FakeChatClient{
		HeartbeatFunc: func(ctx context.Context, in *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
			probes++
			if in.GetRequestorId() != RequestorID {
				t.Errorf("probe must identify as a client, got %q", in.GetRequestorId())
			}
			return &pb.HeartbeatResponse{Status: pb.Status_SUCCESS}, nil
		},
	}
	c := New([]Address{{IP: "127.0.0.1", Port: "5001"}}, dialerFor(t, map[string]*testutil.FakeChatClient{
		"127.0.0.1:5001": alive,
	}))
	defer c.Close()

	for i := 0; i < 3; i++ {
		_, gen, err := c.Ensure(context.Background())
		if err != nil {
			t.Fatalf("Ensure failed: %s", err)
		}
		if gen != 1 {
			t.Fatalf("expected the handle to be reused, generation is %d", gen)
		}
	}
	if probes != 3 {
		t.Fatalf("expected one probe per Ensure, got %d", probes)
	}
}

func TestEnsureFailsWithNoServers(t *testing.T) {
	c := New([]Address{{IP: "127.0.0.1", Port: "5001"}}, dialerFor(t, nil))
	defer c.Close()

	if _, _, err := c.Ensure(context.Background()); !errors.Is(err, ErrNoServers) {
		t.Fatalf("expected ErrNoServers, got: %v", err)
	}
}

func TestInvalidateIgnoresStaleGeneration(t *testing.T) {
	alive := &testutil.FakeChatClient{}
	c := New([]Address{{IP: "127.0.0.1", Port: "5001"}}, dialerFor(t, map[string]*testutil.FakeChatClient{
		"127.0.0.1:5001": alive,
	}))
	defer c.Close()

	_, gen, err := c.Ensure(context.Background())
	if err != nil {
		t.Fatalf("Ensure failed: %s", err)
	}

	c.Invalidate(gen - 1)
	if c.Generation() != gen {
		t.Fatal("stale invalidation must not drop the handle")
	}
	c.mu.Lock()
	installed := c.client != nil
	c.mu.Unlock()
	if !installed {
		t.Fatal("stale invalidation must leave the client installed")
	}

	c.Invalidate(gen)
	c.mu.Lock()
	installed = c.client != nil
	c.mu.Unlock()
	if installed {
		t.Fatal("matching invalidation must drop the handle")
	}
}

func TestFailoverAfterServerDeath(t *testing.T) {
	healthy := true
	first := &testutil.FakeChatClient{
		HeartbeatFunc: func(ctx context.Context, in *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
			if !healthy {
				return nil, errors.New("connection refused")
			}
			return &pb.HeartbeatResponse{Status: pb.Status_SUCCESS}, nil
		},
	}
	second := &testutil.FakeChatClient{}
	c := New([]Address{
		{IP: "127.0.0.1", Port: "5001"},
		{IP: "127.0.0.1", Port: "5002"},
	}, dialerFor(t, map[string]*testutil.FakeChatClient{
		"127.0.0.1:5001": first,
		"127.0.0.1:5002": second,
	}))
	defer c.Close()

	client, _, err := c.Ensure(context.Background())
	if err != nil {
		t.Fatalf("Ensure failed: %s", err)
	}
	if client != pb.ChatClient(first) {
		t.Fatal("expected the first server initially")
	}

	healthy = false
	client, gen, err := c.Ensure(context.Background())
	if err != nil {
		t.Fatalf("failover Ensure failed: %s", err)
	}
	if client != pb.ChatClient(second) {
		t.Fatal("expected failover to the second server")
	}
	if gen != 2 {
		t.Fatalf("expected a new generation after failover, got %d", gen)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/servers.yml"
	data := []byte("servers:\n  - ip: 127.0.0.1\n    port: \"5001\"\n  - ip: 127.0.0.1\n    port: \"5002\"\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write config: %s", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %s", err)
	}
	if len(cfg.Servers) != 2 || cfg.Servers[0].String() != "127.0.0.1:5001" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
