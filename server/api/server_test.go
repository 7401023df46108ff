package api

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	logging "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/server/auth"
	"github.com/chatterd/chatterd/server/delivery"
	"github.com/chatterd/chatterd/server/membership"
	"github.com/chatterd/chatterd/server/replication"
	"github.com/chatterd/chatterd/server/store"
	"github.com/chatterd/chatterd/testutil"
)

func newTestServer(t *testing.T, selfID string, fake *testutil.FakeChatClient) (*server, *membership.Map) {
	t.Helper()

	st, err := store.Open(t.TempDir(), "127.0.0.1", "5001")
	if err != nil {
		t.Fatalf("failed to open store: %s", err)
	}
	t.Cleanup(func() { st.Close() })

	members := membership.New(selfID, "127.0.0.1", "5001", testutil.FakeDialer(fake))
	srv := &server{
		store:   st,
		auth:    auth.New(st),
		hub:     delivery.NewHub(st),
		members: members,
		repl:    replication.New(members),
		log:     logging.WithField("test", t.Name()),
	}
	return srv, members
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context {
	if f.ctx != nil {
		return f.ctx
	}
	return context.Background()
}

type pendingStream struct {
	fakeServerStream
	sent []*pb.PendingMessageResponse
}

func (s *pendingStream) Send(m *pb.PendingMessageResponse) error {
	s.sent = append(s.sent, m)
	return nil
}

type usersStream struct {
	fakeServerStream
	sent []*pb.GetUsersResponse
}

func (s *usersStream) Send(m *pb.GetUsersResponse) error {
	s.sent = append(s.sent, m)
	return nil
}

type serverInfoStream struct {
	fakeServerStream
	sent []*pb.ServerInfo
}

func (s *serverInfoStream) Send(m *pb.ServerInfo) error {
	s.sent = append(s.sent, m)
	return nil
}

type monitorStream struct {
	fakeServerStream
	sent chan *pb.ChatMessage
}

func (s *monitorStream) Send(m *pb.ChatMessage) error {
	s.sent <- m
	return nil
}

type fakeGetServersClient struct {
	grpc.ClientStream
	infos []*pb.ServerInfo
}

func (f *fakeGetServersClient) Recv() (*pb.ServerInfo, error) {
	if len(f.infos) == 0 {
		return nil, io.EOF
	}
	info := f.infos[0]
	f.infos = f.infos[1:]
	return info, nil
}

func TestRegisterAppliesLocally(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}

	req := &pb.RegisterRequest{Username: "carol", Password: "pw", Email: "c@x", Source: pb.Source_CLIENT}
	resp, err := srv.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register failed: %s", err)
	}
	if resp.GetStatus() != pb.Status_SUCCESS {
		t.Fatalf("expected SUCCESS, got %s: %s", resp.GetStatus(), resp.GetMessage())
	}

	dup := &pb.RegisterRequest{Username: "carol", Password: "pw2", Email: "c2@x", Source: pb.Source_CLIENT}
	resp, err = srv.Register(context.Background(), dup)
	if err != nil {
		t.Fatalf("duplicate Register errored: %s", err)
	}
	if resp.GetStatus() != pb.Status_FAILURE || resp.GetMessage() != "Username already exists." {
		t.Fatalf("unexpected duplicate response: %s %q", resp.GetStatus(), resp.GetMessage())
	}

	// The first registration's credentials must be intact.
	if err := srv.auth.Authenticate("carol", "pw"); err != nil {
		t.Fatalf("original credentials no longer valid: %s", err)
	}
}

func TestRegisterForwardsToLeader(t *testing.T) {
	forwarded := make(chan *pb.RegisterRequest, 1)
	fake := &testutil.FakeChatClient{
		NewReplicaFunc: func(ctx context.Context, in *pb.NewReplicaRequest) (*pb.LeaderResponse, error) {
			return &pb.LeaderResponse{LeaderId: "a-leader", Ip: "127.0.0.1", Port: "6001"}, nil
		},
		GetServersFunc: func(ctx context.Context, in *pb.GetServersRequest) (pb.Chat_GetServersClient, error) {
			return &fakeGetServersClient{}, nil
		},
		RegisterFunc: func(ctx context.Context, in *pb.RegisterRequest) (*pb.RegisterResponse, error) {
			forwarded <- in
			return &pb.RegisterResponse{Status: pb.Status_SUCCESS, Message: "Success"}, nil
		},
	}

	srv, members := newTestServer(t, "b-replica", fake)
	if err := members.Join("127.0.0.1", "6001"); err != nil {
		t.Fatalf("failed to join: %s", err)
	}
	if members.IsLeader() {
		t.Fatal("replica must not be leader after join")
	}

	req := &pb.RegisterRequest{Username: "carol", Password: "pw", Source: pb.Source_CLIENT}
	resp, err := srv.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register failed: %s", err)
	}
	if resp.GetStatus() != pb.Status_SUCCESS {
		t.Fatalf("expected forwarded SUCCESS, got %s", resp.GetStatus())
	}

	select {
	case in := <-forwarded:
		if in.GetSource() != pb.Source_CLIENT {
			t.Fatalf("forwarded request must keep its client source, got %s", in.GetSource())
		}
	default:
		t.Fatal("request never reached the leader")
	}

	// The replica must not have applied the write itself.
	if err := srv.auth.Authenticate("carol", "pw"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected no local user row, got: %v", err)
	}
}

func TestRegisterFanoutRetagsSource(t *testing.T) {
	replicated := make(chan *pb.RegisterRequest, 1)
	fake := &testutil.FakeChatClient{
		RegisterFunc: func(ctx context.Context, in *pb.RegisterRequest) (*pb.RegisterResponse, error) {
			replicated <- in
			return &pb.RegisterResponse{Status: pb.Status_SUCCESS}, nil
		},
	}

	srv, members := newTestServer(t, "a-leader", fake)
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}
	if err := members.AddPeer("b-replica", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}

	req := &pb.RegisterRequest{Username: "carol", Password: "pw", Source: pb.Source_CLIENT}
	if _, err := srv.Register(context.Background(), req); err != nil {
		t.Fatalf("Register failed: %s", err)
	}

	select {
	case in := <-replicated:
		if in.GetSource() != pb.Source_LEADER {
			t.Fatalf("fan-out must be tagged leader-sourced, got %s", in.GetSource())
		}
	case <-time.After(time.Second):
		t.Fatal("write never fanned out to the peer")
	}
}

func TestLeaderSourcedWriteAppliesWithoutForwarding(t *testing.T) {
	// A replica with no usable leader reference must still apply
	// leader-sourced writes locally.
	srv, _ := newTestServer(t, "b-replica", &testutil.FakeChatClient{})

	req := &pb.RegisterRequest{Username: "carol", Password: "pw", Source: pb.Source_LEADER}
	resp, err := srv.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register failed: %s", err)
	}
	if resp.GetStatus() != pb.Status_SUCCESS {
		t.Fatalf("expected SUCCESS, got %s", resp.GetStatus())
	}
	if err := srv.auth.Authenticate("carol", "pw"); err != nil {
		t.Fatalf("leader-sourced write not applied locally: %s", err)
	}
}

func TestClientWriteWithoutLeaderFails(t *testing.T) {
	srv, _ := newTestServer(t, "b-replica", &testutil.FakeChatClient{})

	resp, err := srv.Register(context.Background(), &pb.RegisterRequest{
		Username: "carol", Password: "pw", Source: pb.Source_CLIENT,
	})
	if err != nil {
		t.Fatalf("Register errored: %s", err)
	}
	if resp.GetStatus() != pb.Status_FAILURE {
		t.Fatal("a client write with no reachable leader must fail in-band")
	}
}

func TestSendMessageOfflinePersistsPending(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}

	msg := &pb.ChatMessage{
		Sender: "alice", Recipient: "bob", Body: "hi",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    pb.Source_CLIENT,
	}
	resp, err := srv.SendMessage(context.Background(), msg)
	if err != nil {
		t.Fatalf("SendMessage failed: %s", err)
	}
	if resp.GetStatus() != pb.Status_SUCCESS {
		t.Fatalf("expected SUCCESS, got %s", resp.GetStatus())
	}

	pending, err := srv.store.PendingMessages("bob")
	if err != nil {
		t.Fatalf("failed to read pending messages: %s", err)
	}
	if len(pending) != 1 || pending[0].Body != "hi" {
		t.Fatalf("unexpected pending messages: %+v", pending)
	}
}

func TestGetPendingMessageHonorsLimit(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := srv.store.SaveMessage(store.Message{
			Sender: "alice", Recipient: "bob", Body: "hi",
			Timestamp: base.Add(time.Duration(i) * time.Second).Format(time.RFC3339),
			Pending:   true,
		})
		if err != nil {
			t.Fatalf("failed to seed message: %s", err)
		}
	}

	first := &pendingStream{}
	err := srv.GetPendingMessage(&pb.PendingMessageRequest{
		Username: "bob", Limit: 2, Source: pb.Source_CLIENT,
	}, first)
	if err != nil {
		t.Fatalf("GetPendingMessage failed: %s", err)
	}
	if len(first.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(first.sent))
	}

	second := &pendingStream{}
	err = srv.GetPendingMessage(&pb.PendingMessageRequest{
		Username: "bob", Limit: 10, Source: pb.Source_CLIENT,
	}, second)
	if err != nil {
		t.Fatalf("second GetPendingMessage failed: %s", err)
	}
	if len(second.sent) != 3 {
		t.Fatalf("expected the remaining 3 messages, got %d", len(second.sent))
	}

	remaining, err := srv.store.PendingMessages("bob")
	if err != nil {
		t.Fatalf("failed to read pending messages: %s", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected an empty pending queue, got %d", len(remaining))
	}
}

func TestGetPendingMessageRejectsNonPositiveLimit(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}

	err := srv.GetPendingMessage(&pb.PendingMessageRequest{
		Username: "bob", Limit: 0, Source: pb.Source_CLIENT,
	}, &pendingStream{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got: %v", err)
	}
}

func TestGetUsersStreamsEveryUsername(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}
	for _, u := range []string{"alice", "bob"} {
		if err := srv.auth.Register(u, "pw", ""); err != nil {
			t.Fatalf("failed to register %s: %s", u, err)
		}
	}

	stream := &usersStream{}
	if err := srv.GetUsers(&pb.GetUsersRequest{Username: "alice"}, stream); err != nil {
		t.Fatalf("GetUsers failed: %s", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("expected 2 users, got %d", len(stream.sent))
	}
	for _, resp := range stream.sent {
		if resp.GetStatus() != pb.Status_SUCCESS {
			t.Fatalf("unexpected status in stream: %s", resp.GetStatus())
		}
	}
}

func TestHeartbeatClientProbe(t *testing.T) {
	srv, _ := newTestServer(t, "self", &testutil.FakeChatClient{})

	resp, err := srv.Heartbeat(context.Background(), &pb.HeartbeatRequest{RequestorId: ClientRequestorID})
	if err != nil {
		t.Fatalf("Heartbeat failed: %s", err)
	}
	if resp.GetResponderId() != "self" || resp.GetStatus() != pb.Status_SUCCESS {
		t.Fatalf("unexpected heartbeat response: %+v", resp)
	}
}

func TestNewReplicaReturnsLeader(t *testing.T) {
	srv, members := newTestServer(t, "a-leader", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}

	resp, err := srv.NewReplica(context.Background(), &pb.NewReplicaRequest{
		ReplicaId: "b-replica", Ip: "127.0.0.1", Port: "5002",
	})
	if err != nil {
		t.Fatalf("NewReplica failed: %s", err)
	}
	if resp.GetLeaderId() != "a-leader" {
		t.Fatalf("expected leader a-leader, got %s", resp.GetLeaderId())
	}

	peers := members.Peers()
	if len(peers) != 1 || peers[0].ID != "b-replica" {
		t.Fatalf("joiner missing from peer table: %+v", peers)
	}
}

func TestGetServersIncludesSelf(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.AddPeer("peer-1", "127.0.0.1", "5002"); err != nil {
		t.Fatalf("failed to add peer: %s", err)
	}

	stream := &serverInfoStream{}
	if err := srv.GetServers(&pb.GetServersRequest{RequestorId: "peer-2"}, stream); err != nil {
		t.Fatalf("GetServers failed: %s", err)
	}

	ids := map[string]bool{}
	for _, info := range stream.sent {
		ids[info.GetServerId()] = true
	}
	if !ids["self"] || !ids["peer-1"] || len(ids) != 2 {
		t.Fatalf("unexpected server set: %v", ids)
	}
}

func TestMonitorMessagesDeliversLive(t *testing.T) {
	srv, members := newTestServer(t, "self", &testutil.FakeChatClient{})
	if err := members.BecomeLeader(); err != nil {
		t.Fatalf("failed to become leader: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &monitorStream{
		fakeServerStream: fakeServerStream{ctx: ctx},
		sent:             make(chan *pb.ChatMessage, 1),
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.MonitorMessages(&pb.MonitorMessagesRequest{
			Username: "bob", Source: pb.Source_CLIENT,
		}, stream)
	}()

	// The subscription attaches asynchronously; retry until the hub sees it.
	msg := &pb.ChatMessage{
		Sender: "alice", Recipient: "bob", Body: "hi",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		live, err := srv.hub.Deliver(msg)
		if err != nil {
			t.Fatalf("failed to deliver: %s", err)
		}
		if live {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("monitor subscription never attached")
		}
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case m := <-stream.sent:
		if m.GetBody() != "hi" {
			t.Fatalf("unexpected message body: %q", m.GetBody())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("monitor stream never yielded the message")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("monitor stream ended with error: %s", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("monitor stream did not end on cancellation")
	}
}
