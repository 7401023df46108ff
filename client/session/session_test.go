package session

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	"github.com/chatterd/chatterd/client/connector"
	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/testutil"
)

func testConnector(client *testutil.FakeChatClient) *connector.Connector {
	dial := func(addr string) (pb.ChatClient, *grpc.ClientConn, error) {
		conn, err := grpc.Dial("127.0.0.1:1", grpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		return client, conn, nil
	}
	return connector.New([]connector.Address{{IP: "127.0.0.1", Port: "5001"}}, dial)
}

func TestSendRetriesOnceOnTransportError(t *testing.T) {
	attempts := 0
	fake := &testutil.FakeChatClient{
		SendMessageFunc: func(ctx context.Context, in *pb.ChatMessage) (*pb.MessageResponse, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("transport is closing")
			}
			if in.GetSource() != pb.Source_CLIENT {
				t.Errorf("client sends must be client-sourced, got %s", in.GetSource())
			}
			return &pb.MessageResponse{Status: pb.Status_SUCCESS}, nil
		},
	}
	conn := testConnector(fake)
	defer conn.Close()

	s := New(conn)
	if err := s.Send(context.Background(), "alice", "bob", "hi"); err != nil {
		t.Fatalf("Send failed despite retry: %s", err)
	}
	if attempts != 2 {
		t.Fatalf("expected exactly one retry, got %d attempts", attempts)
	}
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	fake := &testutil.FakeChatClient{
		LoginFunc: func(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
			return &pb.LoginResponse{Status: pb.Status_FAILURE, Message: "Invalid username or password"}, nil
		},
	}
	conn := testConnector(fake)
	defer conn.Close()

	err := New(conn).Login(context.Background(), "alice", "wrong")
	if err == nil || err.Error() != "Invalid username or password" {
		t.Fatalf("expected the server's failure message, got: %v", err)
	}
}

func TestRegisterFailureIsNotRetried(t *testing.T) {
	attempts := 0
	fake := &testutil.FakeChatClient{
		RegisterFunc: func(ctx context.Context, in *pb.RegisterRequest) (*pb.RegisterResponse, error) {
			attempts++
			return &pb.RegisterResponse{Status: pb.Status_FAILURE, Message: "Username already exists."}, nil
		},
	}
	conn := testConnector(fake)
	defer conn.Close()

	err := New(conn).Register(context.Background(), "carol", "pw", "c@x")
	if err == nil {
		t.Fatal("expected an error for a failed registration")
	}
	if attempts != 1 {
		t.Fatalf("in-band failures must not be retried, got %d attempts", attempts)
	}
}
