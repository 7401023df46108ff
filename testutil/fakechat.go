// Package testutil provides fakes shared by the package tests.
package testutil

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/chatterd/chatterd/gen/chat"
)

// FakeChatClient implements pb.ChatClient with overridable behavior per
// method. Methods without an override succeed: those whose response has a
// status return SUCCESS, NewReplica returns an empty LeaderResponse, and
// stream-returning ones fail with codes.Unimplemented.
type FakeChatClient struct {
	RegisterFunc          func(ctx context.Context, in *pb.RegisterRequest) (*pb.RegisterResponse, error)
	LoginFunc             func(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error)
	SaveSettingsFunc      func(ctx context.Context, in *pb.SaveSettingsRequest) (*pb.SaveSettingsResponse, error)
	DeleteAccountFunc     func(ctx context.Context, in *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error)
	SendMessageFunc       func(ctx context.Context, in *pb.ChatMessage) (*pb.MessageResponse, error)
	HeartbeatFunc         func(ctx context.Context, in *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error)
	NewReplicaFunc        func(ctx context.Context, in *pb.NewReplicaRequest) (*pb.LeaderResponse, error)
	GetSettingsFunc       func(ctx context.Context, in *pb.GetSettingsRequest) (*pb.GetSettingsResponse, error)
	GetUsersFunc          func(ctx context.Context, in *pb.GetUsersRequest) (pb.Chat_GetUsersClient, error)
	GetPendingMessageFunc func(ctx context.Context, in *pb.PendingMessageRequest) (pb.Chat_GetPendingMessageClient, error)
	GetMessageHistoryFunc func(ctx context.Context, in *pb.MessageHistoryRequest) (pb.Chat_GetMessageHistoryClient, error)
	MonitorMessagesFunc   func(ctx context.Context, in *pb.MonitorMessagesRequest) (pb.Chat_MonitorMessagesClient, error)
	GetServersFunc        func(ctx context.Context, in *pb.GetServersRequest) (pb.Chat_GetServersClient, error)
}

var _ pb.ChatClient = &FakeChatClient{}

func (f *FakeChatClient) Register(ctx context.Context, in *pb.RegisterRequest, _ ...grpc.CallOption) (*pb.RegisterResponse, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, in)
	}
	return &pb.RegisterResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) Login(ctx context.Context, in *pb.LoginRequest, _ ...grpc.CallOption) (*pb.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, in)
	}
	return &pb.LoginResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) GetSettings(ctx context.Context, in *pb.GetSettingsRequest, _ ...grpc.CallOption) (*pb.GetSettingsResponse, error) {
	if f.GetSettingsFunc != nil {
		return f.GetSettingsFunc(ctx, in)
	}
	return &pb.GetSettingsResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) SaveSettings(ctx context.Context, in *pb.SaveSettingsRequest, _ ...grpc.CallOption) (*pb.SaveSettingsResponse, error) {
	if f.SaveSettingsFunc != nil {
		return f.SaveSettingsFunc(ctx, in)
	}
	return &pb.SaveSettingsResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) DeleteAccount(ctx context.Context, in *pb.DeleteAccountRequest, _ ...grpc.CallOption) (*pb.DeleteAccountResponse, error) {
	if f.DeleteAccountFunc != nil {
		return f.DeleteAccountFunc(ctx, in)
	}
	return &pb.DeleteAccountResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) SendMessage(ctx context.Context, in *pb.ChatMessage, _ ...grpc.CallOption) (*pb.MessageResponse, error) {
	if f.SendMessageFunc != nil {
		return f.SendMessageFunc(ctx, in)
	}
	return &pb.MessageResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) Heartbeat(ctx context.Context, in *pb.HeartbeatRequest, _ ...grpc.CallOption) (*pb.HeartbeatResponse, error) {
	if f.HeartbeatFunc != nil {
		return f.HeartbeatFunc(ctx, in)
	}
	return &pb.HeartbeatResponse{Status: pb.Status_SUCCESS}, nil
}

func (f *FakeChatClient) NewReplica(ctx context.Context, in *pb.NewReplicaRequest, _ ...grpc.CallOption) (*pb.LeaderResponse, error) {
	if f.NewReplicaFunc != nil {
		return f.NewReplicaFunc(ctx, in)
	}
	return &pb.LeaderResponse{}, nil
}

func (f *FakeChatClient) GetUsers(ctx context.Context, in *pb.GetUsersRequest, _ ...grpc.CallOption) (pb.Chat_GetUsersClient, error) {
	if f.GetUsersFunc != nil {
		return f.GetUsersFunc(ctx, in)
	}
	return nil, status.Error(codes.Unimplemented, "GetUsers not faked")
}

func (f *FakeChatClient) GetPendingMessage(ctx context.Context, in *pb.PendingMessageRequest, _ ...grpc.CallOption) (pb.Chat_GetPendingMessageClient, error) {
	if f.GetPendingMessageFunc != nil {
		return f.GetPendingMessageFunc(ctx, in)
	}
	return nil, status.Error(codes.Unimplemented, "GetPendingMessage not faked")
}

func (f *FakeChatClient) GetMessageHistory(ctx context.Context, in *pb.MessageHistoryRequest, _ ...grpc.CallOption) (pb.Chat_GetMessageHistoryClient, error) {
	if f.GetMessageHistoryFunc != nil {
		return f.GetMessageHistoryFunc(ctx, in)
	}
	return nil, status.Error(codes.Unimplemented, "GetMessageHistory not faked")
}

func (f *FakeChatClient) MonitorMessages(ctx context.Context, in *pb.MonitorMessagesRequest, _ ...grpc.CallOption) (pb.Chat_MonitorMessagesClient, error) {
	if f.MonitorMessagesFunc != nil {
		return f.MonitorMessagesFunc(ctx, in)
	}
	return nil, status.Error(codes.Unimplemented, "MonitorMessages not faked")
}

func (f *FakeChatClient) GetServers(ctx context.Context, in *pb.GetServersRequest, _ ...grpc.CallOption) (pb.Chat_GetServersClient, error) {
	if f.GetServersFunc != nil {
		return f.GetServersFunc(ctx, in)
	}
	return nil, status.Error(codes.Unimplemented, "GetServers not faked")
}

// FakeDialer returns a dialer handing out the given fake client. The
// returned ClientConn is a real but lazily connected one so callers can
// Close it; it never carries traffic.
func FakeDialer(client pb.ChatClient) func(addr string) (pb.ChatClient, *grpc.ClientConn, error) {
	return func(addr string) (pb.ChatClient, *grpc.ClientConn, error) {
		conn, err := grpc.Dial("127.0.0.1:1", grpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		return client, conn, nil
	}
}
