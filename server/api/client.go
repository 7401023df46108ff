package api

import (
	"google.golang.org/grpc"

	pb "github.com/chatterd/chatterd/gen/chat"
)

// NewClient creates a client for the Chat service listening at addr.
func NewClient(addr string) (pb.ChatClient, *grpc.ClientConn, error) {
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return pb.NewChatClient(conn), conn, nil
}
