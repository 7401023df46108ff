package prometheus

import (
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
)

// NewGrpcServer returns a grpc server pre-configured with prometheus
// interceptors for unary and streaming calls.
func NewGrpcServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts,
		grpc.UnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
		grpc.StreamInterceptor(grpc_prometheus.StreamServerInterceptor),
	)
	server := grpc.NewServer(opts...)
	grpc_prometheus.Register(server)
	return server
}
