// Package api implements the Chat gRPC surface. Handlers enforce the write
// routing rule: client-originated writes on a replica are forwarded to the
// leader; the leader applies them locally and re-issues them to every peer
// tagged as leader-sourced.
package api

import (
	"context"
	"errors"
	"io"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	logging "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/pkg/prometheus"
	"github.com/chatterd/chatterd/server/auth"
	"github.com/chatterd/chatterd/server/delivery"
	"github.com/chatterd/chatterd/server/membership"
	"github.com/chatterd/chatterd/server/replication"
	"github.com/chatterd/chatterd/server/store"
)

var messagesSent = promauto.NewCounter(promclient.CounterOpts{
	Name: "messages_sent_total",
	Help: "Messages accepted by this server's SendMessage handler.",
})

// ClientRequestorID marks a Heartbeat probe from a chat client rather than a
// cluster peer; such probes never touch the peer table.
const ClientRequestorID = "Client"

type server struct {
	pb.UnimplementedChatServer

	store   *store.Store
	auth    *auth.Auth
	hub     *delivery.Hub
	members *membership.Map
	repl    *replication.Replicator

	log *logging.Entry
}

// NewServer returns a grpc.Server exposing the Chat service, wired to the
// given store, hub, and cluster state.
func NewServer(
	addr string,
	st *store.Store,
	au *auth.Auth,
	hub *delivery.Hub,
	members *membership.Map,
	repl *replication.Replicator,
) *grpc.Server {
	log := logging.WithFields(logging.Fields{
		"addr":      addr,
		"component": "server",
	})

	srv := server{
		store:   st,
		auth:    au,
		hub:     hub,
		members: members,
		repl:    repl,
		log:     log,
	}

	s := prometheus.NewGrpcServer()
	pb.RegisterChatServer(s, &srv)
	return s
}

// forwardTarget returns the leader handle when a client-originated write
// arriving at a replica must be forwarded. The second result is false when
// the write should be applied locally instead.
func (s *server) forwardTarget(src pb.Source) (membership.Leader, bool) {
	if src != pb.Source_CLIENT || s.members.IsLeader() {
		return membership.Leader{}, false
	}
	return s.members.Leader(), true
}

// shouldFanout reports whether the local application of a client write makes
// this server responsible for replicating it.
func (s *server) shouldFanout(src pb.Source) bool {
	return src == pb.Source_CLIENT && s.members.IsLeader()
}

func (s *server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling Register")

	if leader, forward := s.forwardTarget(req.GetSource()); forward {
		if leader.Client == nil {
			return &pb.RegisterResponse{Status: pb.Status_FAILURE, Message: "no leader available"}, nil
		}
		log.Debug("forwarding Register to leader")
		resp, err := leader.Client.Register(ctx, req)
		if err != nil {
			log.Warnf("leader rejected forwarded Register: %s", err)
			return &pb.RegisterResponse{Status: pb.Status_FAILURE, Message: "leader unavailable"}, nil
		}
		return resp, nil
	}

	if err := s.auth.Register(req.GetUsername(), req.GetPassword(), req.GetEmail()); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			log.Warn("registration failed: username already exists")
			return &pb.RegisterResponse{Status: pb.Status_FAILURE, Message: "Username already exists."}, nil
		}
		log.Errorf("registration failed: %s", err)
		return &pb.RegisterResponse{Status: pb.Status_FAILURE, Message: "User registration failed."}, nil
	}

	if s.shouldFanout(req.GetSource()) {
		re := &pb.RegisterRequest{
			Username: req.GetUsername(),
			Password: req.GetPassword(),
			Email:    req.GetEmail(),
			Source:   pb.Source_LEADER,
		}
		s.repl.Fanout("Register", func(ctx context.Context, peer membership.Peer) error {
			_, err := peer.Client.Register(ctx, re)
			return err
		})
	}
	return &pb.RegisterResponse{Status: pb.Status_SUCCESS, Message: "Success"}, nil
}

func (s *server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling Login")

	if leader, forward := s.forwardTarget(req.GetSource()); forward {
		if leader.Client == nil {
			return &pb.LoginResponse{Status: pb.Status_FAILURE, Message: "no leader available"}, nil
		}
		log.Debug("forwarding Login to leader")
		resp, err := leader.Client.Login(ctx, req)
		if err != nil {
			return &pb.LoginResponse{Status: pb.Status_FAILURE, Message: "leader unavailable"}, nil
		}
		return resp, nil
	}

	if err := s.auth.Authenticate(req.GetUsername(), req.GetPassword()); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn("login failed: invalid credentials")
			return &pb.LoginResponse{Status: pb.Status_FAILURE, Message: "Invalid username or password"}, nil
		}
		log.Errorf("login failed: %s", err)
		return &pb.LoginResponse{Status: pb.Status_FAILURE, Message: "User login failed."}, nil
	}

	// Re-issuing Login keeps last-login roughly consistent everywhere; the
	// replica execution is idempotent.
	if s.shouldFanout(req.GetSource()) {
		re := &pb.LoginRequest{
			Username: req.GetUsername(),
			Password: req.GetPassword(),
			Source:   pb.Source_LEADER,
		}
		s.repl.Fanout("Login", func(ctx context.Context, peer membership.Peer) error {
			_, err := peer.Client.Login(ctx, re)
			return err
		})
	}
	return &pb.LoginResponse{Status: pb.Status_SUCCESS, Message: "Success"}, nil
}

func (s *server) GetUsers(req *pb.GetUsersRequest, stream pb.Chat_GetUsersServer) error {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling GetUsers")

	users, err := s.store.ListUsernames()
	if err != nil {
		log.Errorf("failed to list users: %s", err)
		return stream.Send(&pb.GetUsersResponse{Status: pb.Status_FAILURE})
	}
	for _, u := range users {
		if err := stream.Send(&pb.GetUsersResponse{Status: pb.Status_SUCCESS, Username: u}); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) GetSettings(ctx context.Context, req *pb.GetSettingsRequest) (*pb.GetSettingsResponse, error) {
	limit, err := s.store.Settings(req.GetUsername())
	if err != nil {
		s.log.WithField("user", req.GetUsername()).Errorf("failed to read settings: %s", err)
		return &pb.GetSettingsResponse{Status: pb.Status_FAILURE}, nil
	}
	return &pb.GetSettingsResponse{Status: pb.Status_SUCCESS, Setting: int32(limit)}, nil
}

func (s *server) SaveSettings(ctx context.Context, req *pb.SaveSettingsRequest) (*pb.SaveSettingsResponse, error) {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling SaveSettings")

	if leader, forward := s.forwardTarget(req.GetSource()); forward {
		if leader.Client == nil {
			return &pb.SaveSettingsResponse{Status: pb.Status_FAILURE}, nil
		}
		resp, err := leader.Client.SaveSettings(ctx, req)
		if err != nil {
			return &pb.SaveSettingsResponse{Status: pb.Status_FAILURE}, nil
		}
		return resp, nil
	}

	if req.GetSetting() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "inbox limit must be positive")
	}
	if err := s.store.SaveSettings(req.GetUsername(), int(req.GetSetting())); err != nil {
		log.Errorf("failed to save settings: %s", err)
		return &pb.SaveSettingsResponse{Status: pb.Status_FAILURE}, nil
	}

	if s.shouldFanout(req.GetSource()) {
		re := &pb.SaveSettingsRequest{
			Username: req.GetUsername(),
			Setting:  req.GetSetting(),
			Source:   pb.Source_LEADER,
		}
		s.repl.Fanout("SaveSettings", func(ctx context.Context, peer membership.Peer) error {
			_, err := peer.Client.SaveSettings(ctx, re)
			return err
		})
	}
	return &pb.SaveSettingsResponse{Status: pb.Status_SUCCESS}, nil
}

func (s *server) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error) {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling DeleteAccount")

	if leader, forward := s.forwardTarget(req.GetSource()); forward {
		if leader.Client == nil {
			return &pb.DeleteAccountResponse{Status: pb.Status_FAILURE}, nil
		}
		resp, err := leader.Client.DeleteAccount(ctx, req)
		if err != nil {
			return &pb.DeleteAccountResponse{Status: pb.Status_FAILURE}, nil
		}
		return resp, nil
	}

	// Messages survive account deletion so the other party keeps history.
	if err := s.store.DeleteUser(req.GetUsername()); err != nil {
		log.Warnf("failed to delete account: %s", err)
		return &pb.DeleteAccountResponse{Status: pb.Status_FAILURE}, nil
	}

	if s.shouldFanout(req.GetSource()) {
		re := &pb.DeleteAccountRequest{
			Username: req.GetUsername(),
			Source:   pb.Source_LEADER,
		}
		s.repl.Fanout("DeleteAccount", func(ctx context.Context, peer membership.Peer) error {
			_, err := peer.Client.DeleteAccount(ctx, re)
			return err
		})
	}
	return &pb.DeleteAccountResponse{Status: pb.Status_SUCCESS}, nil
}

func (s *server) SendMessage(ctx context.Context, req *pb.ChatMessage) (*pb.MessageResponse, error) {
	log := s.log.WithFields(logging.Fields{
		"from": req.GetSender(),
		"to":   req.GetRecipient(),
	})
	log.Debug("handling SendMessage")

	if leader, forward := s.forwardTarget(req.GetSource()); forward {
		if leader.Client == nil {
			return &pb.MessageResponse{Status: pb.Status_FAILURE}, nil
		}
		log.Debug("forwarding SendMessage to leader")
		resp, err := leader.Client.SendMessage(ctx, req)
		if err != nil {
			log.Warnf("leader rejected forwarded SendMessage: %s", err)
			return &pb.MessageResponse{Status: pb.Status_FAILURE}, nil
		}
		return resp, nil
	}

	live, err := s.hub.Deliver(req)
	if err != nil {
		log.Errorf("failed to persist message: %s", err)
		return &pb.MessageResponse{Status: pb.Status_FAILURE}, nil
	}
	messagesSent.Inc()
	log.Debugf("message persisted (live delivery: %t)", live)

	if s.shouldFanout(req.GetSource()) {
		re := &pb.ChatMessage{
			Sender:    req.GetSender(),
			Recipient: req.GetRecipient(),
			Body:      req.GetBody(),
			Timestamp: req.GetTimestamp(),
			Source:    pb.Source_LEADER,
		}
		s.repl.Fanout("SendMessage", func(ctx context.Context, peer membership.Peer) error {
			_, err := peer.Client.SendMessage(ctx, re)
			return err
		})
	}
	return &pb.MessageResponse{Status: pb.Status_SUCCESS}, nil
}

func (s *server) GetPendingMessage(req *pb.PendingMessageRequest, stream pb.Chat_GetPendingMessageServer) error {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling GetPendingMessage")

	if leader, forward := s.forwardTarget(req.GetSource()); forward {
		if leader.Client == nil {
			return status.Error(codes.Unavailable, "no leader available")
		}
		log.Debug("proxying GetPendingMessage to leader")
		upstream, err := leader.Client.GetPendingMessage(stream.Context(), req)
		if err != nil {
			return status.Error(codes.Unavailable, "leader unavailable")
		}
		for {
			resp, err := upstream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := stream.Send(resp); err != nil {
				return err
			}
		}
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		return status.Error(codes.InvalidArgument, "limit must be positive")
	}

	msgs, err := s.store.PendingMessages(req.GetUsername())
	if err != nil {
		log.Errorf("failed to read pending messages: %s", err)
		return stream.Send(&pb.PendingMessageResponse{Status: pb.Status_FAILURE})
	}
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	for _, m := range msgs {
		// The flag flips before the yield so a message is never streamed
		// twice, even if the client drops mid-stream.
		if err := s.store.MarkDelivered(m.ID); err != nil {
			log.Errorf("failed to mark message %d delivered: %s", m.ID, err)
			return stream.Send(&pb.PendingMessageResponse{Status: pb.Status_FAILURE})
		}
		resp := &pb.PendingMessageResponse{
			Status: pb.Status_SUCCESS,
			Message: &pb.ChatMessage{
				Sender:    m.Sender,
				Recipient: m.Recipient,
				Body:      m.Body,
				Timestamp: m.Timestamp,
			},
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}

	// Replicas drain their own copies so the pending flags converge.
	if s.shouldFanout(req.GetSource()) {
		re := &pb.PendingMessageRequest{
			Username: req.GetUsername(),
			Limit:    req.GetLimit(),
			Source:   pb.Source_LEADER,
		}
		s.repl.Fanout("GetPendingMessage", func(ctx context.Context, peer membership.Peer) error {
			drain, err := peer.Client.GetPendingMessage(ctx, re)
			if err != nil {
				return err
			}
			for {
				if _, err := drain.Recv(); err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					return err
				}
			}
		})
	}
	return nil
}

func (s *server) GetMessageHistory(req *pb.MessageHistoryRequest, stream pb.Chat_GetMessageHistoryServer) error {
	log := s.log.WithField("user", req.GetUsername())
	log.Debug("handling GetMessageHistory")

	msgs, err := s.store.History(req.GetUsername())
	if err != nil {
		log.Errorf("failed to read message history: %s", err)
		return status.Error(codes.Internal, "failed to read message history")
	}
	for _, m := range msgs {
		out := &pb.ChatMessage{
			Sender:    m.Sender,
			Recipient: m.Recipient,
			Body:      m.Body,
			Timestamp: m.Timestamp,
		}
		if err := stream.Send(out); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) MonitorMessages(req *pb.MonitorMessagesRequest, stream pb.Chat_MonitorMessagesServer) error {
	log := s.log.WithField("user", req.GetUsername())
	log.Info("opening monitor stream")

	if req.GetSource() == pb.Source_CLIENT && !s.members.IsLeader() {
		leader := s.members.Leader()
		if leader.Client != nil {
			// Confirm the leader is alive before pinning the caller's
			// stream to it.
			ctx, cancel := context.WithTimeout(stream.Context(), membership.RPCTimeout)
			_, err := leader.Client.Heartbeat(ctx, &pb.HeartbeatRequest{
				RequestorId: s.members.SelfID(),
				ServerId:    leader.ID,
			})
			cancel()
			if err == nil {
				log.Debug("proxying monitor stream to leader")
				return s.proxyMonitor(req, stream, leader.Client)
			}
			log.Warnf("leader unreachable, serving monitor stream locally: %s", err)
		}
	}

	sess := s.hub.Attach(req.GetUsername())
	defer s.hub.Detach(sess)
	leaderChange := s.members.LeaderChange()
	for {
		m, err := sess.Next(stream.Context().Done(), leaderChange)
		if err != nil {
			log.Infof("monitor stream ending: %s", err)
			return nil
		}
		if err := stream.Send(m); err != nil {
			return err
		}
	}
}

// proxyMonitor pipes the leader's monitor stream into the caller's stream.
// Any upstream error ends the stream cleanly; the client connector reopens
// it against whichever server discovery finds next.
func (s *server) proxyMonitor(req *pb.MonitorMessagesRequest, stream pb.Chat_MonitorMessagesServer, leader pb.ChatClient) error {
	upstream, err := leader.MonitorMessages(stream.Context(), req)
	if err != nil {
		return status.Error(codes.Unavailable, "leader unavailable")
	}
	for {
		m, err := upstream.Recv()
		if err != nil {
			return nil
		}
		if err := stream.Send(m); err != nil {
			return err
		}
	}
}

func (s *server) Heartbeat(ctx context.Context, req *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
	if req.GetRequestorId() != ClientRequestorID {
		s.members.Refresh(req.GetRequestorId())
	}
	return &pb.HeartbeatResponse{
		ResponderId: s.members.SelfID(),
		Status:      pb.Status_SUCCESS,
	}, nil
}

func (s *server) NewReplica(ctx context.Context, req *pb.NewReplicaRequest) (*pb.LeaderResponse, error) {
	log := s.log.WithField("replica", req.GetReplicaId())
	log.Infof("adding new replica at %s:%s", req.GetIp(), req.GetPort())

	if err := s.members.AddPeer(req.GetReplicaId(), req.GetIp(), req.GetPort()); err != nil {
		log.Errorf("failed to add replica: %s", err)
		return nil, status.Error(codes.Internal, "failed to add replica")
	}

	// The leader announces the joiner to the rest of the cluster; replicas
	// receiving that announcement only record it.
	if s.members.IsLeader() {
		s.repl.Fanout("NewReplica", func(ctx context.Context, peer membership.Peer) error {
			if peer.ID == req.GetReplicaId() {
				return nil
			}
			_, err := peer.Client.NewReplica(ctx, req)
			return err
		})
	}

	leader := s.members.Leader()
	return &pb.LeaderResponse{
		LeaderId: leader.ID,
		Ip:       leader.IP,
		Port:     leader.Port,
	}, nil
}

func (s *server) GetServers(req *pb.GetServersRequest, stream pb.Chat_GetServersServer) error {
	s.log.WithField("requestor", req.GetRequestorId()).Debug("handling GetServers")

	for _, p := range s.members.Peers() {
		info := &pb.ServerInfo{ServerId: p.ID, Ip: p.IP, Port: p.Port}
		if err := stream.Send(info); err != nil {
			return err
		}
	}
	ip, port := s.members.SelfAddr()
	return stream.Send(&pb.ServerInfo{ServerId: s.members.SelfID(), Ip: ip, Port: port})
}
