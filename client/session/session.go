// Package session wraps the connector with the chat operations a client UI
// needs. Every call re-validates the server handle first and retries once
// against a freshly discovered server, so a leader change between keystrokes
// is invisible to the caller.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	logging "github.com/sirupsen/logrus"

	"github.com/chatterd/chatterd/client/connector"
	pb "github.com/chatterd/chatterd/gen/chat"
)

// MonitorRestartDelay is how long the monitor loop waits before reopening a
// broken stream, giving a freshly elected leader time to finish its own
// setup.
const MonitorRestartDelay = 3 * time.Second

// Session is a client's logical connection to the cluster.
type Session struct {
	conn *connector.Connector
	log  *logging.Entry
}

// New returns a Session over the given connector.
func New(conn *connector.Connector) *Session {
	return &Session{
		conn: conn,
		log:  logging.WithField("component", "session"),
	}
}

// serverError is an in-band failure reported by the service. Unlike a
// transport error it must not trigger a retry: the cluster saw the request
// and rejected it.
type serverError struct {
	msg string
}

func (e serverError) Error() string {
	return e.msg
}

// withRetry runs op against a live handle, rediscovering and retrying once
// when the first attempt dies on a transport error. In-band failures pass
// through untouched.
func (s *Session) withRetry(ctx context.Context, op func(ctx context.Context, c pb.ChatClient) error) error {
	client, gen, err := s.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	if err := op(ctx, client); err != nil {
		var srvErr serverError
		if errors.As(err, &srvErr) {
			return err
		}
		s.conn.Invalidate(gen)
		client, _, aerr := s.conn.Acquire(ctx)
		if aerr != nil {
			return err
		}
		return op(ctx, client)
	}
	return nil
}

// Register creates an account.
func (s *Session) Register(ctx context.Context, username, password, email string) error {
	return s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		resp, err := c.Register(ctx, &pb.RegisterRequest{
			Username: username,
			Password: password,
			Email:    email,
			Source:   pb.Source_CLIENT,
		})
		if err != nil {
			return err
		}
		if resp.GetStatus() != pb.Status_SUCCESS {
			return serverError{resp.GetMessage()}
		}
		return nil
	})
}

// Login verifies credentials.
func (s *Session) Login(ctx context.Context, username, password string) error {
	return s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		resp, err := c.Login(ctx, &pb.LoginRequest{
			Username: username,
			Password: password,
			Source:   pb.Source_CLIENT,
		})
		if err != nil {
			return err
		}
		if resp.GetStatus() != pb.Status_SUCCESS {
			return serverError{resp.GetMessage()}
		}
		return nil
	})
}

// Send delivers one message, stamping it with the current time.
func (s *Session) Send(ctx context.Context, sender, recipient, body string) error {
	msg := &pb.ChatMessage{
		Sender:    sender,
		Recipient: recipient,
		Body:      body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    pb.Source_CLIENT,
	}
	return s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		resp, err := c.SendMessage(ctx, msg)
		if err != nil {
			return err
		}
		if resp.GetStatus() != pb.Status_SUCCESS {
			return serverError{fmt.Sprintf("message to %s was not accepted", recipient)}
		}
		return nil
	})
}

// Users lists every registered username.
func (s *Session) Users(ctx context.Context, username string) ([]string, error) {
	var users []string
	err := s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		stream, err := c.GetUsers(ctx, &pb.GetUsersRequest{Username: username})
		if err != nil {
			return err
		}
		users = users[:0]
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if resp.GetStatus() != pb.Status_SUCCESS {
				return serverError{"server failed to list users"}
			}
			users = append(users, resp.GetUsername())
		}
	})
	return users, err
}

// Settings reads the caller's inbox limit.
func (s *Session) Settings(ctx context.Context, username string) (int, error) {
	var limit int
	err := s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		resp, err := c.GetSettings(ctx, &pb.GetSettingsRequest{Username: username})
		if err != nil {
			return err
		}
		if resp.GetStatus() != pb.Status_SUCCESS {
			return serverError{"server failed to read settings"}
		}
		limit = int(resp.GetSetting())
		return nil
	})
	return limit, err
}

// SaveSettings updates the caller's inbox limit.
func (s *Session) SaveSettings(ctx context.Context, username string, limit int) error {
	return s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		resp, err := c.SaveSettings(ctx, &pb.SaveSettingsRequest{
			Username: username,
			Setting:  int32(limit),
			Source:   pb.Source_CLIENT,
		})
		if err != nil {
			return err
		}
		if resp.GetStatus() != pb.Status_SUCCESS {
			return serverError{"server rejected settings update"}
		}
		return nil
	})
}

// DeleteAccount removes the caller's account.
func (s *Session) DeleteAccount(ctx context.Context, username string) error {
	return s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		resp, err := c.DeleteAccount(ctx, &pb.DeleteAccountRequest{
			Username: username,
			Source:   pb.Source_CLIENT,
		})
		if err != nil {
			return err
		}
		if resp.GetStatus() != pb.Status_SUCCESS {
			return serverError{"server rejected account deletion"}
		}
		return nil
	})
}

// Inbox drains up to limit pending messages.
func (s *Session) Inbox(ctx context.Context, username string, limit int) ([]*pb.ChatMessage, error) {
	var msgs []*pb.ChatMessage
	err := s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		stream, err := c.GetPendingMessage(ctx, &pb.PendingMessageRequest{
			Username: username,
			Limit:    int32(limit),
			Source:   pb.Source_CLIENT,
		})
		if err != nil {
			return err
		}
		msgs = msgs[:0]
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if resp.GetStatus() != pb.Status_SUCCESS {
				return serverError{"server failed to read pending messages"}
			}
			msgs = append(msgs, resp.GetMessage())
		}
	})
	return msgs, err
}

// History returns every delivered message involving the caller.
func (s *Session) History(ctx context.Context, username string) ([]*pb.ChatMessage, error) {
	var msgs []*pb.ChatMessage
	err := s.withRetry(ctx, func(ctx context.Context, c pb.ChatClient) error {
		stream, err := c.GetMessageHistory(ctx, &pb.MessageHistoryRequest{Username: username})
		if err != nil {
			return err
		}
		msgs = msgs[:0]
		for {
			m, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			msgs = append(msgs, m)
		}
	})
	return msgs, err
}

// Monitor holds a live message stream open, invoking deliver for each
// incoming message. The stream is reopened after any error or handle change
// until the context ends.
func (s *Session) Monitor(ctx context.Context, username string, deliver func(*pb.ChatMessage)) {
	for {
		client, gen, err := s.conn.Acquire(ctx)
		if err != nil {
			return
		}

		stream, err := client.MonitorMessages(ctx, &pb.MonitorMessagesRequest{
			Username: username,
			Source:   pb.Source_CLIENT,
		})
		if err == nil {
			for {
				m, err := stream.Recv()
				if err != nil {
					break
				}
				deliver(m)
			}
		}
		if ctx.Err() != nil {
			return
		}

		s.log.Info("monitor stream interrupted, reconnecting")
		s.conn.Invalidate(gen)
		select {
		case <-time.After(MonitorRestartDelay):
		case <-ctx.Done():
			return
		}
	}
}
