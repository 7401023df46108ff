// Package delivery bridges durable storage and live message streams. Each
// online user has exactly one session per server; messages for offline users
// are persisted as pending and drained later.
package delivery

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	logging "github.com/sirupsen/logrus"

	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/server/store"
)

var messagesDelivered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "messages_delivered_total",
		Help: "Messages accepted for delivery, partitioned by delivery mode.",
	},
	[]string{"mode"},
)

// ErrDetached is returned by Session.Next once the session has been replaced
// or closed.
var ErrDetached = errors.New("session detached")

// Session is one user's live subscription on this server: a mailbox of
// messages staged for push plus the notification plumbing feeding the
// monitor stream.
type Session struct {
	user string

	mu    sync.Mutex
	queue []*pb.ChatMessage

	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newSession(user string) *Session {
	return &Session{
		user:   user,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// User returns the subscribed username.
func (s *Session) User() string {
	return s.user
}

func (s *Session) enqueue(m *pb.ChatMessage) {
	s.mu.Lock()
	s.queue = append(s.queue, m)
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Session) close() {
	s.once.Do(func() { close(s.done) })
}

// Done is closed when the session is detached.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Next pops the oldest staged message, waiting for one to arrive. It returns
// ErrDetached when the session is closed and the error of whichever cancel
// channel fires otherwise. The cancel channels are typically the stream
// context and the leadership-change signal.
func (s *Session) Next(cancel <-chan struct{}, leaderChange <-chan struct{}) (*pb.ChatMessage, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			m := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return m, nil
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-s.done:
			return nil, ErrDetached
		case <-cancel:
			return nil, errors.New("stream closed")
		case <-leaderChange:
			return nil, errors.New("leadership changed")
		}
	}
}

// Hub owns every live session on this server and persists messages as they
// are routed.
type Hub struct {
	store *store.Store
	log   *logging.Entry

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHub returns an empty hub persisting through the given store.
func NewHub(s *store.Store) *Hub {
	return &Hub{
		store:    s,
		log:      logging.WithField("component", "delivery"),
		sessions: make(map[string]*Session),
	}
}

// Attach registers a live subscription for the user, displacing any prior
// one so that at most one session per user exists.
func (h *Hub) Attach(user string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	if prior, ok := h.sessions[user]; ok {
		h.log.Infof("replacing existing subscription for %s", user)
		prior.close()
	}
	sess := newSession(user)
	h.sessions[user] = sess
	return sess
}

// Detach removes the session if it is still the registered one and closes it.
func (h *Hub) Detach(sess *Session) {
	h.mu.Lock()
	if current, ok := h.sessions[sess.user]; ok && current == sess {
		delete(h.sessions, sess.user)
	}
	h.mu.Unlock()
	sess.close()
}

// Deliver persists the message and, when the recipient has a live session on
// this server, stages it for immediate push. It reports whether the message
// went to a live session.
func (h *Hub) Deliver(m *pb.ChatMessage) (bool, error) {
	h.mu.Lock()
	sess, online := h.sessions[m.GetRecipient()]
	if online {
		select {
		case <-sess.done:
			online = false
		default:
		}
	}
	h.mu.Unlock()

	_, err := h.store.SaveMessage(store.Message{
		Sender:    m.GetSender(),
		Recipient: m.GetRecipient(),
		Body:      m.GetBody(),
		Timestamp: m.GetTimestamp(),
		Pending:   !online,
	})
	if err != nil {
		return false, err
	}

	if online {
		sess.enqueue(&pb.ChatMessage{
			Sender:    m.GetSender(),
			Recipient: m.GetRecipient(),
			Body:      m.GetBody(),
			Timestamp: m.GetTimestamp(),
		})
		messagesDelivered.WithLabelValues("live").Inc()
		return true, nil
	}
	messagesDelivered.WithLabelValues("stored").Inc()
	return false, nil
}

// CloseAll detaches every session, ending their monitor streams.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for user, sess := range h.sessions {
		sess.close()
		delete(h.sessions, user)
	}
}
