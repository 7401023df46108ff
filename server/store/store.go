// Package store provides the per-server durable storage for users and
// messages. Every server in the cluster owns its own sqlite database file;
// nothing here is shared across processes.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	logging "github.com/sirupsen/logrus"
)

// DefaultInboxLimit is applied to newly registered users.
const DefaultInboxLimit = 50

var (
	// ErrUsernameTaken is returned by CreateUser when the username already
	// has a row.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNotFound is returned when the named user has no row.
	ErrNotFound = errors.New("user not found")
)

// Message is one row of the messages table. Pending marks a message that has
// not yet been handed to its recipient.
type Message struct {
	ID        int64
	Sender    string
	Recipient string
	Body      string
	Timestamp string
	Pending   bool
}

// Store wraps the sqlite handle for one server process.
type Store struct {
	db  *sql.DB
	log *logging.Entry
}

// Filename derives the database file name from the server's listen address so
// multiple servers can share a working directory.
func Filename(ip, port string) string {
	return fmt.Sprintf("%s_%s.db", ip, port)
}

// Open opens (creating if necessary) the database for the server listening on
// ip:port, rooted at dir.
func Open(dir, ip, port string) (*Store, error) {
	path := filepath.Join(dir, Filename(ip, port))
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	// sqlite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent RPC handlers.
	db.SetMaxOpenConns(1)

	s := &Store{
		db: db,
		log: logging.WithFields(logging.Fields{
			"component": "store",
			"path":      path,
		}),
	}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			username      TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			email         TEXT,
			created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_login    TIMESTAMP,
			settings      INTEGER DEFAULT 50
		);
		CREATE TABLE IF NOT EXISTS messages (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			sender    TEXT NOT NULL,
			recipient TEXT NOT NULL,
			body      TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			pending   BOOLEAN NOT NULL
		);`)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new user row with the default inbox limit.
func (s *Store) CreateUser(username, passwordHash, email string) error {
	_, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, email, settings) VALUES (?, ?, ?, ?)`,
		username, passwordHash, email, DefaultInboxLimit,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return nil
}

// PasswordHash returns the stored hash for the named user.
func (s *Store) PasswordHash(username string) (string, error) {
	var hash string
	err := s.db.QueryRow(`SELECT password_hash FROM users WHERE username = ?`, username).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read password hash for %s: %w", username, err)
	}
	return hash, nil
}

// TouchLastLogin records a successful login.
func (s *Store) TouchLastLogin(username string, when time.Time) error {
	_, err := s.db.Exec(`UPDATE users SET last_login = ? WHERE username = ?`, when, username)
	if err != nil {
		return fmt.Errorf("failed to update last login for %s: %w", username, err)
	}
	return nil
}

// ListUsernames returns every registered username.
func (s *Store) ListUsernames() ([]string, error) {
	rows, err := s.db.Query(`SELECT username FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteUser removes the user row. Messages are intentionally left behind so
// the other party keeps their history.
func (s *Store) DeleteUser(username string) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Settings returns the user's inbox limit.
func (s *Store) Settings(username string) (int, error) {
	var limit int
	err := s.db.QueryRow(`SELECT settings FROM users WHERE username = ?`, username).Scan(&limit)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read settings for %s: %w", username, err)
	}
	return limit, nil
}

// SaveSettings updates the user's inbox limit.
func (s *Store) SaveSettings(username string, limit int) error {
	res, err := s.db.Exec(`UPDATE users SET settings = ? WHERE username = ?`, limit, username)
	if err != nil {
		return fmt.Errorf("failed to save settings for %s: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveMessage appends a message row and returns its assigned id.
func (s *Store) SaveMessage(m Message) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO messages (sender, recipient, body, timestamp, pending) VALUES (?, ?, ?, ?, ?)`,
		m.Sender, m.Recipient, m.Body, m.Timestamp, m.Pending,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save message from %s to %s: %w", m.Sender, m.Recipient, err)
	}
	return res.LastInsertId()
}

// PendingMessages returns the undelivered messages for a recipient, oldest
// first.
func (s *Store) PendingMessages(recipient string) ([]Message, error) {
	return s.queryMessages(
		`SELECT id, sender, recipient, body, timestamp, pending
		 FROM messages WHERE recipient = ? AND pending ORDER BY timestamp ASC`,
		recipient,
	)
}

// MarkDelivered flips one message's pending flag off.
func (s *Store) MarkDelivered(id int64) error {
	_, err := s.db.Exec(`UPDATE messages SET pending = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message %d delivered: %w", id, err)
	}
	return nil
}

// History returns every delivered message the user sent or received, oldest
// first.
func (s *Store) History(username string) ([]Message, error) {
	return s.queryMessages(
		`SELECT id, sender, recipient, body, timestamp, pending
		 FROM messages WHERE NOT pending AND (sender = ? OR recipient = ?) ORDER BY timestamp ASC`,
		username, username,
	)
}

func (s *Store) queryMessages(query string, args ...interface{}) ([]Message, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Body, &m.Timestamp, &m.Pending); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
