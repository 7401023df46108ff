// Package auth hashes and checks user credentials against the store.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	logging "github.com/sirupsen/logrus"

	"github.com/chatterd/chatterd/server/store"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth validates registrations and logins.
type Auth struct {
	store *store.Store
	log   *logging.Entry
}

// New returns an Auth backed by the given store.
func New(s *store.Store) *Auth {
	return &Auth{
		store: s,
		log:   logging.WithField("component", "auth"),
	}
}

// HashPassword returns the hex SHA-256 digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user. store.ErrUsernameTaken is returned unwrapped
// so the RPC surface can map it to its wire message.
func (a *Auth) Register(username, password, email string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	if err := a.store.CreateUser(username, HashPassword(password), email); err != nil {
		return err
	}
	a.log.Infof("registered user %s", username)
	return nil
}

// Authenticate checks the password and records the login time on success.
func (a *Auth) Authenticate(username, password string) error {
	hash, err := a.store.PasswordHash(username)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if hash != HashPassword(password) {
		return ErrInvalidCredentials
	}
	if err := a.store.TouchLastLogin(username, time.Now().UTC()); err != nil {
		a.log.Warnf("failed to record login time for %s: %s", username, err)
	}
	return nil
}
