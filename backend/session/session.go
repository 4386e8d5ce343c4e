// Package session keeps the operator's bearer token between CLI runs.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// ErrNotAuthorized means there is no usable token; no request should be made.
var ErrNotAuthorized = errors.New("not authorized: log in first")

// DefaultPath is $HOME/.eduadmin/token.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".eduadmin", "token")
}

// Store persists one token in a file readable only by the owner.
type Store struct {
	Path string
}

func (s Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return errors.Wrap(err, "create token dir")
	}
	return errors.Wrap(os.WriteFile(s.Path, []byte(token+"\n"), 0o600), "write token")
}

func (s Store) Load() (string, error) {
	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", ErrNotAuthorized
	}
	if err != nil {
		return "", errors.Wrap(err, "read token")
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNotAuthorized
	}
	return token, nil
}

// Clear removes the token. A missing file is not an error.
func (s Store) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove token")
	}
	return nil
}

// Info is what the token says about itself. The signature is not checked
// here; the server does that.
type Info struct {
	UserID    uint
	Role      string
	ExpiresAt time.Time
}

// Session reads and decodes the token at most once.
type Session struct {
	store Store

	once  sync.Once
	token string
	info  Info
	err   error
}

func New(store Store) *Session {
	return &Session{store: store}
}

func (s *Session) load() {
	s.token, s.err = s.store.Load()
	if s.err != nil {
		return
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		s.token, s.err = "", ErrNotAuthorized
		return
	}
	if id, ok := claims["user_id"].(float64); ok {
		s.info.UserID = uint(id)
	}
	s.info.Role, _ = claims["role"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		s.info.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
}

// Token returns the bearer token or ErrNotAuthorized.
func (s *Session) Token() (string, error) {
	s.once.Do(s.load)
	return s.token, s.err
}

func (s *Session) Info() (Info, error) {
	s.once.Do(s.load)
	return s.info, s.err
}
