package wizard

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrNotAuthenticated = errors.New("User is not authenticated")

// TokenStore - the only place the session token lives
type TokenStore interface {
	Get() string
	Set(token string)
	Clear()
}

type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *MemoryTokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.Set("")
}

type Session struct {
	store TokenStore
	now   func() time.Time
}

func NewSession(store TokenStore) *Session {
	return &Session{
		store: store,
		now:   time.Now,
	}
}

// Token - returns the stored token if it is present and not expired.
// The signature is not verified, the server does that.
func (s *Session) Token() (string, error) {
	token := strings.TrimSpace(s.store.Get())
	if token == "" {
		return "", ErrNotAuthenticated
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", ErrNotAuthenticated
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(s.now()) {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

func (s *Session) Logout() {
	s.store.Clear()
}
