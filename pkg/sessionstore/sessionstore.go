// Package sessionstore backs sign-out revocation and the one-time
// authorization codes used by the /auth/callback exchange route.
package sessionstore

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCodeNotFound = errors.New("authorization code not found or already used")

type Store interface {
	// Revoke blacklists a session id until the session would have expired
	// anyway.
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// SaveCode stores a one-time authorization code mapped to a session
	// token. ExchangeCode consumes it; a second exchange fails.
	SaveCode(ctx context.Context, code, token string, ttl time.Duration) error
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// MemoryStore is the single-process fallback when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	codes   map[string]memoryCode
}

type memoryCode struct {
	token   string
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
		codes:   make(map[string]memoryCode),
	}
}

func (s *MemoryStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = until
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) SaveCode(_ context.Context, code, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code] = memoryCode{token: token, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) ExchangeCode(_ context.Context, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[code]
	if !ok {
		return "", ErrCodeNotFound
	}
	delete(s.codes, code)
	if time.Now().After(entry.expires) {
		return "", ErrCodeNotFound
	}
	return entry.token, nil
}
