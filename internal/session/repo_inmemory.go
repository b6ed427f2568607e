package session

import (
	"errors"
	"sync"
	"time"

	apperrors "github.com/jrsteele09/go-customer-portal/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of Repo.
// Sessions do not survive a process restart; a persistent backing can be
// swapped in behind the same interface.
type InMemoryRepo struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

// NewInMemoryRepo creates a new in-memory session repository with the
// standard 24 hour session lifetime
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		ttl:      TTL,
		sessions: make(map[string]Session),
	}
}

// Upsert creates or updates a session
func (r *InMemoryRepo) Upsert(sessionID string, session Session) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = session
	return nil
}

// Get retrieves a session by ID. Expired sessions are pruned and reported
// as not found.
func (r *InMemoryRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, errors.New("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}

	if time.Since(session.CreatedAt) > r.ttl {
		delete(r.sessions, sessionID)
		return Session{}, apperrors.ErrSessionExpired
	}

	return session, nil
}

// Delete removes a session
func (r *InMemoryRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
