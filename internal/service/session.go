package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// DefaultSessionTTL is the sliding session window when none is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Sessions ports.SessionStore
	// TTL is the sliding expiry window; DefaultSessionTTL when zero.
	TTL time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// SessionService creates, resolves, and destroys cookie-backed sessions.
// Every successful lookup slides the expiry window forward.
type SessionService struct {
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionService{sessions: opts.Sessions, ttl: ttl, now: now}
}

// TTL returns the configured sliding window, for cookie Max-Age alignment.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Establish creates and persists a session for the principal.
func (s *SessionService) Establish(ctx context.Context, principal domainauth.Principal) (domainauth.Session, error) {
	if principal.UserID == "" {
		return domainauth.Session{}, errors.New("principal has no user ID")
	}

	sess := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    principal.UserID,
		Naam:      principal.Naam,
		Email:     principal.Email,
		Claims:    principal.Claims,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Get resolves a session and slides its expiry window forward. A failed
// slide does not invalidate the lookup.
func (s *SessionService) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, errors.New("session ID is required")
	}

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("get session: %w", err)
	}

	expiresAt := s.now().Add(s.ttl)
	if touchErr := s.sessions.Touch(ctx, id, expiresAt); touchErr == nil {
		sess.ExpiresAt = expiresAt
	}
	return sess, nil
}

// Destroy removes a session. Destroying an absent session is not an error.
func (s *SessionService) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
