package jwtauth

// Package jwtauth issues and parses the bearer tokens handed to API clients
// that opt out of cookie sessions.

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken indicates a token that failed signature or claim checks.
var ErrInvalidToken = errors.New("invalid bearer token")

// tokenClaims is the wire shape of an issued token. The user's claim set is
// embedded at issuance time; it is not refreshed on later requests.
type tokenClaims struct {
	Naam   string            `json:"naam,omitempty"`
	Email  string            `json:"email,omitempty"`
	Claims domainauth.Claims `json:"claims,omitempty"`
	jwt.RegisteredClaims
}

// Service implements ports.TokenService with symmetric HMAC-SHA256 signing.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenService = (*Service)(nil)

// Options configures a Service.
type Options struct {
	// Secret is the shared signing key. Required.
	Secret []byte
	// TTL is the token lifetime; DefaultTTL when zero.
	TTL time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// New creates a token service.
func New(opts Options) (*Service, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("signing secret is required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{secret: opts.Secret, ttl: ttl, now: now}, nil
}

// Issue signs a token embedding the principal's identity and claim set.
func (s *Service) Issue(principal domainauth.Principal) (string, error) {
	if principal.UserID == "" {
		return "", errors.New("principal has no user ID")
	}

	now := s.now()
	claims := tokenClaims{
		Naam:   principal.Naam,
		Email:  principal.Email,
		Claims: principal.Claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and rebuilds the principal from
// the embedded claims. No clock-skew leeway is applied.
func (s *Service) Parse(token string) (domainauth.Principal, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return domainauth.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domainauth.Principal{}, ErrInvalidToken
	}

	return domainauth.Principal{
		UserID: claims.Subject,
		Naam:   claims.Naam,
		Email:  claims.Email,
		Claims: claims.Claims,
	}, nil
}
