package ports

// Package ports defines interfaces (hexagonal ports) for auth and storage
// behavior. Implementations live in internal/adapters and internal/data;
// orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
)

// IdentityStore persists user accounts, their claims, and their links to
// external identity providers.
type IdentityStore interface {
	// CreateUser stores a new account. WachtwoordHash may be empty for
	// accounts created through an external provider.
	CreateUser(ctx context.Context, naam, email, wachtwoordHash string) (model.Gebruiker, error)

	FindByID(ctx context.Context, id string) (model.Gebruiker, error)
	FindByEmail(ctx context.Context, email string) (model.Gebruiker, error)
	ListUsers(ctx context.Context) ([]model.Gebruiker, error)

	GetClaims(ctx context.Context, userID string) (domainauth.Claims, error)
	AddClaim(ctx context.Context, userID string, claim domainauth.Claim) error
	RemoveClaim(ctx context.Context, userID string, claim domainauth.Claim) error

	// FindByExternalLogin resolves the account linked to a provider identity.
	FindByExternalLogin(ctx context.Context, provider, providerID string) (model.Gebruiker, error)
	AddExternalLogin(ctx context.Context, userID string, identity domainauth.ExternalIdentity) error
}

// SessionStore persists and retrieves server-side sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	// Touch extends the lifetime of an existing session (sliding expiry).
	Touch(ctx context.Context, id string, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// NonceStore issues and redeems single-use nonces for external login attempts.
// Redeem consumes the nonce: a second redeem of the same attempt fails.
type NonceStore interface {
	Issue(ctx context.Context, attemptID, nonce string, ttl time.Duration) error
	Redeem(ctx context.Context, attemptID string) (string, error)
}

// TokenService issues and parses bearer tokens carrying a principal.
type TokenService interface {
	Issue(principal domainauth.Principal) (string, error)
	Parse(token string) (domainauth.Principal, error)
}

// IdentityTokenVerifier validates a raw identity token from an external
// provider against the expected nonce and extracts the federated identity.
type IdentityTokenVerifier interface {
	Verify(ctx context.Context, rawToken, expectedNonce string) (domainauth.ExternalIdentity, error)
}
