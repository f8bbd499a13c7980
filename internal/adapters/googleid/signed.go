package googleid

import (
	"context"
	"fmt"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// GoogleIssuer is the discovery issuer for Google accounts.
const GoogleIssuer = "https://accounts.google.com"

// SignedVerifier validates identity tokens cryptographically against
// Google's published keys via OIDC discovery, in addition to the nonce and
// freshness checks the structural pipeline performs.
type SignedVerifier struct {
	verifier *gooidc.IDTokenVerifier
	now      func() time.Time
}

var _ ports.IdentityTokenVerifier = (*SignedVerifier)(nil)

// NewSignedVerifier performs OIDC discovery against Google and returns a
// verifier bound to the given OAuth client ID.
func NewSignedVerifier(ctx context.Context, clientID string) (*SignedVerifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("google client ID is required")
	}
	provider, err := gooidc.NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &SignedVerifier{
		verifier: provider.Verifier(&gooidc.Config{ClientID: clientID}),
		now:      time.Now,
	}, nil
}

// Verify checks the token signature, audience, issuer and expiry through
// go-oidc, then applies the nonce and issued-at checks and extracts the
// federated identity.
func (v *SignedVerifier) Verify(ctx context.Context, rawToken, expectedNonce string) (domainauth.ExternalIdentity, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return domainauth.ExternalIdentity{}, fmt.Errorf("verify identity token: %w", err)
	}

	var claims struct {
		Nonce string `json:"nonce"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return domainauth.ExternalIdentity{}, fmt.Errorf("parse identity token claims: %w", err)
	}

	if claims.Nonce != expectedNonce {
		return domainauth.ExternalIdentity{}, ErrNonceMismatch
	}
	if !idToken.IssuedAt.IsZero() && v.now().Sub(idToken.IssuedAt) > maxTokenAge {
		return domainauth.ExternalIdentity{}, ErrTokenTooOld
	}

	return ExtractIdentity(Payload{
		Nonce:  claims.Nonce,
		Issuer: idToken.Issuer,
		Email:  claims.Email,
		Name:   claims.Name,
		Sub:    idToken.Subject,
	})
}
