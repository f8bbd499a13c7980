package googleid

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// Validation failures of the identity token pipeline. Each maps to a distinct
// failure so callers can log precisely while surfacing a generic message.
var (
	ErrNonceMismatch      = errors.New("identity token nonce mismatch")
	ErrBadIssuer          = errors.New("identity token has unknown issuer")
	ErrMissingExpiry      = errors.New("identity token has no expiry")
	ErrExpired            = errors.New("identity token has expired")
	ErrTokenTooOld        = errors.New("identity token issued too long ago")
	ErrIncompleteIdentity = errors.New("identity token lacks email or subject")
)

const (
	// Provider is the provider name under which verified identities are linked.
	Provider = "google"

	// DefaultNaam is used when the token carries no display name.
	DefaultNaam = "Onbekende gebruiker"

	// maxTokenAge bounds how long ago a token may have been issued.
	maxTokenAge = 10 * time.Minute
)

// trustedIssuers are the issuer values Google uses in its identity tokens.
var trustedIssuers = map[string]struct{}{
	"https://accounts.google.com": {},
	"accounts.google.com":         {},
}

// StructuralVerifier validates identity tokens without checking their
// signature against Google's public keys. The trust model is the nonce-bound
// front channel only; prefer SignedVerifier unless interoperating with
// clients that depend on the legacy behavior.
type StructuralVerifier struct {
	now func() time.Time
}

var _ ports.IdentityTokenVerifier = (*StructuralVerifier)(nil)

// NewStructuralVerifier creates a verifier using the wall clock.
func NewStructuralVerifier() *StructuralVerifier {
	return &StructuralVerifier{now: time.Now}
}

// Verify decodes the token, runs the validation pipeline against
// expectedNonce, and extracts the federated identity.
func (v *StructuralVerifier) Verify(_ context.Context, rawToken, expectedNonce string) (domainauth.ExternalIdentity, error) {
	payload, err := Decode(rawToken)
	if err != nil {
		return domainauth.ExternalIdentity{}, err
	}
	if err := Validate(payload, expectedNonce, v.now()); err != nil {
		return domainauth.ExternalIdentity{}, err
	}
	return ExtractIdentity(payload)
}

// Validate runs the ordered, short-circuiting validation pipeline:
// nonce, issuer, expiry, issued-at freshness. An absent iat is tolerated;
// only staleness is rejected when iat is present.
func Validate(p Payload, expectedNonce string, now time.Time) error {
	if p.Nonce != expectedNonce {
		return ErrNonceMismatch
	}
	if _, ok := trustedIssuers[p.Issuer]; !ok {
		return ErrBadIssuer
	}
	if p.Exp == 0 {
		return ErrMissingExpiry
	}
	if !time.Unix(p.Exp, 0).After(now) {
		return ErrExpired
	}
	if p.Iat != 0 && now.Sub(time.Unix(p.Iat, 0)) > maxTokenAge {
		return ErrTokenTooOld
	}
	return nil
}

// ExtractIdentity builds the federated identity from a validated payload.
// Email and subject are required; the name falls back to DefaultNaam.
func ExtractIdentity(p Payload) (domainauth.ExternalIdentity, error) {
	if p.Email == "" || p.Sub == "" {
		return domainauth.ExternalIdentity{}, ErrIncompleteIdentity
	}
	naam := p.Name
	if naam == "" {
		naam = DefaultNaam
	}
	return domainauth.ExternalIdentity{
		Provider:   Provider,
		ProviderID: p.Sub,
		Email:      p.Email,
		Naam:       naam,
	}, nil
}
