package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// ClaimTypeInterneMedewerker is the claim type that marks internal employees.
// Presence of the claim with value "true" grants moderation and management
// rights; absence means a regular visitor account.
const ClaimTypeInterneMedewerker = "InterneMedewerker"

// Claim is a single (type, value) capability pair attached to a user.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// InterneMedewerkerClaim returns the claim that grants employee capability.
func InterneMedewerkerClaim() Claim {
	return Claim{Type: ClaimTypeInterneMedewerker, Value: "true"}
}

// Claims is the full claim set of a user. Capability checks are equality
// checks against typed claims, never string scanning.
type Claims []Claim

// Has reports whether the exact claim is present.
func (c Claims) Has(claim Claim) bool {
	for _, have := range c {
		if have == claim {
			return true
		}
	}
	return false
}

// HasType reports whether any claim of the given type is present,
// regardless of value.
func (c Claims) HasType(claimType string) bool {
	for _, have := range c {
		if have.Type == claimType {
			return true
		}
	}
	return false
}

// IsInterneMedewerker reports whether the claim set grants employee
// capability. An empty claim set never does.
func (c Claims) IsInterneMedewerker() bool {
	return c.Has(InterneMedewerkerClaim())
}

// Principal is the authenticated caller as seen by services and handlers.
// Both credential paths (cookie session and bearer token) produce this shape
// before any authorization decision runs.
type Principal struct {
	UserID string
	Naam   string
	Email  string
	Claims Claims
}

// IsInterneMedewerker reports whether the principal holds the employee claim.
func (p Principal) IsInterneMedewerker() bool {
	return p.Claims.IsInterneMedewerker()
}

// Session is the server-side record persisted for a cookie-authenticated
// user. ID is an opaque session identifier (random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Naam      string    `json:"naam"`
	Email     string    `json:"email"`
	Claims    Claims    `json:"claims"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Principal converts the session into the shared principal shape.
func (s Session) Principal() Principal {
	return Principal{
		UserID: s.UserID,
		Naam:   s.Naam,
		Email:  s.Email,
		Claims: s.Claims,
	}
}

// ExternalIdentity is the identity extracted from a validated external
// provider token. Not persisted.
type ExternalIdentity struct {
	Provider   string
	ProviderID string
	Email      string
	Naam       string
}
