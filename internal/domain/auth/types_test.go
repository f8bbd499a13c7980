package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaims_Has(t *testing.T) {
	claims := Claims{
		{Type: "InterneMedewerker", Value: "true"},
		{Type: "Afdeling", Value: "didactiek"},
	}

	assert.True(t, claims.Has(Claim{Type: "InterneMedewerker", Value: "true"}))
	assert.False(t, claims.Has(Claim{Type: "InterneMedewerker", Value: "false"}))
	assert.False(t, claims.Has(Claim{Type: "Onbekend", Value: "true"}))
}

func TestClaims_HasType(t *testing.T) {
	claims := Claims{{Type: "InterneMedewerker", Value: "false"}}

	assert.True(t, claims.HasType("InterneMedewerker"))
	assert.False(t, claims.HasType("Afdeling"))
}

func TestClaims_IsInterneMedewerker(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   bool
	}{
		{name: "claim present with value true", claims: Claims{InterneMedewerkerClaim()}, want: true},
		{name: "claim present with other value", claims: Claims{{Type: ClaimTypeInterneMedewerker, Value: "false"}}, want: false},
		{name: "unrelated claims only", claims: Claims{{Type: "Afdeling", Value: "true"}}, want: false},
		{name: "empty claim set", claims: Claims{}, want: false},
		{name: "nil claim set", claims: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claims.IsInterneMedewerker())
		})
	}
}

func TestPrincipal_IsInterneMedewerker(t *testing.T) {
	medewerker := Principal{UserID: "u1", Claims: Claims{InterneMedewerkerClaim()}}
	bezoeker := Principal{UserID: "u2"}

	assert.True(t, medewerker.IsInterneMedewerker())
	assert.False(t, bezoeker.IsInterneMedewerker())
}

func TestSession_Principal(t *testing.T) {
	sess := Session{
		ID:     "sess-1",
		UserID: "user-1",
		Naam:   "Anna",
		Email:  "anna@example.com",
		Claims: Claims{InterneMedewerkerClaim()},
	}

	p := sess.Principal()
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "Anna", p.Naam)
	assert.Equal(t, "anna@example.com", p.Email)
	assert.True(t, p.IsInterneMedewerker())
}
