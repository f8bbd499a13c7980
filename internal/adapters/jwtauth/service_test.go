package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
)

var testSecret = []byte("test-secret-at-least-32-bytes-long!!")

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()

	svc, err := New(Options{
		Secret: testSecret,
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)
	return svc
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestService_IssueAndParse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	principal := domainauth.Principal{
		UserID: "u-1",
		Naam:   "Anna",
		Email:  "anna@example.com",
		Claims: domainauth.Claims{domainauth.InterneMedewerkerClaim()},
	}

	token, err := svc.Issue(principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
	assert.True(t, got.IsInterneMedewerker())
}

func TestService_Issue_RequiresUserID(t *testing.T) {
	svc := newTestService(t, time.Now())
	_, err := svc.Issue(domainauth.Principal{Naam: "Anna"})
	assert.Error(t, err)
}

func TestService_Parse_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, issuedAt)

	token, err := svc.Issue(domainauth.Principal{UserID: "u-1"})
	require.NoError(t, err)

	// Move the clock past the default lifetime.
	svc.now = func() time.Time { return issuedAt.Add(DefaultTTL + time.Second) }
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Parse_WrongSecret(t *testing.T) {
	now := time.Now()
	svc := newTestService(t, now)

	other, err := New(Options{Secret: []byte("another-secret-also-32-bytes-long!!!")})
	require.NoError(t, err)

	token, err := other.Issue(domainauth.Principal{UserID: "u-1"})
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Parse_RejectsUnsignedToken(t *testing.T) {
	svc := newTestService(t, time.Now())

	// alg=none style token: header{"alg":"none"}.payload.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1LTEifQ."
	_, err := svc.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Parse_Garbage(t *testing.T) {
	svc := newTestService(t, time.Now())
	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
