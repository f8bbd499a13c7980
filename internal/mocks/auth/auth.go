package auth

// Package auth contains hand-written test doubles for the auth ports. They
// are lightweight, in-memory, and suitable for unit tests without codegen.

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityStore         = (*MemoryIdentityStore)(nil)
	_ ports.SessionStore          = (*MemorySessionStore)(nil)
	_ ports.NonceStore            = (*MemoryNonceStore)(nil)
	_ ports.TokenService          = (*FakeTokenService)(nil)
	_ ports.IdentityTokenVerifier = (*StubVerifier)(nil)
)

// MemoryIdentityStore is a map-backed identity store. Method hooks allow
// individual calls to be overridden for failure injection.
type MemoryIdentityStore struct {
	mu     sync.Mutex
	users  map[string]model.Gebruiker
	claims map[string]domainauth.Claims
	logins map[string]string // "provider/providerID" -> userID
	nextID int

	CreateUserFunc       func(ctx context.Context, naam, email, wachtwoordHash string) (model.Gebruiker, error)
	AddExternalLoginFunc func(ctx context.Context, userID string, identity domainauth.ExternalIdentity) error
	AddClaimFunc         func(ctx context.Context, userID string, claim domainauth.Claim) error
}

// NewMemoryIdentityStore creates an empty in-memory identity store.
func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{
		users:  make(map[string]model.Gebruiker),
		claims: make(map[string]domainauth.Claims),
		logins: make(map[string]string),
	}
}

func (s *MemoryIdentityStore) CreateUser(ctx context.Context, naam, email, wachtwoordHash string) (model.Gebruiker, error) {
	if s.CreateUserFunc != nil {
		return s.CreateUserFunc(ctx, naam, email, wachtwoordHash)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return model.Gebruiker{}, apperrors.Conflict("Deze waarde bestaat al.")
		}
	}

	s.nextID++
	user := model.Gebruiker{
		ID:             fmt.Sprintf("u-%d", s.nextID),
		Naam:           naam,
		Email:          email,
		WachtwoordHash: wachtwoordHash,
		AangemaaktOp:   time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryIdentityStore) FindByID(_ context.Context, id string) (model.Gebruiker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.Gebruiker{}, apperrors.NotFound("Gebruiker niet gevonden")
	}
	return user, nil
}

func (s *MemoryIdentityStore) FindByEmail(_ context.Context, email string) (model.Gebruiker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.Gebruiker{}, apperrors.NotFound("Gebruiker niet gevonden")
}

func (s *MemoryIdentityStore) ListUsers(_ context.Context) ([]model.Gebruiker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Gebruiker, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *MemoryIdentityStore) GetClaims(_ context.Context, userID string) (domainauth.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(domainauth.Claims(nil), s.claims[userID]...), nil
}

func (s *MemoryIdentityStore) AddClaim(ctx context.Context, userID string, claim domainauth.Claim) error {
	if s.AddClaimFunc != nil {
		return s.AddClaimFunc(ctx, userID, claim)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.claims[userID].Has(claim) {
		return nil
	}
	s.claims[userID] = append(s.claims[userID], claim)
	return nil
}

func (s *MemoryIdentityStore) RemoveClaim(_ context.Context, userID string, claim domainauth.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make(domainauth.Claims, 0, len(s.claims[userID]))
	for _, c := range s.claims[userID] {
		if c != claim {
			kept = append(kept, c)
		}
	}
	s.claims[userID] = kept
	return nil
}

func (s *MemoryIdentityStore) FindByExternalLogin(_ context.Context, provider, providerID string) (model.Gebruiker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.logins[provider+"/"+providerID]
	if !ok {
		return model.Gebruiker{}, apperrors.NotFound("Gebruiker niet gevonden")
	}
	return s.users[userID], nil
}

func (s *MemoryIdentityStore) AddExternalLogin(ctx context.Context, userID string, identity domainauth.ExternalIdentity) error {
	if s.AddExternalLoginFunc != nil {
		return s.AddExternalLoginFunc(ctx, userID, identity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := identity.Provider + "/" + identity.ProviderID
	if _, exists := s.logins[key]; !exists {
		s.logins[key] = userID
	}
	return nil
}

// MemorySessionStore is a map-backed session store.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	SaveFunc func(ctx context.Context, sess domainauth.Session) error
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if s.SaveFunc != nil {
		return s.SaveFunc(ctx, sess)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return domainauth.Session{}, apperrors.NotFound("sessie niet gevonden")
	}
	return sess, nil
}

func (s *MemorySessionStore) Touch(_ context.Context, id string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperrors.NotFound("sessie niet gevonden")
	}
	sess.ExpiresAt = expiresAt
	s.sessions[id] = sess
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions, for assertions.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// MemoryNonceStore is a map-backed nonce store with single-use redemption.
type MemoryNonceStore struct {
	mu     sync.Mutex
	nonces map[string]string
}

// NewMemoryNonceStore creates an empty in-memory nonce store.
func NewMemoryNonceStore() *MemoryNonceStore {
	return &MemoryNonceStore{nonces: make(map[string]string)}
}

func (s *MemoryNonceStore) Issue(_ context.Context, attemptID, nonce string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nonces[attemptID] = nonce
	return nil
}

func (s *MemoryNonceStore) Redeem(_ context.Context, attemptID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce, ok := s.nonces[attemptID]
	if !ok {
		return "", apperrors.NotFound("nonce niet gevonden")
	}
	delete(s.nonces, attemptID)
	return nonce, nil
}

// FakeTokenService issues opaque tokens backed by an in-memory map.
type FakeTokenService struct {
	mu     sync.Mutex
	tokens map[string]domainauth.Principal
	nextID int
}

// NewFakeTokenService creates an empty fake token service.
func NewFakeTokenService() *FakeTokenService {
	return &FakeTokenService{tokens: make(map[string]domainauth.Principal)}
}

func (s *FakeTokenService) Issue(principal domainauth.Principal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	token := fmt.Sprintf("token-%d", s.nextID)
	s.tokens[token] = principal
	return token, nil
}

func (s *FakeTokenService) Parse(token string) (domainauth.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	principal, ok := s.tokens[token]
	if !ok {
		return domainauth.Principal{}, apperrors.Unauthorized("ongeldig token")
	}
	return principal, nil
}

// StubVerifier returns a fixed identity or error.
type StubVerifier struct {
	Identity domainauth.ExternalIdentity
	Err      error

	VerifyFunc func(ctx context.Context, rawToken, expectedNonce string) (domainauth.ExternalIdentity, error)
}

func (s *StubVerifier) Verify(ctx context.Context, rawToken, expectedNonce string) (domainauth.ExternalIdentity, error) {
	if s.VerifyFunc != nil {
		return s.VerifyFunc(ctx, rawToken, expectedNonce)
	}
	if s.Err != nil {
		return domainauth.ExternalIdentity{}, s.Err
	}
	return s.Identity, nil
}
