package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// DefaultNonceTTL bounds how long an external-login attempt may take.
const DefaultNonceTTL = 10 * time.Minute

// dummyHash is a bcrypt hash of an unguessable value. Login compares against
// it when the email is unknown so both failure paths do comparable work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	Users    ports.IdentityStore
	Sessions *SessionService
	Nonces   ports.NonceStore
	Tokens   ports.TokenService
	Verifier ports.IdentityTokenVerifier
	Logger   *slog.Logger
	// NonceTTL bounds external-login attempts; DefaultNonceTTL when zero.
	NonceTTL time.Duration
}

// AccountService orchestrates registration, credential and federated login,
// logout, and the employee-claim administration operations.
type AccountService struct {
	users    ports.IdentityStore
	sessions *SessionService
	nonces   ports.NonceStore
	tokens   ports.TokenService
	verifier ports.IdentityTokenVerifier
	logger   *slog.Logger
	nonceTTL time.Duration
}

// NewAccountService constructs an AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	nonceTTL := opts.NonceTTL
	if nonceTTL <= 0 {
		nonceTTL = DefaultNonceTTL
	}
	return &AccountService{
		users:    opts.Users,
		sessions: opts.Sessions,
		nonces:   opts.Nonces,
		tokens:   opts.Tokens,
		verifier: opts.Verifier,
		logger:   logger,
		nonceTTL: nonceTTL,
	}
}

// AuthResult is the outcome of an operation that signs a user in. Exactly
// one of Session and Token is set when SignedIn is true.
type AuthResult struct {
	Gebruiker *model.UserInfo
	Session   *domainauth.Session
	Token     string
	SignedIn  bool
}

// Register creates a local account. Self-registered accounts are signed in
// with a cookie session; accounts created on someone's behalf are not.
func (s *AccountService) Register(ctx context.Context, req model.RegisterRequest) (AuthResult, error) {
	if err := req.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Wachtwoord), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash wachtwoord: %w", err)
	}

	user, err := s.users.CreateUser(ctx, req.Naam, req.Email, string(hash))
	if err != nil {
		if apperrors.IsConflict(err) {
			return AuthResult{}, apperrors.Conflict("Dit emailadres is al in gebruik")
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	// New accounts have no claims.
	result := AuthResult{Gebruiker: user.Info(false)}
	if !req.SelfRegistration() {
		return result, nil
	}

	sess, err := s.sessions.Establish(ctx, domainauth.Principal{
		UserID: user.ID,
		Naam:   user.Naam,
		Email:  user.Email,
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("establish session: %w", err)
	}
	result.Session = &sess
	result.SignedIn = true
	return result, nil
}

// Login verifies credentials and signs the user in, with either a cookie
// session or a bearer token depending on the request. Unknown email and
// wrong password yield the same generic failure.
func (s *AccountService) Login(ctx context.Context, req model.LoginRequest) (AuthResult, error) {
	if err := req.Validate(); err != nil {
		return AuthResult{}, err
	}

	invalidCredentials := apperrors.Unauthorized("Ongeldige email of wachtwoord")

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Wachtwoord))
			return AuthResult{}, invalidCredentials
		}
		return AuthResult{}, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.WachtwoordHash), []byte(req.Wachtwoord)) != nil {
		return AuthResult{}, invalidCredentials
	}

	return s.signIn(ctx, user, req.WantsCookie())
}

// ExternalLoginInput groups parameters for completing a federated login.
type ExternalLoginInput struct {
	// AttemptID identifies the external-login attempt the nonce was issued
	// under.
	AttemptID string
	Request   model.ExternalLoginRequest
}

// BeginExternalLogin issues a fresh single-use nonce for a new attempt and
// returns the attempt ID with the nonce. A new call overwrites any nonce of
// the same attempt.
func (s *AccountService) BeginExternalLogin(ctx context.Context, attemptID string) (string, string, error) {
	if attemptID == "" {
		attemptID = uuid.NewString()
	}

	nonce, err := generateNonce()
	if err != nil {
		return "", "", fmt.Errorf("generate nonce: %w", err)
	}
	if err := s.nonces.Issue(ctx, attemptID, nonce, s.nonceTTL); err != nil {
		return "", "", fmt.Errorf("issue nonce: %w", err)
	}
	return attemptID, nonce, nil
}

// ExternalLogin completes a federated login: it redeems the attempt's nonce,
// verifies the identity token against it, finds or creates the account by
// email, links the provider identity, and establishes a cookie session.
func (s *AccountService) ExternalLogin(ctx context.Context, in ExternalLoginInput) (AuthResult, error) {
	if in.Request.IDToken == "" {
		return AuthResult{}, apperrors.Validation("Identiteitstoken ontbreekt")
	}

	nonce, err := s.nonces.Redeem(ctx, in.AttemptID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return AuthResult{}, apperrors.Unauthorized("Geen actieve aanmeldpoging")
		}
		return AuthResult{}, fmt.Errorf("redeem nonce: %w", err)
	}

	identity, err := s.verifier.Verify(ctx, in.Request.IDToken, nonce)
	if err != nil {
		s.logger.WarnContext(ctx, "external login token rejected", "err", err)
		return AuthResult{}, apperrors.Unauthorized("Aanmelden via Google is mislukt")
	}

	user, err := s.resolveExternalUser(ctx, identity)
	if err != nil {
		return AuthResult{}, err
	}

	// Linking is recorded separately from account creation; a failure here
	// must not lose the sign-in.
	if linkErr := s.users.AddExternalLogin(ctx, user.ID, identity); linkErr != nil {
		s.logger.ErrorContext(ctx, "link external identity",
			"user_id", user.ID, "provider", identity.Provider, "err", linkErr)
	}

	return s.signIn(ctx, user, true)
}

// resolveExternalUser finds the account for a federated identity: first by
// provider link, then by email, creating a passwordless account when neither
// exists.
func (s *AccountService) resolveExternalUser(ctx context.Context, identity domainauth.ExternalIdentity) (model.Gebruiker, error) {
	user, err := s.users.FindByExternalLogin(ctx, identity.Provider, identity.ProviderID)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsNotFound(err) {
		return model.Gebruiker{}, fmt.Errorf("find by external login: %w", err)
	}

	user, err = s.users.FindByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsNotFound(err) {
		return model.Gebruiker{}, fmt.Errorf("find by email: %w", err)
	}

	user, err = s.users.CreateUser(ctx, identity.Naam, identity.Email, "")
	if err != nil {
		return model.Gebruiker{}, fmt.Errorf("create external user: %w", err)
	}
	return user, nil
}

// Logout destroys the session. Failures are logged and swallowed; clearing
// the client's cookie is the user-visible contract.
func (s *AccountService) Logout(ctx context.Context, sessionID string) {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "destroy session", "err", err)
	}
}

// CurrentUser builds the public view of the authenticated principal. The
// employee flag reflects the principal's claim set as carried by the session
// or token, not a live store lookup.
func (s *AccountService) CurrentUser(principal domainauth.Principal) *model.UserInfo {
	return &model.UserInfo{
		ID:                  principal.UserID,
		Naam:                principal.Naam,
		Email:               principal.Email,
		IsInterneMedewerker: principal.IsInterneMedewerker(),
	}
}

// ListUsers returns every account with its live employee flag.
func (s *AccountService) ListUsers(ctx context.Context) ([]model.UserInfo, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]model.UserInfo, 0, len(users))
	for _, u := range users {
		claims, err := s.users.GetClaims(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("get claims for %s: %w", u.ID, err)
		}
		out = append(out, *u.Info(claims.IsInterneMedewerker()))
	}
	return out, nil
}

// ToggleInterneMedewerker flips the employee claim of the target user and
// reports the resulting state. Toggling twice restores the original state.
func (s *AccountService) ToggleInterneMedewerker(ctx context.Context, targetUserID string) (bool, error) {
	if _, err := s.users.FindByID(ctx, targetUserID); err != nil {
		if apperrors.IsNotFound(err) {
			return false, apperrors.NotFound("Gebruiker niet gevonden")
		}
		return false, fmt.Errorf("find user: %w", err)
	}

	claims, err := s.users.GetClaims(ctx, targetUserID)
	if err != nil {
		return false, fmt.Errorf("get claims: %w", err)
	}

	claim := domainauth.InterneMedewerkerClaim()
	if claims.Has(claim) {
		if err := s.users.RemoveClaim(ctx, targetUserID, claim); err != nil {
			return false, fmt.Errorf("remove claim: %w", err)
		}
		return false, nil
	}
	if err := s.users.AddClaim(ctx, targetUserID, claim); err != nil {
		return false, fmt.Errorf("add claim: %w", err)
	}
	return true, nil
}

// signIn loads the user's live claims and establishes either a cookie
// session or a bearer token.
func (s *AccountService) signIn(ctx context.Context, user model.Gebruiker, wantsCookie bool) (AuthResult, error) {
	claims, err := s.users.GetClaims(ctx, user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get claims: %w", err)
	}

	principal := domainauth.Principal{
		UserID: user.ID,
		Naam:   user.Naam,
		Email:  user.Email,
		Claims: claims,
	}
	result := AuthResult{
		Gebruiker: user.Info(claims.IsInterneMedewerker()),
		SignedIn:  true,
	}

	if wantsCookie {
		sess, err := s.sessions.Establish(ctx, principal)
		if err != nil {
			return AuthResult{}, fmt.Errorf("establish session: %w", err)
		}
		result.Session = &sess
		return result, nil
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	result.Token = token
	return result, nil
}

// generateNonce creates a cryptographically unpredictable nonce.
func generateNonce() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
