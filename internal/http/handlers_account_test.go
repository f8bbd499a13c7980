package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	mocksauth "github.com/leerbron/leerbron-api/internal/mocks/auth"
	"github.com/leerbron/leerbron-api/internal/service"
)

// accountEnv wires the account endpoints against in-memory backends.
type accountEnv struct {
	router     http.Handler
	users      *mocksauth.MemoryIdentityStore
	sessionSvc *service.SessionService
	verifier   *mocksauth.StubVerifier
}

func newAccountEnv(t *testing.T) *accountEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	users := mocksauth.NewMemoryIdentityStore()
	tokens := mocksauth.NewFakeTokenService()
	verifier := &mocksauth.StubVerifier{}

	sessionSvc := service.NewSessionService(service.SessionServiceOptions{
		Sessions: mocksauth.NewMemorySessionStore(),
	})
	accountSvc := service.NewAccountService(service.AccountServiceOptions{
		Users:    users,
		Sessions: sessionSvc,
		Nonces:   mocksauth.NewMemoryNonceStore(),
		Tokens:   tokens,
		Verifier: verifier,
		Logger:   logger,
	})

	router := NewRouter(RouterServices{
		Accounts: accountSvc,
		Sessions: sessionSvc,
		Tokens:   tokens,
		Logger:   logger,
	})
	return &accountEnv{router: router, users: users, sessionSvc: sessionSvc, verifier: verifier}
}

// do sends a JSON request through the router. A nil body sends no payload.
func (e *accountEnv) do(t *testing.T, method, path string, body any, mods ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, mod := range mods {
		mod(req)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func withCookie(c *http.Cookie) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(c) }
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func decodeAuthResponse(t *testing.T, rec *httptest.ResponseRecorder) model.AuthResponse {
	t.Helper()
	var out model.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}
	return nil
}

// employeeCookie establishes a session for a user holding the employee claim.
func (e *accountEnv) employeeCookie(t *testing.T) *http.Cookie {
	t.Helper()

	user, err := e.users.CreateUser(context.Background(), "Beheerder", "beheer@leerbron.nl", "")
	require.NoError(t, err)
	require.NoError(t, e.users.AddClaim(context.Background(), user.ID, domainauth.InterneMedewerkerClaim()))

	sess, err := e.sessionSvc.Establish(context.Background(), domainauth.Principal{
		UserID: user.ID,
		Naam:   user.Naam,
		Email:  user.Email,
		Claims: domainauth.Claims{domainauth.InterneMedewerkerClaim()},
	})
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

func TestAccountRegister(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeAuthResponse(t, rec)
	assert.True(t, resp.Succes)
	require.NotNil(t, resp.Gebruiker)
	assert.Equal(t, "Ann", resp.Gebruiker.Naam)
	assert.False(t, resp.Gebruiker.IsInterneMedewerker)

	// Self-registration signs the user in with a cookie session.
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	rec = env.do(t, http.MethodGet, "/api/account/current-user", nil, withCookie(cookie))
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeAuthResponse(t, rec)
	assert.True(t, resp.Succes)
	assert.Equal(t, "ann@example.com", resp.Gebruiker.Email)
}

func TestAccountRegister_OnBehalf(t *testing.T) {
	env := newAccountEnv(t)

	onBehalf := false
	rec := env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Bob", Email: "bob@example.com", Wachtwoord: "geheim1",
		IsSelfRegistration: &onBehalf,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestAccountRegister_EmailTaken(t *testing.T) {
	env := newAccountEnv(t)

	req := model.RegisterRequest{Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1"}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/account/register", req).Code)

	rec := env.do(t, http.MethodPost, "/api/account/register", req)
	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeAuthResponse(t, rec)
	assert.False(t, resp.Succes)
	assert.Equal(t, "Dit emailadres is al in gebruik", resp.Foutmelding)
}

func TestAccountLogin_InvalidCredentials(t *testing.T) {
	env := newAccountEnv(t)
	env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1",
	})

	// Wrong password and unknown email are indistinguishable to the client.
	for _, req := range []model.LoginRequest{
		{Email: "ann@example.com", Wachtwoord: "fout"},
		{Email: "niemand@example.com", Wachtwoord: "geheim1"},
	} {
		rec := env.do(t, http.MethodPost, "/api/account/login", req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeAuthResponse(t, rec)
		assert.False(t, resp.Succes)
		assert.Equal(t, "Ongeldige email of wachtwoord", resp.Foutmelding)
	}
}

func TestAccountLogin_BearerToken(t *testing.T) {
	env := newAccountEnv(t)
	env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1",
	})

	useCookie := false
	rec := env.do(t, http.MethodPost, "/api/account/login", model.LoginRequest{
		Email: "ann@example.com", Wachtwoord: "geheim1", UseCookieAuth: &useCookie,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeAuthResponse(t, rec)
	require.NotEmpty(t, resp.Token)
	assert.Nil(t, sessionCookie(rec))

	rec = env.do(t, http.MethodGet, "/api/account/current-user", nil, withBearer(resp.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeAuthResponse(t, rec)
	assert.True(t, resp.Succes)
	assert.Equal(t, "Ann", resp.Gebruiker.Naam)
}

func TestAccountCurrentUser_Anonymous(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodGet, "/api/account/current-user", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAuthResponse(t, rec)
	assert.False(t, resp.Succes)
	assert.Nil(t, resp.Gebruiker)
}

func TestAccountExternalLogin(t *testing.T) {
	env := newAccountEnv(t)
	env.verifier.Identity = domainauth.ExternalIdentity{
		Provider:   "google",
		ProviderID: "sub-1",
		Email:      "carol@example.com",
		Naam:       "Carol",
	}

	rec := env.do(t, http.MethodGet, "/api/account/external-login/nonce", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var nonceResp NonceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&nonceResp))
	require.NotEmpty(t, nonceResp.Nonce)

	var attempt *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == loginAttemptCookieName {
			attempt = c
		}
	}
	require.NotNil(t, attempt)

	body := model.ExternalLoginRequest{Provider: "google", IDToken: "raw-token"}
	rec = env.do(t, http.MethodPost, "/api/account/external-login", body, withCookie(attempt))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeAuthResponse(t, rec)
	assert.True(t, resp.Succes)
	assert.Equal(t, "carol@example.com", resp.Gebruiker.Email)
	require.NotNil(t, sessionCookie(rec))

	// The nonce is single use. Replaying the attempt fails.
	rec = env.do(t, http.MethodPost, "/api/account/external-login", body, withCookie(attempt))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Geen actieve aanmeldpoging", decodeAuthResponse(t, rec).Foutmelding)
}

func TestAccountExternalLogin_NoAttemptCookie(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodPost, "/api/account/external-login",
		model.ExternalLoginRequest{Provider: "google", IDToken: "raw-token"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Geen actieve aanmeldpoging", decodeAuthResponse(t, rec).Foutmelding)
}

func TestAccountLogout(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1",
	})
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	rec = env.do(t, http.MethodPost, "/api/account/logout", nil, withCookie(cookie))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeAuthResponse(t, rec).Succes)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)

	// The destroyed session no longer authenticates.
	rec = env.do(t, http.MethodGet, "/api/account/current-user", nil, withCookie(cookie))
	assert.False(t, decodeAuthResponse(t, rec).Succes)

	// Logging out without credentials is rejected.
	rec = env.do(t, http.MethodPost, "/api/account/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountUsers_Authorization(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodGet, "/api/account/users", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A regular signed-in user lacks the employee claim.
	reg := env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1",
	})
	rec = env.do(t, http.MethodGet, "/api/account/users", nil, withCookie(sessionCookie(reg)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/account/users", nil, withCookie(env.employeeCookie(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []model.UserInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestAccountToggleInterneMedewerker(t *testing.T) {
	env := newAccountEnv(t)
	employee := env.employeeCookie(t)

	reg := env.do(t, http.MethodPost, "/api/account/register", model.RegisterRequest{
		Naam: "Ann", Email: "ann@example.com", Wachtwoord: "geheim1",
	})
	targetID := decodeAuthResponse(t, reg).Gebruiker.ID

	path := "/api/account/users/" + targetID + "/toggle-internal-employee"

	rec := env.do(t, http.MethodPut, path, nil, withCookie(employee))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, env.employeeFlag(t, employee, targetID))

	// Toggling again restores the original state.
	rec = env.do(t, http.MethodPut, path, nil, withCookie(employee))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, env.employeeFlag(t, employee, targetID))
}

// employeeFlag reads the target's employee flag through the users listing.
func (e *accountEnv) employeeFlag(t *testing.T, employee *http.Cookie, targetID string) bool {
	t.Helper()

	rec := e.do(t, http.MethodGet, "/api/account/users", nil, withCookie(employee))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []model.UserInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	for _, u := range users {
		if u.ID == targetID {
			return u.IsInterneMedewerker
		}
	}
	t.Fatalf("user %s not in listing", targetID)
	return false
}

func TestAccountToggleInterneMedewerker_UnknownUser(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodPut, "/api/account/users/nope/toggle-internal-employee", nil,
		withCookie(env.employeeCookie(t)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
