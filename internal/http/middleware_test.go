package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	mocksauth "github.com/leerbron/leerbron-api/internal/mocks/auth"
	"github.com/leerbron/leerbron-api/internal/service"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing", "", ""},
		{"bearer", "Bearer abc.def", "abc.def"},
		{"case insensitive scheme", "bearer abc", "abc"},
		{"other scheme", "Basic abc", ""},
		{"scheme only", "Bearer ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, bearerToken(r))
		})
	}
}

func TestAuthenticate_CookieWinsOverBearer(t *testing.T) {
	sessionSvc := service.NewSessionService(service.SessionServiceOptions{
		Sessions: mocksauth.NewMemorySessionStore(),
	})
	tokens := mocksauth.NewFakeTokenService()

	sess, err := sessionSvc.Establish(context.Background(), domainauth.Principal{UserID: "cookie-user"})
	require.NoError(t, err)
	token, err := tokens.Issue(domainauth.Principal{UserID: "token-user"})
	require.NoError(t, err)

	var got *domainauth.Principal
	handler := Authenticate(sessionSvc, tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = PrincipalFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	r.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, "cookie-user", got.UserID)
}

func TestAuthenticate_InvalidCredentialsStayAnonymous(t *testing.T) {
	sessionSvc := service.NewSessionService(service.SessionServiceOptions{
		Sessions: mocksauth.NewMemorySessionStore(),
	})

	called := false
	handler := Authenticate(sessionSvc, mocksauth.NewFakeTokenService())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, PrincipalFromContext(r.Context()))
		}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "verlopen"})
	r.Header.Set("Authorization", "Bearer onzin")
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.True(t, called)
}

func TestHealthz(t *testing.T) {
	env := newAccountEnv(t)

	rec := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = env.do(t, http.MethodHead, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
