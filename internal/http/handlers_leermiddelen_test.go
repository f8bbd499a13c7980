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
	"go.uber.org/mock/gomock"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/mocks"
	mocksauth "github.com/leerbron/leerbron-api/internal/mocks/auth"
	"github.com/leerbron/leerbron-api/internal/service"
)

// contentEnv wires the resource endpoints against mocked stores, with a live
// session service so authorization runs for real.
type contentEnv struct {
	router       http.Handler
	leermiddelen *mocks.MockLeermiddelStore
	reacties     *mocks.MockReactieStore
	sessionSvc   *service.SessionService
}

func newContentEnv(t *testing.T) *contentEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	leermiddelen := mocks.NewMockLeermiddelStore(ctrl)
	reacties := mocks.NewMockReactieStore(ctrl)

	sessionSvc := service.NewSessionService(service.SessionServiceOptions{
		Sessions: mocksauth.NewMemorySessionStore(),
	})
	router := NewRouter(RouterServices{
		Leermiddelen: service.NewLeermiddelService(service.LeermiddelServiceOptions{
			Leermiddelen: leermiddelen,
			Reacties:     reacties,
		}),
		Reacties: service.NewReactieService(service.ReactieServiceOptions{
			Reacties:     reacties,
			Leermiddelen: leermiddelen,
		}),
		Sessions: sessionSvc,
		Tokens:   mocksauth.NewFakeTokenService(),
		Logger:   slog.New(slog.DiscardHandler),
	})
	return &contentEnv{
		router:       router,
		leermiddelen: leermiddelen,
		reacties:     reacties,
		sessionSvc:   sessionSvc,
	}
}

func (e *contentEnv) do(t *testing.T, method, path string, body any, mods ...func(*http.Request)) *httptest.ResponseRecorder {
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

// cookieFor establishes a session for the given principal.
func (e *contentEnv) cookieFor(t *testing.T, principal domainauth.Principal) *http.Cookie {
	t.Helper()
	sess, err := e.sessionSvc.Establish(context.Background(), principal)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

func (e *contentEnv) employeeCookie(t *testing.T) *http.Cookie {
	return e.cookieFor(t, domainauth.Principal{
		UserID: "emp-1",
		Naam:   "Beheerder",
		Claims: domainauth.Claims{domainauth.InterneMedewerkerClaim()},
	})
}

func TestLeermiddelenList_Public(t *testing.T) {
	env := newContentEnv(t)
	env.leermiddelen.EXPECT().List(gomock.Any()).
		Return([]model.Leermiddel{{ID: "lm-1", Titel: "Go"}}, nil)

	rec := env.do(t, http.MethodGet, "/api/leermiddelen", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []model.Leermiddel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "Go", out[0].Titel)
}

func TestLeermiddelenGet_FiltersReactiesPerCaller(t *testing.T) {
	env := newContentEnv(t)

	all := []model.Reactie{
		{ID: "r1", GebruikerID: "ann", IsGoedgekeurd: true},
		{ID: "r2", GebruikerID: "bob", IsGoedgekeurd: false},
	}
	env.leermiddelen.EXPECT().GetByID(gomock.Any(), "lm-1").
		Return(model.Leermiddel{ID: "lm-1", Titel: "Go"}, nil).Times(2)
	env.reacties.EXPECT().ListByLeermiddel(gomock.Any(), "lm-1").Return(all, nil).Times(2)

	// Anonymous callers see approved comments only.
	rec := env.do(t, http.MethodGet, "/api/leermiddelen/lm-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out model.Leermiddel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out.Reacties, 1)
	assert.Equal(t, "r1", out.Reacties[0].ID)

	// The pending comment's author sees their own comment too.
	bob := env.cookieFor(t, domainauth.Principal{UserID: "bob", Naam: "Bob"})
	rec = env.do(t, http.MethodGet, "/api/leermiddelen/lm-1", nil, withCookie(bob))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Len(t, out.Reacties, 2)
}

func TestLeermiddelenGet_NotFound(t *testing.T) {
	env := newContentEnv(t)
	env.leermiddelen.EXPECT().GetByID(gomock.Any(), "missing").
		Return(model.Leermiddel{}, apperrors.NotFound("Leermiddel niet gevonden"))

	rec := env.do(t, http.MethodGet, "/api/leermiddelen/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "Leermiddel niet gevonden", body["message"])
}

func TestLeermiddelenCreate_Authorization(t *testing.T) {
	env := newContentEnv(t)
	req := model.CreateLeermiddelRequest{Titel: "Go", Link: "https://example.com"}

	rec := env.do(t, http.MethodPost, "/api/leermiddelen", req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	visitor := env.cookieFor(t, domainauth.Principal{UserID: "u-1", Naam: "Ann"})
	rec = env.do(t, http.MethodPost, "/api/leermiddelen", req, withCookie(visitor))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.leermiddelen.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l model.Leermiddel) (model.Leermiddel, error) {
			l.ID = "lm-1"
			return l, nil
		})
	rec = env.do(t, http.MethodPost, "/api/leermiddelen", req, withCookie(env.employeeCookie(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var out model.Leermiddel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "lm-1", out.ID)
}

func TestLeermiddelenUpdate_PathBodyMismatch(t *testing.T) {
	env := newContentEnv(t)

	rec := env.do(t, http.MethodPut, "/api/leermiddelen/lm-1", model.UpdateLeermiddelRequest{
		ID: "ander", Titel: "Go", Link: "https://example.com",
	}, withCookie(env.employeeCookie(t)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeermiddelenDelete(t *testing.T) {
	env := newContentEnv(t)
	env.leermiddelen.EXPECT().Delete(gomock.Any(), "lm-1").Return(nil)

	rec := env.do(t, http.MethodDelete, "/api/leermiddelen/lm-1", nil, withCookie(env.employeeCookie(t)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReactiesCreate_AnonymousAwaitsModeration(t *testing.T) {
	env := newContentEnv(t)
	env.leermiddelen.EXPECT().GetByID(gomock.Any(), "lm-1").Return(model.Leermiddel{ID: "lm-1"}, nil)
	env.reacties.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.Reactie) (model.Reactie, error) {
			r.ID = "r-1"
			return r, nil
		})

	rec := env.do(t, http.MethodPost, "/api/leermiddelen/lm-1/reacties",
		model.CreateReactieRequest{Gebruikersnaam: "Ann", Tekst: "Nuttig"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var out model.Reactie
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Empty(t, out.GebruikerID)
	assert.False(t, out.IsGoedgekeurd)
}

func TestReactiesCreate_EmployeeApprovedImmediately(t *testing.T) {
	env := newContentEnv(t)
	env.leermiddelen.EXPECT().GetByID(gomock.Any(), "lm-1").Return(model.Leermiddel{ID: "lm-1"}, nil)
	env.reacties.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.Reactie) (model.Reactie, error) {
			r.ID = "r-1"
			return r, nil
		})

	rec := env.do(t, http.MethodPost, "/api/leermiddelen/lm-1/reacties",
		model.CreateReactieRequest{Gebruikersnaam: "Beheerder", Tekst: "Top"},
		withCookie(env.employeeCookie(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var out model.Reactie
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "emp-1", out.GebruikerID)
	assert.True(t, out.IsGoedgekeurd)
}

func TestReactiesModeration_EmployeeOnly(t *testing.T) {
	env := newContentEnv(t)

	rec := env.do(t, http.MethodGet, "/api/reacties/pending", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	employee := env.employeeCookie(t)

	env.reacties.EXPECT().ListPending(gomock.Any()).
		Return([]model.Reactie{{ID: "r-1"}}, nil)
	rec = env.do(t, http.MethodGet, "/api/reacties/pending", nil, withCookie(employee))
	require.Equal(t, http.StatusOK, rec.Code)

	env.reacties.EXPECT().Approve(gomock.Any(), "r-1").
		Return(model.Reactie{ID: "r-1", IsGoedgekeurd: true}, nil)
	rec = env.do(t, http.MethodPost, "/api/reacties/r-1/approve", nil, withCookie(employee))
	require.Equal(t, http.StatusOK, rec.Code)

	var approved model.Reactie
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&approved))
	assert.True(t, approved.IsGoedgekeurd)

	env.reacties.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)
	rec = env.do(t, http.MethodDelete, "/api/reacties/r-1", nil, withCookie(employee))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
