package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/service"
)

// loginAttemptCookieName carries the external-login attempt ID between the
// nonce request and the token post.
const loginAttemptCookieName = "login_attempt"

// AccountHandlers serves the account endpoints: registration, credential and
// federated login, logout, and user administration.
type AccountHandlers struct {
	Svc          *service.AccountService
	Sessions     *service.SessionService
	CookieDomain string
	Logger       *slog.Logger
}

// NonceResponse is the payload of the external-login nonce endpoint.
type NonceResponse struct {
	Nonce string `json:"nonce"`
}

// Register handles POST /api/account/register.
func (h *AccountHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Register(r.Context(), req)
	if err != nil {
		h.writeAuthFailure(w, r, err)
		return
	}

	h.finishSignIn(w, result, http.StatusCreated)
}

// Login handles POST /api/account/login.
func (h *AccountHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req)
	if err != nil {
		h.writeAuthFailure(w, r, err)
		return
	}

	h.finishSignIn(w, result, http.StatusOK)
}

// ExternalLoginNonce handles GET /api/account/external-login/nonce. It issues
// a fresh single-use nonce and binds the attempt to the client with a
// short-lived cookie. Requesting a new nonce replaces the previous one.
func (h *AccountHandlers) ExternalLoginNonce(w http.ResponseWriter, r *http.Request) {
	attemptID := ""
	if cookie, err := r.Cookie(loginAttemptCookieName); err == nil {
		attemptID = cookie.Value
	}

	attemptID, nonce, err := h.Svc.BeginExternalLogin(r.Context(), attemptID)
	if err != nil {
		h.writeAuthFailure(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     loginAttemptCookieName,
		Value:    attemptID,
		Path:     "/api/account/external-login",
		Domain:   h.CookieDomain,
		MaxAge:   int(service.DefaultNonceTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	WriteJSON(w, http.StatusOK, NonceResponse{Nonce: nonce})
}

// ExternalLogin handles POST /api/account/external-login. The attempt cookie
// set by the nonce endpoint identifies which nonce the token must carry.
func (h *AccountHandlers) ExternalLogin(w http.ResponseWriter, r *http.Request) {
	var req model.ExternalLoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	attemptID := ""
	if cookie, err := r.Cookie(loginAttemptCookieName); err == nil {
		attemptID = cookie.Value
	}
	if attemptID == "" {
		h.writeAuthFailure(w, r, apperrors.Unauthorized("Geen actieve aanmeldpoging"))
		return
	}

	result, err := h.Svc.ExternalLogin(r.Context(), service.ExternalLoginInput{
		AttemptID: attemptID,
		Request:   req,
	})
	if err != nil {
		h.writeAuthFailure(w, r, err)
		return
	}

	h.clearCookie(w, loginAttemptCookieName, "/api/account/external-login")
	h.finishSignIn(w, result, http.StatusOK)
}

// Logout handles POST /api/account/logout. Logout never fails from the
// client's perspective; the cookie is always cleared.
func (h *AccountHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		h.Svc.Logout(r.Context(), cookie.Value)
	}
	h.clearCookie(w, SessionCookieName, "/")
	WriteJSON(w, http.StatusOK, model.AuthResponse{Succes: true})
}

// CurrentUser handles GET /api/account/current-user. Anonymous callers get a
// succes:false body with a 200 status, not an error.
func (h *AccountHandlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, model.AuthResponse{Succes: false})
		return
	}
	WriteJSON(w, http.StatusOK, model.AuthResponse{
		Succes:    true,
		Gebruiker: h.Svc.CurrentUser(*principal),
	})
}

// ListUsers handles GET /api/account/users.
func (h *AccountHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// ToggleInterneMedewerker handles PUT /api/account/users/{id}/toggle-internal-employee.
func (h *AccountHandlers) ToggleInterneMedewerker(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Svc.ToggleInterneMedewerker(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// finishSignIn writes the shared auth response, setting the session cookie
// when the operation established one.
func (h *AccountHandlers) finishSignIn(w http.ResponseWriter, result service.AuthResult, status int) {
	if result.Session != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    result.Session.ID,
			Path:     "/",
			Domain:   h.CookieDomain,
			MaxAge:   int(h.Sessions.TTL() / time.Second),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	}
	WriteJSON(w, status, model.AuthResponse{
		Succes:    true,
		Gebruiker: result.Gebruiker,
		Token:     result.Token,
	})
}

// writeAuthFailure renders an account-endpoint failure in the shared auth
// response shape. Internal errors are logged and not echoed to the client.
func (h *AccountHandlers) writeAuthFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForCode(apperrors.GetCode(err))

	melding := "Er is iets misgegaan"
	var appErr *apperrors.AppError
	if status != http.StatusInternalServerError && errors.As(err, &appErr) {
		melding = appErr.Message
	} else if h.Logger != nil {
		h.Logger.ErrorContext(r.Context(), "account operation failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
	}

	WriteJSON(w, status, model.AuthResponse{Succes: false, Foutmelding: melding})
}

// clearCookie expires a cookie on the client.
func (h *AccountHandlers) clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
