package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/ports"
	"github.com/leerbron/leerbron-api/internal/service"
)

// SessionCookieName is the cookie carrying the server-side session ID.
const SessionCookieName = "session_id"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate returns a middleware that resolves the caller's credentials
// into a principal on the request context. It accepts either a session cookie
// or an Authorization bearer token; the cookie wins when both are present.
// Unauthenticated requests pass through without a principal so public
// endpoints keep working.
func Authenticate(sessions *service.SessionService, tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principal := principalFromRequest(r, sessions, tokens); principal != nil {
				r = r.WithContext(SetPrincipalInContext(r.Context(), principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that requires an authenticated principal.
// API clients get a 401 response, never a redirect.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetPrincipalFromContext(r.Context()); !ok {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("Aanmelden is verplicht"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireInterneMedewerker returns a middleware that requires the employee
// claim. Authenticated callers without the claim get a 403 response.
func RequireInterneMedewerker() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("Aanmelden is verplicht"),
				})
				return
			}
			if !principal.IsInterneMedewerker() {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("Alleen interne medewerkers mogen dit"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// principalFromRequest resolves credentials into a principal, or nil when the
// request carries none or they do not verify.
func principalFromRequest(r *http.Request, sessions *service.SessionService, tokens ports.TokenService) *domainauth.Principal {
	if sessions != nil {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			if sess, err := sessions.Get(r.Context(), cookie.Value); err == nil {
				principal := sess.Principal()
				return &principal
			}
		}
	}

	if tokens != nil {
		if raw := bearerToken(r); raw != "" {
			if principal, err := tokens.Parse(raw); err == nil {
				return &principal
			}
		}
	}

	return nil
}

// bearerToken extracts the token from an Authorization header, or "".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
