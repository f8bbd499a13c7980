package httpx

import (
	"log/slog"
	"net/http"

	"github.com/leerbron/leerbron-api/internal/ports"
	"github.com/leerbron/leerbron-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Accounts     *service.AccountService
	Leermiddelen *service.LeermiddelService
	Reacties     *service.ReactieService
	Sessions     *service.SessionService
	Tokens       ports.TokenService
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. Credential resolution
// runs for every request; route registration decides which endpoints demand
// a principal or the employee claim. Logging and panic recovery are applied
// by the caller, outside the router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	accountHandlers := &AccountHandlers{
		Svc:          services.Accounts,
		Sessions:     services.Sessions,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	leermiddelHandlers := &LeermiddelHandlers{
		Leermiddelen: services.Leermiddelen,
		Reacties:     services.Reacties,
	}

	registerAccountRoutes(mux, accountHandlers)
	registerLeermiddelRoutes(mux, leermiddelHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return Authenticate(services.Sessions, services.Tokens)(mux)
}

func registerAccountRoutes(mux *http.ServeMux, h *AccountHandlers) {
	mux.HandleFunc("POST /api/account/register", h.Register)
	mux.HandleFunc("POST /api/account/login", h.Login)
	mux.HandleFunc("GET /api/account/external-login/nonce", h.ExternalLoginNonce)
	mux.HandleFunc("POST /api/account/external-login", h.ExternalLogin)
	mux.Handle("POST /api/account/logout", RequireAuth()(http.HandlerFunc(h.Logout)))
	mux.HandleFunc("GET /api/account/current-user", h.CurrentUser)

	employeeOnly := RequireInterneMedewerker()
	mux.Handle("GET /api/account/users", employeeOnly(http.HandlerFunc(h.ListUsers)))
	mux.Handle("PUT /api/account/users/{id}/toggle-internal-employee",
		employeeOnly(http.HandlerFunc(h.ToggleInterneMedewerker)))
}

func registerLeermiddelRoutes(mux *http.ServeMux, h *LeermiddelHandlers) {
	// Reading resources and posting comments is open to everyone.
	mux.HandleFunc("GET /api/leermiddelen", h.List)
	mux.HandleFunc("GET /api/leermiddelen/{id}", h.GetByID)
	mux.HandleFunc("GET /api/leermiddelen/{id}/reacties", h.ListReacties)
	mux.HandleFunc("POST /api/leermiddelen/{id}/reacties", h.CreateReactie)

	employeeOnly := RequireInterneMedewerker()
	mux.Handle("POST /api/leermiddelen", employeeOnly(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/leermiddelen/{id}", employeeOnly(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/leermiddelen/{id}", employeeOnly(http.HandlerFunc(h.Delete)))
	mux.Handle("GET /api/reacties/pending", employeeOnly(http.HandlerFunc(h.ListPendingReacties)))
	mux.Handle("POST /api/reacties/{id}/approve", employeeOnly(http.HandlerFunc(h.ApproveReactie)))
	mux.Handle("DELETE /api/reacties/{id}", employeeOnly(http.HandlerFunc(h.DeleteReactie)))
}
