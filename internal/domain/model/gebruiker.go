package model

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/leerbron/leerbron-api/internal/errors"
)

const (
	maxNaamLen       = 100
	minWachtwoordLen = 6
)

// Gebruiker is a stored user account. WachtwoordHash is empty for accounts
// created through an external identity provider.
type Gebruiker struct {
	ID             string    `json:"id"           db:"id"`
	Naam           string    `json:"naam"         db:"naam"`
	Email          string    `json:"email"        db:"email"`
	WachtwoordHash string    `json:"-"            db:"wachtwoord_hash"`
	AangemaaktOp   time.Time `json:"aangemaaktOp" db:"aangemaakt_op"`
}

// Info builds the public view of the account.
func (g *Gebruiker) Info(isInterneMedewerker bool) *UserInfo {
	return &UserInfo{
		ID:                  g.ID,
		Naam:                g.Naam,
		Email:               g.Email,
		IsInterneMedewerker: isInterneMedewerker,
	}
}

// UserInfo is the public view of a user account as returned by the account
// endpoints. It never exposes credentials or raw claims.
type UserInfo struct {
	ID                  string `json:"id"`
	Naam                string `json:"naam"`
	Email               string `json:"email"`
	IsInterneMedewerker bool   `json:"isInterneMedewerker"`
}

// RegisterRequest carries local-account registration input. Self-registered
// accounts get a session right away; accounts created on someone's behalf
// (IsSelfRegistration false) do not. The wire default is self-registration.
type RegisterRequest struct {
	Naam               string `json:"naam"`
	Email              string `json:"email"`
	Wachtwoord         string `json:"wachtwoord"`
	IsSelfRegistration *bool  `json:"isSelfRegistration,omitempty"`
}

// SelfRegistration reports whether the new account should be signed in.
func (r *RegisterRequest) SelfRegistration() bool {
	return r.IsSelfRegistration == nil || *r.IsSelfRegistration
}

// Validate checks the registration fields.
func (r *RegisterRequest) Validate() error {
	if err := validateNaam(r.Naam); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if utf8.RuneCountInString(r.Wachtwoord) < minWachtwoordLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Wachtwoord moet minimaal 6 tekens zijn",
			Field:   "wachtwoord",
		}
	}
	return nil
}

// LoginRequest carries credential login input. UseCookieAuth selects between
// a cookie session (browser clients) and a bearer token (API consumers);
// the wire default is a cookie session.
type LoginRequest struct {
	Email         string `json:"email"`
	Wachtwoord    string `json:"wachtwoord"`
	UseCookieAuth *bool  `json:"useCookieAuth,omitempty"`
}

// WantsCookie reports whether the login should establish a cookie session.
func (r *LoginRequest) WantsCookie() bool {
	return r.UseCookieAuth == nil || *r.UseCookieAuth
}

// Validate checks the login fields.
func (r *LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Wachtwoord == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Wachtwoord is verplicht",
			Field:   "wachtwoord",
		}
	}
	return nil
}

// ExternalLoginRequest carries the federated-login input: the raw identity
// token from the provider plus the access token the front-channel received.
type ExternalLoginRequest struct {
	Provider    string `json:"provider"`
	IDToken     string `json:"idToken"`
	AccessToken string `json:"accessToken"`
}

// AuthResponse is the shared response shape of the account endpoints.
type AuthResponse struct {
	Succes      bool      `json:"succes"`
	Foutmelding string    `json:"foutmelding,omitempty"`
	Gebruiker   *UserInfo `json:"gebruiker,omitempty"`
	Token       string    `json:"token,omitempty"`
}

func validateNaam(naam string) error {
	naam = strings.TrimSpace(naam)
	if naam == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Naam is verplicht",
			Field:   "naam",
		}
	}
	if utf8.RuneCountInString(naam) > maxNaamLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Naam is te lang",
			Field:   "naam",
		}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Email is verplicht",
			Field:   "email",
		}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Ongeldig emailadres",
			Field:   "email",
		}
	}
	return nil
}
