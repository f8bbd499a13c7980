package config

import (
	"fmt"
	"strings"
	"time"
)

// GoogleVerifyMode selects how Google identity tokens are validated.
type GoogleVerifyMode string

const (
	// GoogleVerifySigned verifies token signatures against Google's
	// published keys via OIDC discovery.
	GoogleVerifySigned GoogleVerifyMode = "signed"
	// GoogleVerifyStructural validates token structure, nonce, and lifetime
	// without a signature check. Development and testing only.
	GoogleVerifyStructural GoogleVerifyMode = "structural"
)

// UnmarshalText implements encoding.TextUnmarshaler for GoogleVerifyMode.
func (m *GoogleVerifyMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "signed", "structural":
		*m = GoogleVerifyMode(v)
		return nil
	default:
		return fmt.Errorf("invalid GoogleVerifyMode: %q (valid options: signed, structural)", v)
	}
}

// GoogleConfig contains Google external-login configuration.
type GoogleConfig struct {
	// ClientID is the OAuth client ID the identity token audience must match.
	ClientID string `env:"CLIENT_ID" envDefault:""`

	// VerifyMode selects signature verification or structural validation.
	VerifyMode GoogleVerifyMode `env:"VERIFY_MODE" envDefault:"signed"`
}

// JWTConfig contains bearer-token configuration.
type JWTConfig struct {
	// Secret signs bearer tokens.
	Secret string `env:"SECRET,required"`

	// TTL is the bearer-token lifetime.
	TTL time.Duration `env:"TTL" envDefault:"168h"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Google configuration for external login.
	Google GoogleConfig `envPrefix:"GOOGLE_"`

	// JWT configuration for bearer tokens.
	JWT JWTConfig `envPrefix:"JWT_"`

	// SessionTTL is the sliding window of cookie sessions.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// NonceTTL bounds how long an external-login attempt may take.
	NonceTTL time.Duration `env:"NONCE_TTL" envDefault:"10m"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 168 * time.Hour
	}
	if a.NonceTTL <= 0 {
		a.NonceTTL = 10 * time.Minute
	}
	if a.JWT.TTL <= 0 {
		a.JWT.TTL = 168 * time.Hour
	}
}
