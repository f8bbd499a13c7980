package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "leerbron-client")
	t.Setenv("GOOGLE_VERIFY_MODE", "structural")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("SESSION_TTL", "72h")
	t.Setenv("NONCE_TTL", "5m")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		Google: GoogleConfig{
			ClientID:   "leerbron-client",
			VerifyMode: GoogleVerifyStructural,
		},
		JWT: JWTConfig{
			Secret: "super-secret",
			TTL:    24 * time.Hour,
		},
		SessionTTL: 72 * time.Hour,
		NonceTTL:   5 * time.Minute,
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
}

func TestGoogleVerifyMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    GoogleVerifyMode
		expectError bool
	}{
		{input: "signed", expected: GoogleVerifySigned},
		{input: "SIGNED", expected: GoogleVerifySigned},
		{input: "structural", expected: GoogleVerifyStructural},
		{input: "oauth", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var mode GoogleVerifyMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, mode)
			}
		})
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{}
	cfg.Sanitize()

	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("expected session TTL fallback, got %v", cfg.SessionTTL)
	}
	if cfg.NonceTTL != 10*time.Minute {
		t.Errorf("expected nonce TTL fallback, got %v", cfg.NonceTTL)
	}
	if cfg.JWT.TTL != 168*time.Hour {
		t.Errorf("expected JWT TTL fallback, got %v", cfg.JWT.TTL)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Fatal("expected dev mode to be detected from APP_ENV")
	}
}
