package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leerbron/leerbron-api/config"
	"github.com/leerbron/leerbron-api/internal/adapters/googleid"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// BuildVerifier selects the Google identity-token verifier from
// configuration. Signed verification reaches out to Google's discovery
// endpoint; structural validation stays local and is meant for development.
//
//nolint:ireturn // the verifier implementation is chosen at runtime.
func BuildVerifier(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (ports.IdentityTokenVerifier, error) {
	switch cfg.Google.VerifyMode {
	case config.GoogleVerifyStructural:
		if logger != nil {
			logger.Warn("structural Google token validation enabled; tokens are not signature checked")
		}
		return googleid.NewStructuralVerifier(), nil
	case config.GoogleVerifySigned, "":
		if cfg.Google.ClientID == "" {
			return nil, errors.New("GOOGLE_CLIENT_ID is required for signed token verification")
		}
		verifier, err := googleid.NewSignedVerifier(ctx, cfg.Google.ClientID)
		if err != nil {
			return nil, fmt.Errorf("build signed verifier: %w", err)
		}
		return verifier, nil
	default:
		return nil, fmt.Errorf("unknown Google verify mode %q", cfg.Google.VerifyMode)
	}
}
