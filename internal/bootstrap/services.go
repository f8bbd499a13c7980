package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/leerbron/leerbron-api/config"
	"github.com/leerbron/leerbron-api/internal/adapters/jwtauth"
	redisadapter "github.com/leerbron/leerbron-api/internal/adapters/redis"
	"github.com/leerbron/leerbron-api/internal/data"
	"github.com/leerbron/leerbron-api/internal/ports"
	"github.com/leerbron/leerbron-api/internal/service"
)

// ServiceDeps groups the infrastructure a service container is built from.
type ServiceDeps struct {
	Pool     *pgxpool.Pool
	Redis    goredis.UniversalClient
	Verifier ports.IdentityTokenVerifier
	Config   *config.AppConfig
	Logger   *slog.Logger
}

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions     *service.SessionService
	Accounts     *service.AccountService
	Leermiddelen *service.LeermiddelService
	Reacties     *service.ReactieService
	Tokens       ports.TokenService
}

// BuildServices wires repositories, adapters, and services together.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	tokens, err := jwtauth.New(jwtauth.Options{
		Secret: []byte(cfg.Auth.JWT.Secret),
		TTL:    cfg.Auth.JWT.TTL,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build token service: %w", err)
	}

	users := data.NewUserRepo(deps.Pool)
	leermiddelen := data.NewLeermiddelRepo(deps.Pool)
	reacties := data.NewReactieRepo(deps.Pool)

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Sessions: redisadapter.NewSessionStore(deps.Redis),
		TTL:      cfg.Auth.SessionTTL,
	})
	accounts := service.NewAccountService(service.AccountServiceOptions{
		Users:    users,
		Sessions: sessions,
		Nonces:   redisadapter.NewNonceStore(deps.Redis),
		Tokens:   tokens,
		Verifier: deps.Verifier,
		Logger:   deps.Logger,
		NonceTTL: cfg.Auth.NonceTTL,
	})

	return ServiceContainer{
		Sessions: sessions,
		Accounts: accounts,
		Leermiddelen: service.NewLeermiddelService(service.LeermiddelServiceOptions{
			Leermiddelen: leermiddelen,
			Reacties:     reacties,
		}),
		Reacties: service.NewReactieService(service.ReactieServiceOptions{
			Reacties:     reacties,
			Leermiddelen: leermiddelen,
		}),
		Tokens: tokens,
	}, nil
}
