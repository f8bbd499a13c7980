package data

// Package data implements the storage ports on PostgreSQL via pgx.

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/ports"
)

const (
	userColumns = `id, naam, email, wachtwoord_hash, aangemaakt_op`

	userInsertQuery = `
		INSERT INTO gebruikers (naam, email, wachtwoord_hash, aangemaakt_op)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	userGetByIDQuery = `
		SELECT ` + userColumns + `
		FROM gebruikers
		WHERE id = $1`

	userGetByEmailQuery = `
		SELECT ` + userColumns + `
		FROM gebruikers
		WHERE lower(email) = lower($1)`

	userListQuery = `
		SELECT ` + userColumns + `
		FROM gebruikers
		ORDER BY aangemaakt_op, id`

	userClaimsQuery = `
		SELECT claim_type, claim_value
		FROM gebruiker_claims
		WHERE gebruiker_id = $1
		ORDER BY claim_type, claim_value`

	userAddClaimQuery = `
		INSERT INTO gebruiker_claims (gebruiker_id, claim_type, claim_value)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`

	userRemoveClaimQuery = `
		DELETE FROM gebruiker_claims
		WHERE gebruiker_id = $1 AND claim_type = $2 AND claim_value = $3`

	userByExternalLoginQuery = `
		SELECT g.id, g.naam, g.email, g.wachtwoord_hash, g.aangemaakt_op
		FROM gebruikers g
		JOIN externe_logins e ON e.gebruiker_id = g.id
		WHERE e.provider = $1 AND e.provider_id = $2`

	userAddExternalLoginQuery = `
		INSERT INTO externe_logins (provider, provider_id, gebruiker_id, aangemaakt_op)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_id) DO NOTHING`
)

// claimRow is the storage shape of a claim.
type claimRow struct {
	Type  string `db:"claim_type"`
	Value string `db:"claim_value"`
}

// UserRepo persists user accounts, claims, and external login links.
type UserRepo struct {
	pool         *pgxpool.Pool
	timeProvider TimeProvider
}

var _ ports.IdentityStore = (*UserRepo)(nil)

// NewUserRepo creates a UserRepo with the real clock.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool, timeProvider: RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a UserRepo with a custom clock.
func NewUserRepoWithTimeProvider(pool *pgxpool.Pool, tp TimeProvider) *UserRepo {
	return &UserRepo{pool: pool, timeProvider: tp}
}

func (r *UserRepo) CreateUser(ctx context.Context, naam, email, wachtwoordHash string) (model.Gebruiker, error) {
	naam = strings.TrimSpace(naam)
	email = strings.TrimSpace(email)

	rows, err := r.pool.Query(ctx, userInsertQuery, naam, email, wachtwoordHash, r.timeProvider.Now().UTC())
	if err != nil {
		return model.Gebruiker{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Gebruiker])
	if err != nil {
		return model.Gebruiker{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (model.Gebruiker, error) {
	return r.findOne(ctx, userGetByIDQuery, id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.Gebruiker, error) {
	return r.findOne(ctx, userGetByEmailQuery, strings.TrimSpace(email))
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]model.Gebruiker, error) {
	rows, err := r.pool.Query(ctx, userListQuery)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Gebruiker])
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *UserRepo) GetClaims(ctx context.Context, userID string) (domainauth.Claims, error) {
	rows, err := r.pool.Query(ctx, userClaimsQuery, userID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[claimRow])
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	claims := make(domainauth.Claims, 0, len(collected))
	for _, c := range collected {
		claims = append(claims, domainauth.Claim{Type: c.Type, Value: c.Value})
	}
	return claims, nil
}

// AddClaim is idempotent: adding a claim the user already holds is a no-op.
func (r *UserRepo) AddClaim(ctx context.Context, userID string, claim domainauth.Claim) error {
	_, err := r.pool.Exec(ctx, userAddClaimQuery, userID, claim.Type, claim.Value)
	return apperrors.MapDBError(err)
}

// RemoveClaim is idempotent: removing an absent claim is a no-op.
func (r *UserRepo) RemoveClaim(ctx context.Context, userID string, claim domainauth.Claim) error {
	_, err := r.pool.Exec(ctx, userRemoveClaimQuery, userID, claim.Type, claim.Value)
	return apperrors.MapDBError(err)
}

func (r *UserRepo) FindByExternalLogin(ctx context.Context, provider, providerID string) (model.Gebruiker, error) {
	return r.findOne(ctx, userByExternalLoginQuery, provider, providerID)
}

// AddExternalLogin links a provider identity to the account. Linking an
// identity that is already linked (to any account) is a no-op.
func (r *UserRepo) AddExternalLogin(ctx context.Context, userID string, identity domainauth.ExternalIdentity) error {
	_, err := r.pool.Exec(ctx, userAddExternalLoginQuery,
		identity.Provider, identity.ProviderID, userID, r.timeProvider.Now().UTC())
	return apperrors.MapDBError(err)
}

func (r *UserRepo) findOne(ctx context.Context, query string, args ...any) (model.Gebruiker, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return model.Gebruiker{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Gebruiker])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Gebruiker{}, apperrors.NotFound("Gebruiker niet gevonden")
		}
		return model.Gebruiker{}, apperrors.MapDBError(err)
	}
	return out, nil
}
