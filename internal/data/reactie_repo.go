package data

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/ports"
)

const (
	reactieColumns = `id, leermiddel_id, gebruiker_id, gebruikersnaam, tekst, is_goedgekeurd, aangemaakt_op`

	reactieInsertQuery = `
		INSERT INTO reacties (leermiddel_id, gebruiker_id, gebruikersnaam, tekst, is_goedgekeurd, aangemaakt_op)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reactieColumns

	reactieListByLeermiddelQuery = `
		SELECT ` + reactieColumns + `
		FROM reacties
		WHERE leermiddel_id = $1
		ORDER BY aangemaakt_op, id`

	reactieListPendingQuery = `
		SELECT ` + reactieColumns + `
		FROM reacties
		WHERE NOT is_goedgekeurd
		ORDER BY aangemaakt_op, id`

	reactieApproveQuery = `
		UPDATE reacties
		SET is_goedgekeurd = true
		WHERE id = $1
		RETURNING ` + reactieColumns
)

// ReactieRepo persists comments.
type ReactieRepo struct {
	pool         *pgxpool.Pool
	timeProvider TimeProvider
}

var _ ports.ReactieStore = (*ReactieRepo)(nil)

// NewReactieRepo creates a ReactieRepo with the real clock.
func NewReactieRepo(pool *pgxpool.Pool) *ReactieRepo {
	return &ReactieRepo{pool: pool, timeProvider: RealTimeProvider{}}
}

// NewReactieRepoWithTimeProvider creates a ReactieRepo with a custom clock.
func NewReactieRepoWithTimeProvider(pool *pgxpool.Pool, tp TimeProvider) *ReactieRepo {
	return &ReactieRepo{pool: pool, timeProvider: tp}
}

func (r *ReactieRepo) Create(ctx context.Context, reactie model.Reactie) (model.Reactie, error) {
	rows, err := r.pool.Query(ctx, reactieInsertQuery,
		reactie.LeermiddelID,
		reactie.GebruikerID,
		strings.TrimSpace(reactie.Gebruikersnaam),
		strings.TrimSpace(reactie.Tekst),
		reactie.IsGoedgekeurd,
		r.timeProvider.Now().UTC(),
	)
	if err != nil {
		return model.Reactie{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reactie])
	if err != nil {
		return model.Reactie{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *ReactieRepo) ListByLeermiddel(ctx context.Context, leermiddelID string) ([]model.Reactie, error) {
	return r.list(ctx, reactieListByLeermiddelQuery, leermiddelID)
}

func (r *ReactieRepo) ListPending(ctx context.Context) ([]model.Reactie, error) {
	return r.list(ctx, reactieListPendingQuery)
}

func (r *ReactieRepo) Approve(ctx context.Context, id string) (model.Reactie, error) {
	rows, err := r.pool.Query(ctx, reactieApproveQuery, id)
	if err != nil {
		return model.Reactie{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reactie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reactie{}, apperrors.NotFound("Reactie niet gevonden")
		}
		return model.Reactie{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *ReactieRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM reacties WHERE id = $1`, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Reactie niet gevonden")
	}
	return nil
}

func (r *ReactieRepo) list(ctx context.Context, query string, args ...any) ([]model.Reactie, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reactie])
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
