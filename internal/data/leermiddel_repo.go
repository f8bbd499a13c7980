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
	leermiddelColumns = `id, titel, beschrijving, link, aangemaakt_op, updated_at`

	leermiddelInsertQuery = `
		INSERT INTO leermiddelen (titel, beschrijving, link, aangemaakt_op, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + leermiddelColumns

	leermiddelGetByIDQuery = `
		SELECT ` + leermiddelColumns + `
		FROM leermiddelen
		WHERE id = $1`

	leermiddelListQuery = `
		SELECT ` + leermiddelColumns + `
		FROM leermiddelen
		ORDER BY aangemaakt_op DESC, id`

	leermiddelUpdateQuery = `
		UPDATE leermiddelen
		SET titel = $2, beschrijving = $3, link = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + leermiddelColumns
)

// LeermiddelRepo persists learning resources.
type LeermiddelRepo struct {
	pool         *pgxpool.Pool
	timeProvider TimeProvider
}

var _ ports.LeermiddelStore = (*LeermiddelRepo)(nil)

// NewLeermiddelRepo creates a LeermiddelRepo with the real clock.
func NewLeermiddelRepo(pool *pgxpool.Pool) *LeermiddelRepo {
	return &LeermiddelRepo{pool: pool, timeProvider: RealTimeProvider{}}
}

// NewLeermiddelRepoWithTimeProvider creates a LeermiddelRepo with a custom clock.
func NewLeermiddelRepoWithTimeProvider(pool *pgxpool.Pool, tp TimeProvider) *LeermiddelRepo {
	return &LeermiddelRepo{pool: pool, timeProvider: tp}
}

func (r *LeermiddelRepo) Create(ctx context.Context, l model.Leermiddel) (model.Leermiddel, error) {
	rows, err := r.pool.Query(ctx, leermiddelInsertQuery,
		strings.TrimSpace(l.Titel),
		strings.TrimSpace(l.Beschrijving),
		strings.TrimSpace(l.Link),
		r.timeProvider.Now().UTC(),
	)
	if err != nil {
		return model.Leermiddel{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Leermiddel])
	if err != nil {
		return model.Leermiddel{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *LeermiddelRepo) GetByID(ctx context.Context, id string) (model.Leermiddel, error) {
	rows, err := r.pool.Query(ctx, leermiddelGetByIDQuery, id)
	if err != nil {
		return model.Leermiddel{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Leermiddel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Leermiddel{}, apperrors.NotFound("Leermiddel niet gevonden")
		}
		return model.Leermiddel{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *LeermiddelRepo) List(ctx context.Context) ([]model.Leermiddel, error) {
	rows, err := r.pool.Query(ctx, leermiddelListQuery)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Leermiddel])
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *LeermiddelRepo) Update(ctx context.Context, l model.Leermiddel) (model.Leermiddel, error) {
	rows, err := r.pool.Query(ctx, leermiddelUpdateQuery,
		l.ID,
		strings.TrimSpace(l.Titel),
		strings.TrimSpace(l.Beschrijving),
		strings.TrimSpace(l.Link),
		r.timeProvider.Now().UTC(),
	)
	if err != nil {
		return model.Leermiddel{}, apperrors.MapDBError(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Leermiddel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Leermiddel{}, apperrors.NotFound("Leermiddel niet gevonden")
		}
		return model.Leermiddel{}, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *LeermiddelRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM leermiddelen WHERE id = $1`, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Leermiddel niet gevonden")
	}
	return nil
}
