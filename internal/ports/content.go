package ports

import (
	"context"

	"github.com/leerbron/leerbron-api/internal/domain/model"
)

// LeermiddelStore persists learning resources.
type LeermiddelStore interface {
	Create(ctx context.Context, l model.Leermiddel) (model.Leermiddel, error)
	GetByID(ctx context.Context, id string) (model.Leermiddel, error)
	List(ctx context.Context) ([]model.Leermiddel, error)
	Update(ctx context.Context, l model.Leermiddel) (model.Leermiddel, error)
	Delete(ctx context.Context, id string) error
}

// ReactieStore persists comments on learning resources.
type ReactieStore interface {
	Create(ctx context.Context, r model.Reactie) (model.Reactie, error)
	ListByLeermiddel(ctx context.Context, leermiddelID string) ([]model.Reactie, error)
	// ListPending returns comments awaiting moderation, oldest first.
	ListPending(ctx context.Context) ([]model.Reactie, error)
	Approve(ctx context.Context, id string) (model.Reactie, error)
	Delete(ctx context.Context, id string) error
}
