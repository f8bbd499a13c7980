package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
)

func TestLeermiddelRepo_CRUD(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLeermiddelRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Leermiddel{
		Titel:        "Go in de praktijk",
		Beschrijving: "Introductie tot Go",
		Link:         "https://example.com/go",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.AangemaaktOp.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go in de praktijk", got.Titel)

	created.Titel = "Go in de praktijk (2e editie)"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Go in de praktijk (2e editie)", updated.Titel)
	assert.True(t, updated.UpdatedAt.After(updated.AangemaaktOp) || updated.UpdatedAt.Equal(updated.AangemaaktOp))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, created.ID)))
}

func TestReactieRepo_LifecycleAndModeration(t *testing.T) {
	pool := setupTestDB(t)
	leermiddelen := NewLeermiddelRepo(pool)
	reacties := NewReactieRepo(pool)
	ctx := context.Background()

	lm, err := leermiddelen.Create(ctx, model.Leermiddel{Titel: "Titel", Link: "https://example.com"})
	require.NoError(t, err)

	pending, err := reacties.Create(ctx, model.Reactie{
		LeermiddelID:   lm.ID,
		Gebruikersnaam: "Anoniem",
		Tekst:          "Handig!",
	})
	require.NoError(t, err)
	assert.False(t, pending.IsGoedgekeurd)
	assert.Empty(t, pending.GebruikerID)

	approved, err := reacties.Create(ctx, model.Reactie{
		LeermiddelID:   lm.ID,
		GebruikerID:    "u-1",
		Gebruikersnaam: "Anna",
		Tekst:          "Mooi overzicht",
		IsGoedgekeurd:  true,
	})
	require.NoError(t, err)
	assert.True(t, approved.IsGoedgekeurd)

	all, err := reacties.ListByLeermiddel(ctx, lm.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := reacties.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, pending.ID, open[0].ID)

	mod, err := reacties.Approve(ctx, pending.ID)
	require.NoError(t, err)
	assert.True(t, mod.IsGoedgekeurd)

	open, err = reacties.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)

	require.NoError(t, reacties.Delete(ctx, pending.ID))
	assert.True(t, apperrors.IsNotFound(reacties.Delete(ctx, pending.ID)))

	_, err = reacties.Approve(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReactieRepo_MissingLeermiddel(t *testing.T) {
	pool := setupTestDB(t)
	reacties := NewReactieRepo(pool)

	_, err := reacties.Create(context.Background(), model.Reactie{
		LeermiddelID:   "missing",
		Gebruikersnaam: "Anna",
		Tekst:          "tekst",
	})
	assert.True(t, apperrors.IsAppError(err, apperrors.ErrCodeForeignKey), "expected foreign key error, got %v", err)
}
