// Package devseed fills a development database with a known admin account
// and a handful of learning resources. It is never wired into the server;
// only the admin CLI runs it.
package devseed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/leerbron/leerbron-api/internal/data"
	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
)

const (
	// AdminEmail is the seeded employee account. The password is
	// development-only and printed in the CLI output.
	AdminEmail    = "beheer@leerbron.dev"
	adminNaam     = "Beheerder"
	adminPassword = "wachtwoord123"
)

// Run seeds the admin account and sample content. Running twice is safe;
// existing records are left alone.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	users := data.NewUserRepo(pool)
	leermiddelen := data.NewLeermiddelRepo(pool)
	reacties := data.NewReactieRepo(pool)

	admin, err := seedAdmin(ctx, users, logger)
	if err != nil {
		return err
	}

	existing, err := leermiddelen.List(ctx)
	if err != nil {
		return fmt.Errorf("list leermiddelen: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "leermiddelen already present, skipping content seed", "count", len(existing))
		return nil
	}

	return seedContent(ctx, leermiddelen, reacties, admin)
}

func seedAdmin(ctx context.Context, users *data.UserRepo, logger *slog.Logger) (model.Gebruiker, error) {
	admin, err := users.FindByEmail(ctx, AdminEmail)
	if err == nil {
		logger.InfoContext(ctx, "admin account already present", "email", AdminEmail)
		return admin, nil
	}
	if !apperrors.IsNotFound(err) {
		return model.Gebruiker{}, fmt.Errorf("find admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.Gebruiker{}, fmt.Errorf("hash admin wachtwoord: %w", err)
	}
	admin, err = users.CreateUser(ctx, adminNaam, AdminEmail, string(hash))
	if err != nil {
		return model.Gebruiker{}, fmt.Errorf("create admin: %w", err)
	}
	if err := users.AddClaim(ctx, admin.ID, domainauth.InterneMedewerkerClaim()); err != nil {
		return model.Gebruiker{}, fmt.Errorf("grant admin claim: %w", err)
	}

	logger.InfoContext(ctx, "seeded admin account", "email", AdminEmail, "wachtwoord", adminPassword)
	return admin, nil
}

func seedContent(ctx context.Context, leermiddelen *data.LeermiddelRepo, reacties *data.ReactieRepo, admin model.Gebruiker) error {
	samples := []model.Leermiddel{
		{
			Titel:        "De Go Tour",
			Beschrijving: "Interactieve introductie in de taal.",
			Link:         "https://go.dev/tour/",
		},
		{
			Titel:        "Effective Go",
			Beschrijving: "Conventies en idiomen voor leesbare Go.",
			Link:         "https://go.dev/doc/effective_go",
		},
		{
			Titel:        "Go by Example",
			Beschrijving: "Korte, uitvoerbare voorbeelden per onderwerp.",
			Link:         "https://gobyexample.com/",
		},
	}

	for i, sample := range samples {
		created, err := leermiddelen.Create(ctx, sample)
		if err != nil {
			return fmt.Errorf("create leermiddel %q: %w", sample.Titel, err)
		}
		if i != 0 {
			continue
		}

		// One approved employee comment and one pending anonymous comment,
		// so moderation has something to show.
		_, err = reacties.Create(ctx, model.Reactie{
			LeermiddelID:   created.ID,
			GebruikerID:    admin.ID,
			Gebruikersnaam: admin.Naam,
			Tekst:          "Aanrader om mee te beginnen.",
			IsGoedgekeurd:  true,
		})
		if err != nil {
			return fmt.Errorf("create seed reactie: %w", err)
		}
		_, err = reacties.Create(ctx, model.Reactie{
			LeermiddelID:   created.ID,
			Gebruikersnaam: "Anoniem",
			Tekst:          "Werkt dit ook zonder account?",
		})
		if err != nil {
			return fmt.Errorf("create seed reactie: %w", err)
		}
	}
	return nil
}
