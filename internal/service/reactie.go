package service

import (
	"context"
	"fmt"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// ReactieServiceOptions groups dependencies for ReactieService.
type ReactieServiceOptions struct {
	Reacties     ports.ReactieStore
	Leermiddelen ports.LeermiddelStore
}

// ReactieService manages comments and their moderation lifecycle.
type ReactieService struct {
	reacties     ports.ReactieStore
	leermiddelen ports.LeermiddelStore
}

// NewReactieService constructs a ReactieService.
func NewReactieService(opts ReactieServiceOptions) *ReactieService {
	return &ReactieService{
		reacties:     opts.Reacties,
		leermiddelen: opts.Leermiddelen,
	}
}

// Create adds a comment to a resource. Anonymous callers may comment;
// comments from internal employees are approved at creation, everything
// else awaits moderation.
func (s *ReactieService) Create(ctx context.Context, leermiddelID string, req model.CreateReactieRequest, caller *domainauth.Principal) (model.Reactie, error) {
	if err := req.Validate(); err != nil {
		return model.Reactie{}, err
	}

	if _, err := s.leermiddelen.GetByID(ctx, leermiddelID); err != nil {
		return model.Reactie{}, err
	}

	reactie := model.Reactie{
		LeermiddelID:   leermiddelID,
		Gebruikersnaam: req.Gebruikersnaam,
		Tekst:          req.Tekst,
	}
	if caller != nil {
		reactie.GebruikerID = caller.UserID
		reactie.IsGoedgekeurd = caller.IsInterneMedewerker()
	}

	out, err := s.reacties.Create(ctx, reactie)
	if err != nil {
		return model.Reactie{}, fmt.Errorf("create reactie: %w", err)
	}
	return out, nil
}

// ListVisible returns the resource's comments the caller may see.
func (s *ReactieService) ListVisible(ctx context.Context, leermiddelID string, caller *domainauth.Principal) ([]model.Reactie, error) {
	if _, err := s.leermiddelen.GetByID(ctx, leermiddelID); err != nil {
		return nil, err
	}

	reacties, err := s.reacties.ListByLeermiddel(ctx, leermiddelID)
	if err != nil {
		return nil, fmt.Errorf("list reacties: %w", err)
	}

	callerID := ""
	isEmployee := false
	if caller != nil {
		callerID = caller.UserID
		isEmployee = caller.IsInterneMedewerker()
	}
	return model.FilterReacties(reacties, callerID, isEmployee), nil
}

// ListPending returns all comments awaiting moderation, oldest first.
func (s *ReactieService) ListPending(ctx context.Context) ([]model.Reactie, error) {
	out, err := s.reacties.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending reacties: %w", err)
	}
	return out, nil
}

// Approve marks a comment as approved.
func (s *ReactieService) Approve(ctx context.Context, id string) (model.Reactie, error) {
	return s.reacties.Approve(ctx, id)
}

// Delete removes a comment.
func (s *ReactieService) Delete(ctx context.Context, id string) error {
	return s.reacties.Delete(ctx, id)
}
