package service

import (
	"context"
	"fmt"

	domainauth "github.com/leerbron/leerbron-api/internal/domain/auth"
	"github.com/leerbron/leerbron-api/internal/domain/model"
	"github.com/leerbron/leerbron-api/internal/ports"
)

// LeermiddelServiceOptions groups dependencies for LeermiddelService.
type LeermiddelServiceOptions struct {
	Leermiddelen ports.LeermiddelStore
	Reacties     ports.ReactieStore
}

// LeermiddelService manages learning resources and assembles them with
// their visible comments.
type LeermiddelService struct {
	leermiddelen ports.LeermiddelStore
	reacties     ports.ReactieStore
}

// NewLeermiddelService constructs a LeermiddelService.
func NewLeermiddelService(opts LeermiddelServiceOptions) *LeermiddelService {
	return &LeermiddelService{
		leermiddelen: opts.Leermiddelen,
		reacties:     opts.Reacties,
	}
}

// Create stores a new learning resource.
func (s *LeermiddelService) Create(ctx context.Context, req model.CreateLeermiddelRequest) (model.Leermiddel, error) {
	if err := req.Validate(); err != nil {
		return model.Leermiddel{}, err
	}

	out, err := s.leermiddelen.Create(ctx, model.Leermiddel{
		Titel:        req.Titel,
		Beschrijving: req.Beschrijving,
		Link:         req.Link,
	})
	if err != nil {
		return model.Leermiddel{}, fmt.Errorf("create leermiddel: %w", err)
	}
	return out, nil
}

// Get returns one resource with the comments the caller may see. The caller
// is nil for anonymous requests.
func (s *LeermiddelService) Get(ctx context.Context, id string, caller *domainauth.Principal) (model.Leermiddel, error) {
	leermiddel, err := s.leermiddelen.GetByID(ctx, id)
	if err != nil {
		return model.Leermiddel{}, err
	}

	reacties, err := s.reacties.ListByLeermiddel(ctx, id)
	if err != nil {
		return model.Leermiddel{}, fmt.Errorf("list reacties: %w", err)
	}

	callerID := ""
	isEmployee := false
	if caller != nil {
		callerID = caller.UserID
		isEmployee = caller.IsInterneMedewerker()
	}
	leermiddel.Reacties = model.FilterReacties(reacties, callerID, isEmployee)
	return leermiddel, nil
}

// List returns all resources, newest first, without comments.
func (s *LeermiddelService) List(ctx context.Context) ([]model.Leermiddel, error) {
	out, err := s.leermiddelen.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leermiddelen: %w", err)
	}
	return out, nil
}

// Update replaces the mutable fields of a resource.
func (s *LeermiddelService) Update(ctx context.Context, id string, req model.UpdateLeermiddelRequest) (model.Leermiddel, error) {
	if err := req.Validate(); err != nil {
		return model.Leermiddel{}, err
	}

	out, err := s.leermiddelen.Update(ctx, model.Leermiddel{
		ID:           id,
		Titel:        req.Titel,
		Beschrijving: req.Beschrijving,
		Link:         req.Link,
	})
	if err != nil {
		return model.Leermiddel{}, err
	}
	return out, nil
}

// Delete removes a resource and, through the store, its comments.
func (s *LeermiddelService) Delete(ctx context.Context, id string) error {
	return s.leermiddelen.Delete(ctx, id)
}
