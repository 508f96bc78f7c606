package roast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/repository"
)

// CreateInput represents the input parameters for creating a new roast.
type CreateInput struct {
	RoasterID    int64
	Name         string
	Origin       string
	Process      string
	TastingNotes string
}

// Service provides roast management use cases.
type Service struct {
	Roasts   repository.RoastRepository
	Roasters repository.RoasterRepository
}

// List returns one page of roasts matching filter and search ("" matches all).
func (s *Service) List(ctx context.Context, filter repository.RoastFilter, req pagination.ListRequest[entity.RoastSortKey], search string) (pagination.Page[entity.RoastWithRoaster], error) {
	page, err := s.Roasts.List(ctx, filter, req, strings.TrimSpace(search))
	if err != nil {
		return pagination.Page[entity.RoastWithRoaster]{}, fmt.Errorf("list roasts: %w", err)
	}
	return page, nil
}

// Get returns the roast with id joined with its roaster name.
// Returns ErrRoastNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.RoastWithRoaster, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "id must be positive"}
	}
	r, err := s.Roasts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get roast: %w", err)
	}
	if r == nil {
		return nil, ErrRoastNotFound
	}
	return r, nil
}

// Create validates and stores a new roast.
// Returns ErrUnknownRoaster when the roaster does not exist.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Roast, error) {
	r := &entity.Roast{
		RoasterID:    in.RoasterID,
		Name:         in.Name,
		Origin:       in.Origin,
		Process:      in.Process,
		TastingNotes: in.TastingNotes,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.Roasters.Get(ctx, r.RoasterID)
	if err != nil {
		return nil, fmt.Errorf("get roaster: %w", err)
	}
	if owner == nil {
		return nil, ErrUnknownRoaster
	}

	if err := s.Roasts.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create roast: %w", err)
	}
	return r, nil
}

// Delete removes a roast.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "id must be positive"}
	}
	if err := s.Roasts.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrRoastNotFound
		}
		return fmt.Errorf("delete roast: %w", err)
	}
	return nil
}
