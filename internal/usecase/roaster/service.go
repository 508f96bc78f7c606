package roaster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/repository"
)

// CreateInput represents the input parameters for creating a new roaster.
type CreateInput struct {
	Name     string
	Country  string
	City     string
	Homepage string
	Notes    string
}

// UpdateInput represents the input parameters for updating an existing roaster.
// Nil fields are left unchanged; at least one must be set.
type UpdateInput struct {
	ID       int64
	Name     *string
	Country  *string
	City     *string
	Homepage *string
	Notes    *string
}

func (in UpdateInput) empty() bool {
	return in.Name == nil && in.Country == nil && in.City == nil && in.Homepage == nil && in.Notes == nil
}

// Service provides roaster management use cases.
// Roasts is only consulted to guard deletes.
type Service struct {
	Roasters repository.RoasterRepository
	Roasts   repository.RoastRepository
}

// List returns one page of roasters matching search ("" matches all).
func (s *Service) List(ctx context.Context, req pagination.ListRequest[entity.RoasterSortKey], search string) (pagination.Page[entity.Roaster], error) {
	page, err := s.Roasters.List(ctx, req, strings.TrimSpace(search))
	if err != nil {
		return pagination.Page[entity.Roaster]{}, fmt.Errorf("list roasters: %w", err)
	}
	return page, nil
}

// All returns every roaster ordered by name, for option lists.
func (s *Service) All(ctx context.Context) ([]entity.Roaster, error) {
	req := pagination.NewListRequest(1, pagination.AllItems(), entity.RoasterSortName, pagination.SortAsc)
	page, err := s.List(ctx, req, "")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Get returns the roaster with id.
// Returns ErrRoasterNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Roaster, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "id must be positive"}
	}
	r, err := s.Roasters.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get roaster: %w", err)
	}
	if r == nil {
		return nil, ErrRoasterNotFound
	}
	return r, nil
}

// RoastCount returns how many roasts reference the roaster.
func (s *Service) RoastCount(ctx context.Context, id int64) (int64, error) {
	n, err := s.Roasts.CountByRoaster(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count roasts: %w", err)
	}
	return n, nil
}

// Create validates and stores a new roaster.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Roaster, error) {
	r := &entity.Roaster{
		Name:     in.Name,
		Country:  in.Country,
		City:     in.City,
		Homepage: in.Homepage,
		Notes:    in.Notes,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.Roasters.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create roaster: %w", err)
	}
	return r, nil
}

// Update applies the set fields of in to an existing roaster.
// Returns ErrNoChanges when no field is set and ErrRoasterNotFound when the
// roaster does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Roaster, error) {
	if in.empty() {
		return nil, ErrNoChanges
	}
	r, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Country != nil {
		r.Country = *in.Country
	}
	if in.City != nil {
		r.City = *in.City
	}
	if in.Homepage != nil {
		r.Homepage = *in.Homepage
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.Roasters.Update(ctx, r); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrRoasterNotFound
		}
		return nil, fmt.Errorf("update roaster: %w", err)
	}
	return r, nil
}

// Delete removes a roaster that has no roasts.
// Returns ErrRoasterInUse when roasts still reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "id must be positive"}
	}
	n, err := s.Roasts.CountByRoaster(ctx, id)
	if err != nil {
		return fmt.Errorf("count roasts: %w", err)
	}
	if n > 0 {
		return ErrRoasterInUse
	}
	if err := s.Roasters.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrRoasterNotFound
		}
		return fmt.Errorf("delete roaster: %w", err)
	}
	return nil
}
