package repository

import (
	"context"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
)

// RoasterRepository persists roasters.
//
// Get returns (nil, nil) when the roaster does not exist. List clamps the
// requested page against the matching total before slicing, so the returned
// page always exists.
type RoasterRepository interface {
	Get(ctx context.Context, id int64) (*entity.Roaster, error)
	List(ctx context.Context, req pagination.ListRequest[entity.RoasterSortKey], search string) (pagination.Page[entity.Roaster], error)
	Create(ctx context.Context, roaster *entity.Roaster) error
	Update(ctx context.Context, roaster *entity.Roaster) error
	Delete(ctx context.Context, id int64) error
}
