package repository

import (
	"context"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
)

// RoastFilter narrows a roast listing. Zero values match everything.
type RoastFilter struct {
	RoasterID int64
}

// RoastRepository persists roasts. Get returns (nil, nil) when the roast
// does not exist.
type RoastRepository interface {
	Get(ctx context.Context, id int64) (*entity.RoastWithRoaster, error)
	List(ctx context.Context, filter RoastFilter, req pagination.ListRequest[entity.RoastSortKey], search string) (pagination.Page[entity.RoastWithRoaster], error)
	Create(ctx context.Context, roast *entity.Roast) error
	Delete(ctx context.Context, id int64) error
	CountByRoaster(ctx context.Context, roasterID int64) (int64, error)
}
