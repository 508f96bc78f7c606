package repository

import (
	"context"

	"brewlog/internal/domain/entity"
)

// UsageRepository stores extractor usage events.
type UsageRepository interface {
	Insert(ctx context.Context, usage *entity.ExtractionUsage) error
}
