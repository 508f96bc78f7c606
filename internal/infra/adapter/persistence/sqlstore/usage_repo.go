package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"brewlog/internal/domain/entity"
	"brewlog/internal/repository"
)

type UsageRepo struct{ db *sql.DB }

func NewUsageRepo(db *sql.DB) repository.UsageRepository {
	return &UsageRepo{db: db}
}

func (repo *UsageRepo) Insert(ctx context.Context, usage *entity.ExtractionUsage) error {
	const query = `
INSERT INTO extraction_usage
(provider, success, duration_ms, input_length, recorded_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	err := repo.db.QueryRowContext(ctx, query,
		usage.Provider, usage.Success, usage.Duration.Milliseconds(),
		usage.InputLength, usage.RecordedAt,
	).Scan(&usage.ID)
	if err != nil {
		return fmt.Errorf("Insert: QueryRowContext: %w", err)
	}
	return nil
}
