package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/repository"
)

const roastColumns = `r.id, r.roaster_id, r.name, r.origin, r.process, r.tasting_notes, r.created_at, ro.name`

type RoastRepo struct{ db *sql.DB }

func NewRoastRepo(db *sql.DB) repository.RoastRepository {
	return &RoastRepo{db: db}
}

func scanRoast(scan func(dest ...any) error, r *entity.RoastWithRoaster) error {
	return scan(&r.ID, &r.RoasterID, &r.Name, &r.Origin, &r.Process,
		&r.TastingNotes, &r.CreatedAt, &r.RoasterName)
}

func (repo *RoastRepo) Get(ctx context.Context, id int64) (*entity.RoastWithRoaster, error) {
	const query = `
SELECT ` + roastColumns + `
FROM roasts r
JOIN roasters ro ON ro.id = r.roaster_id
WHERE r.id = $1
LIMIT 1`
	var roast entity.RoastWithRoaster
	err := scanRoast(repo.db.QueryRowContext(ctx, query, id).Scan, &roast)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &roast, nil
}

func roastOrder(key entity.RoastSortKey) string {
	switch key {
	case entity.RoastSortName:
		return "LOWER(r.name)"
	case entity.RoastSortRoaster:
		return "LOWER(ro.name)"
	default:
		return "r.created_at"
	}
}

func (repo *RoastRepo) List(ctx context.Context, filter repository.RoastFilter, req pagination.ListRequest[entity.RoastSortKey], search string) (pagination.Page[entity.RoastWithRoaster], error) {
	var where whereBuilder
	if filter.RoasterID > 0 {
		where.equal("r.roaster_id", filter.RoasterID)
	}
	where.search(search, "r.name", "r.origin", "ro.name")

	const from = `
FROM roasts r
JOIN roasters ro ON ro.id = r.roaster_id`

	var total uint64
	countQuery := `SELECT COUNT(*)` + from + "\n" + where.clause()
	if err := repo.db.QueryRowContext(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return pagination.Page[entity.RoastWithRoaster]{}, fmt.Errorf("List: count: %w", err)
	}

	req = req.EnsurePageWithin(total)
	limit, args := limitClause(&where, req)
	query := fmt.Sprintf(`
SELECT %s%s
%s
%s
%s`, roastColumns, from, where.clause(), orderClause(roastOrder(req.SortKey()), "r.id", req.SortDirection()), limit)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return pagination.Page[entity.RoastWithRoaster]{}, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	roasts := make([]entity.RoastWithRoaster, 0, pageCapacity(req.PageSize()))
	for rows.Next() {
		var r entity.RoastWithRoaster
		if err := scanRoast(rows.Scan, &r); err != nil {
			return pagination.Page[entity.RoastWithRoaster]{}, fmt.Errorf("List: Scan: %w", err)
		}
		roasts = append(roasts, r)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[entity.RoastWithRoaster]{}, fmt.Errorf("List: rows.Err: %w", err)
	}

	return pagination.NewPage(roasts, req, total), nil
}

func (repo *RoastRepo) Create(ctx context.Context, roast *entity.Roast) error {
	const query = `
INSERT INTO roasts
(roaster_id, name, origin, process, tasting_notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	if roast.CreatedAt.IsZero() {
		roast.CreatedAt = time.Now().UTC()
	}
	err := repo.db.QueryRowContext(ctx, query,
		roast.RoasterID, roast.Name, roast.Origin,
		roast.Process, roast.TastingNotes, roast.CreatedAt,
	).Scan(&roast.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *RoastRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM roasts WHERE id = $1`

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected("Delete", res)
}

func (repo *RoastRepo) CountByRoaster(ctx context.Context, roasterID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM roasts WHERE roaster_id = $1`
	var n int64
	if err := repo.db.QueryRowContext(ctx, query, roasterID).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountByRoaster: %w", err)
	}
	return n, nil
}
