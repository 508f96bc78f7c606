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

const roasterColumns = `id, name, country, city, homepage, notes, created_at`

type RoasterRepo struct{ db *sql.DB }

func NewRoasterRepo(db *sql.DB) repository.RoasterRepository {
	return &RoasterRepo{db: db}
}

func (repo *RoasterRepo) Get(ctx context.Context, id int64) (*entity.Roaster, error) {
	const query = `
SELECT ` + roasterColumns + `
FROM roasters
WHERE id = $1
LIMIT 1`
	var roaster entity.Roaster
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&roaster.ID, &roaster.Name, &roaster.Country, &roaster.City,
		&roaster.Homepage, &roaster.Notes, &roaster.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &roaster, nil
}

// roasterOrder maps a sort key to its ORDER BY expression.
func roasterOrder(key entity.RoasterSortKey) string {
	switch key {
	case entity.RoasterSortCountry:
		return "LOWER(country)"
	case entity.RoasterSortCreatedAt:
		return "created_at"
	default:
		return "LOWER(name)"
	}
}

func (repo *RoasterRepo) List(ctx context.Context, req pagination.ListRequest[entity.RoasterSortKey], search string) (pagination.Page[entity.Roaster], error) {
	var where whereBuilder
	where.search(search, "name", "country", "city")

	var total uint64
	countQuery := `SELECT COUNT(*) FROM roasters ` + where.clause()
	if err := repo.db.QueryRowContext(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return pagination.Page[entity.Roaster]{}, fmt.Errorf("List: count: %w", err)
	}

	req = req.EnsurePageWithin(total)
	limit, args := limitClause(&where, req)
	query := fmt.Sprintf(`
SELECT %s
FROM roasters
%s
%s
%s`, roasterColumns, where.clause(), orderClause(roasterOrder(req.SortKey()), "id", req.SortDirection()), limit)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return pagination.Page[entity.Roaster]{}, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	roasters := make([]entity.Roaster, 0, pageCapacity(req.PageSize()))
	for rows.Next() {
		var r entity.Roaster
		if err := rows.Scan(&r.ID, &r.Name, &r.Country, &r.City,
			&r.Homepage, &r.Notes, &r.CreatedAt); err != nil {
			return pagination.Page[entity.Roaster]{}, fmt.Errorf("List: Scan: %w", err)
		}
		roasters = append(roasters, r)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[entity.Roaster]{}, fmt.Errorf("List: rows.Err: %w", err)
	}

	return pagination.NewPage(roasters, req, total), nil
}

func (repo *RoasterRepo) Create(ctx context.Context, roaster *entity.Roaster) error {
	const query = `
INSERT INTO roasters
(name, country, city, homepage, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	if roaster.CreatedAt.IsZero() {
		roaster.CreatedAt = time.Now().UTC()
	}
	err := repo.db.QueryRowContext(ctx, query,
		roaster.Name, roaster.Country, roaster.City,
		roaster.Homepage, roaster.Notes, roaster.CreatedAt,
	).Scan(&roaster.ID)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *RoasterRepo) Update(ctx context.Context, roaster *entity.Roaster) error {
	const query = `
UPDATE roasters SET
    name     = $1,
    country  = $2,
    city     = $3,
    homepage = $4,
    notes    = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		roaster.Name, roaster.Country, roaster.City,
		roaster.Homepage, roaster.Notes, roaster.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	return requireAffected("Update", res)
}

func (repo *RoasterRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM roasters WHERE id = $1`

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected("Delete", res)
}

// requireAffected turns an update that touched no rows into ErrNotFound.
func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, entity.ErrNotFound)
	}
	return nil
}

// pageCapacity is the slice capacity to preallocate for one page.
func pageCapacity(size pagination.PageSize) int {
	if n, ok := size.Limit(); ok {
		return int(n)
	}
	return int(pagination.MaxPageSize)
}
