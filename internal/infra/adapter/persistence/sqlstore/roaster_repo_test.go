package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/infra/adapter/persistence/sqlstore"
)

/* ──────────────────────────────── ヘルパ ──────────────────────────────── */

var roasterCols = []string{"id", "name", "country", "city", "homepage", "notes", "created_at"}

func roasterRows(roasters ...entity.Roaster) *sqlmock.Rows {
	rows := sqlmock.NewRows(roasterCols)
	for _, r := range roasters {
		rows.AddRow(r.ID, r.Name, r.Country, r.City, r.Homepage, r.Notes, r.CreatedAt)
	}
	return rows
}

func countRow(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

/* ──────────────────────────────── 1. Get ──────────────────────────────── */

func TestRoasterRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Roaster{
		ID: 1, Name: "Onyx", Country: "USA", City: "Rogers",
		Homepage: "https://onyxcoffeelab.com", CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM roasters`)).
		WithArgs(int64(1)).
		WillReturnRows(roasterRows(*want))

	repo := sqlstore.NewRoasterRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRoasterRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM roasters`)).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	got, err := sqlstore.NewRoasterRepo(db).Get(context.Background(), 9)
	if err != nil || got != nil {
		t.Fatalf("Get got=%v err=%v, want nil, nil", got, err)
	}
}

/* ──────────────────────────────── 2. List ──────────────────────────────── */

func TestRoasterRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM roasters`)).
		WillReturnRows(countRow(25))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY LOWER(name) ASC, id ASC`)).
		WithArgs(int64(10), int64(10)).
		WillReturnRows(roasterRows(entity.Roaster{ID: 11, Name: "Kochere"}))

	req := pagination.NewListRequest(2, pagination.Limited(10), entity.RoasterSortName, pagination.SortAsc)
	page, err := sqlstore.NewRoasterRepo(db).List(context.Background(), req, "")
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if page.Page != 2 || page.Total != 25 || page.PageSize != 10 || len(page.Items) != 1 {
		t.Fatalf("unexpected page %+v", page.Window)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRoasterRepo_List_ClampsPage(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM roasters`)).
		WillReturnRows(countRow(95))
	// page 99 of 10 pages is served as page 10 (offset 90)
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
		WithArgs(int64(10), int64(90)).
		WillReturnRows(roasterRows())

	req := pagination.NewListRequest(99, pagination.Limited(10), entity.RoasterSortName, pagination.SortAsc)
	page, err := sqlstore.NewRoasterRepo(db).List(context.Background(), req, "")
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if page.Page != 10 {
		t.Fatalf("Page=%d, want 10", page.Page)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRoasterRepo_List_SearchAndAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`LOWER(name) LIKE $1 ESCAPE '\' OR LOWER(country) LIKE $1`)).
		WithArgs("%kenya%").
		WillReturnRows(countRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC`)).
		WithArgs("%kenya%").
		WillReturnRows(roasterRows(
			entity.Roaster{ID: 2, Name: "B", Country: "Kenya"},
			entity.Roaster{ID: 1, Name: "A", Country: "Kenya"},
		))

	req := pagination.NewListRequest(4, pagination.AllItems(), entity.RoasterSortCreatedAt, pagination.SortDesc)
	page, err := sqlstore.NewRoasterRepo(db).List(context.Background(), req, "Kenya")
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if !page.ShowingAll || page.Page != 1 || page.PageSize != 2 {
		t.Fatalf("unexpected page %+v", page.Window)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRoasterRepo_List_CountError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`COUNT`).WillReturnError(sql.ErrConnDone)

	_, err := sqlstore.NewRoasterRepo(db).List(context.Background(), pagination.DefaultListRequest[entity.RoasterSortKey](), "")
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("err=%v, want ErrConnDone", err)
	}
}

/* ──────────────────────────────── 3. Create ──────────────────────────────── */

func TestRoasterRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO roasters`)).
		WithArgs("Onyx", "USA", "Rogers", "", "", created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	r := &entity.Roaster{Name: "Onyx", Country: "USA", City: "Rogers", CreatedAt: created}
	if err := sqlstore.NewRoasterRepo(db).Create(context.Background(), r); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if r.ID != 7 {
		t.Fatalf("ID=%d, want 7", r.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 4. Update ──────────────────────────────── */

func TestRoasterRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE roasters SET`)).
		WithArgs("Onyx", "USA", "Bentonville", "", "", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := sqlstore.NewRoasterRepo(db).Update(context.Background(), &entity.Roaster{
		ID: 7, Name: "Onyx", Country: "USA", City: "Bentonville",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRoasterRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE roasters SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := sqlstore.NewRoasterRepo(db).Update(context.Background(), &entity.Roaster{ID: 7, Name: "x"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

/* ──────────────────────────────── 5. Delete ──────────────────────────────── */

func TestRoasterRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM roasters WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := sqlstore.NewRoasterRepo(db).Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
