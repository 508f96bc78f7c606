package sqlstore_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"brewlog/internal/domain/entity"
	"brewlog/internal/infra/adapter/persistence/sqlstore"
)

func TestUsageRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO extraction_usage`)).
		WithArgs("claude", true, int64(1500), 42, at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	usage := &entity.ExtractionUsage{
		Provider: "claude", Success: true, Duration: 1500 * time.Millisecond,
		InputLength: 42, RecordedAt: at,
	}
	if err := sqlstore.NewUsageRepo(db).Insert(context.Background(), usage); err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	if usage.ID != 1 {
		t.Fatalf("ID=%d, want 1", usage.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
