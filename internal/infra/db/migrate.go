package db

import (
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS roasters (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    country    TEXT NOT NULL DEFAULT '',
    city       TEXT NOT NULL DEFAULT '',
    homepage   TEXT NOT NULL DEFAULT '',
    notes      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS roasts (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    roaster_id    INTEGER NOT NULL REFERENCES roasters(id),
    name          TEXT NOT NULL,
    origin        TEXT NOT NULL DEFAULT '',
    process       TEXT NOT NULL DEFAULT '',
    tasting_notes TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS extraction_usage (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    provider     TEXT NOT NULL,
    success      BOOLEAN NOT NULL,
    duration_ms  INTEGER NOT NULL,
    input_length INTEGER NOT NULL,
    recorded_at  TIMESTAMP NOT NULL
)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS roasters (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    country    TEXT NOT NULL DEFAULT '',
    city       TEXT NOT NULL DEFAULT '',
    homepage   TEXT NOT NULL DEFAULT '',
    notes      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS roasts (
    id            BIGSERIAL PRIMARY KEY,
    roaster_id    BIGINT NOT NULL REFERENCES roasters(id),
    name          TEXT NOT NULL,
    origin        TEXT NOT NULL DEFAULT '',
    process       TEXT NOT NULL DEFAULT '',
    tasting_notes TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS extraction_usage (
    id           BIGSERIAL PRIMARY KEY,
    provider     VARCHAR(20) NOT NULL,
    success      BOOLEAN NOT NULL,
    duration_ms  BIGINT NOT NULL,
    input_length INTEGER NOT NULL,
    recorded_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
}

// Shared by both dialects.
var indexes = []string{
	// ロースター別の一覧・削除前の件数確認用
	`CREATE INDEX IF NOT EXISTS idx_roasts_roaster_id ON roasts(roaster_id)`,
	// created-at ソート用
	`CREATE INDEX IF NOT EXISTS idx_roasts_created_at ON roasts(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_roasters_created_at ON roasters(created_at)`,
}

// MigrateUp creates the schema for driver. It is idempotent.
func MigrateUp(db *sql.DB, driver Driver) error {
	schema := sqliteSchema
	if driver == DriverPostgres {
		schema = postgresSchema
	}

	for _, stmt := range append(append([]string(nil), schema...), indexes...) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
	}
	return nil
}

// MigrateDown drops every table in reverse order of creation.
// Use with caution: this will delete all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS extraction_usage`,
		`DROP TABLE IF EXISTS roasts`,
		`DROP TABLE IF EXISTS roasters`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	return nil
}
