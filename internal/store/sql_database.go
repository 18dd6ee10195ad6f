package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/migrations"
)

// DB is a migrated SQLite connection pool.
type DB struct {
	*sql.DB
	path   string
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Path is the database file the pool was opened on; empty for pools created
// in tests.
func (db *DB) Path() string {
	return db.path
}

// SQLite accepts the default "?" placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
