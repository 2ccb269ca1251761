package store

import (
	"database/sql"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// DB wraps a *sql.DB with the dialect-specific pieces the repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded schema migrations of the connected dialect.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// noRetryClassifier is used for SQLite where every error is final.
type noRetryClassifier struct{}

func (noRetryClassifier) Classify(error) ErrorClassification {
	return NonRetryable
}

