package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(pgxLikeConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB, classifier ErrorClassificator) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}
}

// pgxLikeConverter lets slices through the way the pgx stdlib driver does,
// so ANY($n) arguments reach the mock unchanged.
type pgxLikeConverter struct{}

func (pgxLikeConverter) ConvertValue(v any) (driver.Value, error) {
	if converted, err := driver.DefaultParameterConverter.ConvertValue(v); err == nil {
		return converted, nil
	}
	return v, nil
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}
