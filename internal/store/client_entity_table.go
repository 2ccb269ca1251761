package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// sqlite uses "?" placeholders, which is also the squirrel default
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// entityTable maps one entity kind onto its SQLite table. Every table is
// keyed by user_id plus keyColumns.
type entityTable[T any] struct {
	name         string
	keyColumns   []string
	valueColumns []string
	// values returns key column values followed by value column values.
	values func(T) []any
	scan   func(sq.RowScanner) (T, error)
}

func (t entityTable[T]) columns() []string {
	return append(append([]string{}, t.keyColumns...), t.valueColumns...)
}

func (t entityTable[T]) selectQuery(userID int64) sq.SelectBuilder {
	return sqlite.Select(t.columns()...).
		From(t.name).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(t.keyColumns...)
}

func (t entityTable[T]) insertQuery(userID int64, entity T) sq.InsertBuilder {
	return sqlite.Insert(t.name).
		Columns(append([]string{"user_id"}, t.columns()...)...).
		Values(append([]any{userID}, t.values(entity)...)...)
}

// upsertQuery overwrites value columns of an existing row with the supplied
// values.
func (t entityTable[T]) upsertQuery(userID int64, entity T) sq.InsertBuilder {
	set := make([]string, 0, len(t.valueColumns))
	for _, col := range t.valueColumns {
		set = append(set, fmt.Sprintf("%s = excluded.%s", col, col))
	}

	conflict := append([]string{"user_id"}, t.keyColumns...)

	return t.insertQuery(userID, entity).Suffix(fmt.Sprintf(
		"ON CONFLICT (%s) DO UPDATE SET %s",
		strings.Join(conflict, ", "),
		strings.Join(set, ", "),
	))
}

func listEntities[T any](ctx context.Context, db *DB, t entityTable[T], userID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.selectQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "listEntities").
			Str("table", t.name).
			Int64("user_id", userID).
			Msg("failed to query entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		entity, err := t.scan(rows)
		if err != nil {
			log.Err(err).
				Str("func", "listEntities").
				Str("table", t.name).
				Int64("user_id", userID).
				Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

func getEntity[T any](ctx context.Context, db *DB, t entityTable[T], userID int64, key sq.Eq) (T, error) {
	var zero T

	query, args, err := t.selectQuery(userID).Where(key).Limit(1).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := t.scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrEntityNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "getEntity").
			Str("table", t.name).
			Int64("user_id", userID).
			Msg("failed to get entity")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

func execInsert(ctx context.Context, db *DB, table string, userID int64, builder sq.InsertBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "execInsert").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to write entity")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func upsertEntity[T any](ctx context.Context, db *DB, t entityTable[T], userID int64, entity T) error {
	_, err := execInsert(ctx, db, t.name, userID, t.upsertQuery(userID, entity))
	return err
}

// insertEntityIfAbsent writes the entity only when no row with its key exists.
func insertEntityIfAbsent[T any](ctx context.Context, db *DB, t entityTable[T], userID int64, entity T) (bool, error) {
	affected, err := execInsert(ctx, db, t.name, userID, t.insertQuery(userID, entity).Options("OR IGNORE"))
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
