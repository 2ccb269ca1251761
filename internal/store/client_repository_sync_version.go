package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

const syncVersionsTable = "sync_versions"

// syncVersionRepository is the SQLite-backed [SyncVersionRepository].
type syncVersionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncVersionRepository constructs a [SyncVersionRepository].
func NewSyncVersionRepository(db *DB, logger *logger.Logger) SyncVersionRepository {
	logger.Debug().Msg("creating sync version repository")
	return &syncVersionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncVersionRepository) GetByUserID(ctx context.Context, userID int64) (models.SyncVersion, error) {
	query, args, err := sqlite.
		Select("user_id", "server_version", "device_id", "last_push_at", "last_pull_at", "last_full_pull_at").
		From(syncVersionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.SyncVersion{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		version  models.SyncVersion
		deviceID sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&version.UserID,
		&version.ServerVersion,
		&deviceID,
		&version.LastPushAt,
		&version.LastPullAt,
		&version.LastFullPullAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncVersion{}, ErrSyncVersionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncVersionRepository.GetByUserID").
			Int64("user_id", userID).
			Msg("failed to read sync version")
		return models.SyncVersion{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if deviceID.Valid {
		version.DeviceID = &deviceID.String
	}

	return version, nil
}

func (r *syncVersionRepository) Upsert(ctx context.Context, version models.SyncVersion) error {
	var deviceID sql.NullString
	if version.DeviceID != nil {
		deviceID = sql.NullString{String: *version.DeviceID, Valid: true}
	}

	builder := sqlite.Insert(syncVersionsTable).
		Columns("user_id", "server_version", "device_id", "last_push_at", "last_pull_at", "last_full_pull_at").
		Values(version.UserID, version.ServerVersion, deviceID, version.LastPushAt, version.LastPullAt, version.LastFullPullAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			server_version = MAX(sync_versions.server_version, excluded.server_version),
			device_id = COALESCE(excluded.device_id, sync_versions.device_id),
			last_push_at = excluded.last_push_at,
			last_pull_at = excluded.last_pull_at,
			last_full_pull_at = excluded.last_full_pull_at`)

	return r.exec(ctx, "*syncVersionRepository.Upsert", version.UserID, builder)
}

func (r *syncVersionRepository) UpdateDeviceID(ctx context.Context, deviceID string, userID int64) error {
	builder := sqlite.Insert(syncVersionsTable).
		Columns("user_id", "device_id").
		Values(userID, deviceID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET device_id = excluded.device_id")

	return r.exec(ctx, "*syncVersionRepository.UpdateDeviceID", userID, builder)
}

func (r *syncVersionRepository) UpdateAfterPush(ctx context.Context, newVersion int64, pushedAt int64, userID int64) error {
	builder := sqlite.Insert(syncVersionsTable).
		Columns("user_id", "server_version", "last_push_at").
		Values(userID, newVersion, pushedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			server_version = MAX(sync_versions.server_version, excluded.server_version),
			last_push_at = excluded.last_push_at`)

	return r.exec(ctx, "*syncVersionRepository.UpdateAfterPush", userID, builder)
}

func (r *syncVersionRepository) exec(ctx context.Context, fn string, userID int64, builder sq.InsertBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to write sync version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
