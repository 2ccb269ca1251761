package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/jackc/pgerrcode"
)

// commitAttempts bounds how often a commit is retried after a retryable
// PostgreSQL error (serialization failure, deadlock, lost connection).
const commitAttempts = 3

// syncRepository is the PostgreSQL-backed [SyncRepository].
type syncRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository].
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	logger.Debug().Msg("creating sync repository")
	return &syncRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncRepository) SaveDevice(ctx context.Context, device models.Device) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, saveDevice,
		device.ID,
		device.UserID,
		device.Info.Name,
		device.Info.Platform,
		device.Info.AppVersion,
		device.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*syncRepository.SaveDevice").
			Int64("user_id", device.UserID).
			Str("device_id", device.ID).
			Msg("failed to insert device")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: duplicate device id", ErrDeviceNotSaved)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrDeviceNotSaved
	}

	return nil
}

func (r *syncRepository) GetEntities(ctx context.Context, userID int64, kind models.EntityKind, keys []string) (map[string]models.StoredEntity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityKind, kind)
	}

	rows, err := r.db.QueryContext(ctx, getEntitiesByKeys, userID, string(kind), keys)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncRepository.GetEntities").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Msg("failed to query stored entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make(map[string]models.StoredEntity, len(keys))
	for rows.Next() {
		var (
			entity  = models.StoredEntity{Kind: kind}
			payload []byte
		)
		if err := rows.Scan(&entity.Key, &payload, &entity.Version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entity.Payload = payload
		entities[entity.Key] = entity
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

func (r *syncRepository) CommitEntities(ctx context.Context, userID int64, entities []models.StoredEntity) (int64, error) {
	log := logger.FromContext(ctx)

	var (
		version int64
		err     error
	)
	for attempt := 1; attempt <= commitAttempts; attempt++ {
		version, err = r.commitEntities(ctx, userID, entities)
		if err == nil || r.db.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "*syncRepository.CommitEntities").
			Int64("user_id", userID).
			Int("attempt", attempt).
			Msg("retryable error committing entities")

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}

	return version, err
}

func (r *syncRepository) commitEntities(ctx context.Context, userID int64, entities []models.StoredEntity) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, ensureServerVersion, userID); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var current int64
	if err = tx.QueryRowContext(ctx, lockServerVersion, userID).Scan(&current); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(entities) == 0 {
		if err = tx.Commit(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return current, nil
	}

	next := current + 1
	for _, entity := range entities {
		if !entity.Kind.Valid() {
			return 0, fmt.Errorf("%w: %s", ErrUnknownEntityKind, entity.Kind)
		}

		_, err = tx.ExecContext(ctx, upsertStoredEntity, userID, string(entity.Kind), entity.Key, []byte(entity.Payload), next)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*syncRepository.commitEntities").
				Int64("user_id", userID).
				Str("kind", string(entity.Kind)).
				Str("key", entity.Key).
				Msg("failed to upsert entity")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err = tx.ExecContext(ctx, setServerVersion, userID, next); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return next, nil
}

func (r *syncRepository) GetEntitiesSince(ctx context.Context, userID int64, sinceVersion int64) ([]models.StoredEntity, int64, error) {
	// one snapshot for both reads so the version matches the rows
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var serverVersion int64
	if err = tx.QueryRowContext(ctx, getServerVersion, userID).Scan(&serverVersion); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rows, err := tx.QueryContext(ctx, getEntitiesSince, userID, sinceVersion)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncRepository.GetEntitiesSince").
			Int64("user_id", userID).
			Int64("since_version", sinceVersion).
			Msg("failed to query changed entities")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.StoredEntity, 0)
	for rows.Next() {
		var (
			entity  models.StoredEntity
			kind    string
			payload []byte
		)
		if err := rows.Scan(&kind, &entity.Key, &payload, &entity.Version); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entity.Kind = models.EntityKind(kind)
		entity.Payload = payload
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return entities, serverVersion, nil
}
