package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// ClientStorages groups the device-side repositories.
type ClientStorages struct {
	// Entities holds the eight synchronized entity kinds.
	Entities LocalEntityRepository
	// Versions holds the per-user sync metadata.
	Versions SyncVersionRepository

	db *DB
}

// NewClientStorages opens the local SQLite database named in cfg, applies
// pending migrations and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Entities: NewLocalEntityRepository(db, logger),
		Versions: NewSyncVersionRepository(db, logger),
		db:       db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
