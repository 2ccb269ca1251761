package store

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncRepository is the backend store of synchronized entities, device
// registrations and per-user server versions.
type SyncRepository interface {
	SaveDevice(ctx context.Context, device models.Device) error
	// GetEntities returns the stored entities of one kind with the given
	// keys, indexed by key. Missing keys are simply absent.
	GetEntities(ctx context.Context, userID int64, kind models.EntityKind, keys []string) (map[string]models.StoredEntity, error)
	// CommitEntities stores entities under a freshly incremented server
	// version and returns it. With no entities it returns the current
	// version without bumping it.
	CommitEntities(ctx context.Context, userID int64, entities []models.StoredEntity) (int64, error)
	// GetEntitiesSince returns every entity changed after sinceVersion and
	// the current server version.
	GetEntitiesSince(ctx context.Context, userID int64, sinceVersion int64) ([]models.StoredEntity, int64, error)
}
