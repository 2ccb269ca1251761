package store

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalEntityRepository is the device-side store of the eight synchronized
// entity kinds. Every method is scoped to one user. Get methods return
// [ErrEntityNotFound] when no row matches. Upserts write the supplied values
// as they are.
type LocalEntityRepository interface {
	ListSrsCards(ctx context.Context, userID int64) ([]models.SrsCard, error)
	GetSrsCard(ctx context.Context, userID int64, itemID int) (models.SrsCard, error)
	UpsertSrsCard(ctx context.Context, userID int64, card models.SrsCard) error

	ListVocabSrsCards(ctx context.Context, userID int64) ([]models.VocabSrsCard, error)
	GetVocabSrsCard(ctx context.Context, userID int64, vocabID int64) (models.VocabSrsCard, error)
	UpsertVocabSrsCard(ctx context.Context, userID int64, card models.VocabSrsCard) error

	GetUserProfile(ctx context.Context, userID int64) (models.UserProfile, error)
	UpsertUserProfile(ctx context.Context, userID int64, profile models.UserProfile) error

	ListStudySessions(ctx context.Context, userID int64) ([]models.StudySession, error)
	// InsertStudySession stores the session unless one with the same key
	// exists and reports whether a row was written.
	InsertStudySession(ctx context.Context, userID int64, session models.StudySession) (bool, error)

	ListDailyStats(ctx context.Context, userID int64) ([]models.DailyStats, error)
	GetDailyStats(ctx context.Context, userID int64, date string) (models.DailyStats, error)
	UpsertDailyStats(ctx context.Context, userID int64, stats models.DailyStats) error

	ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error)
	GetAchievement(ctx context.Context, userID int64, id string) (models.Achievement, error)
	UpsertAchievement(ctx context.Context, userID int64, achievement models.Achievement) error

	ListModeStats(ctx context.Context, userID int64) ([]models.ModeStat, error)
	GetModeStat(ctx context.Context, userID int64, itemID int, gameMode string) (models.ModeStat, error)
	UpsertModeStat(ctx context.Context, userID int64, stat models.ModeStat) error

	ListCollectionItems(ctx context.Context, userID int64) ([]models.CollectionItem, error)
	GetCollectionItem(ctx context.Context, userID int64, itemID int, itemType string) (models.CollectionItem, error)
	UpsertCollectionItem(ctx context.Context, userID int64, item models.CollectionItem) error
}

// SyncVersionRepository persists the per-user sync metadata of the device.
type SyncVersionRepository interface {
	// GetByUserID returns [ErrSyncVersionNotFound] when the user has no row.
	GetByUserID(ctx context.Context, userID int64) (models.SyncVersion, error)
	Upsert(ctx context.Context, version models.SyncVersion) error
	// UpdateDeviceID stores deviceID, creating the row when missing.
	UpdateDeviceID(ctx context.Context, deviceID string, userID int64) error
	// UpdateAfterPush records pushedAt as the last push time and raises the
	// watermark to newVersion; it never lowers it.
	UpdateAfterPush(ctx context.Context, newVersion int64, pushedAt int64, userID int64) error
}
