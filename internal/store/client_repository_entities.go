// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// localEntityRepository is the SQLite-backed [LocalEntityRepository].
type localEntityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalEntityRepository constructs a [LocalEntityRepository] on top of an
// open SQLite connection.
func NewLocalEntityRepository(db *DB, logger *logger.Logger) LocalEntityRepository {
	logger.Debug().Msg("creating local entity repository")
	return &localEntityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localEntityRepository) ListSrsCards(ctx context.Context, userID int64) ([]models.SrsCard, error) {
	return listEntities(ctx, r.db, srsCardsTable, userID)
}

func (r *localEntityRepository) GetSrsCard(ctx context.Context, userID int64, itemID int) (models.SrsCard, error) {
	return getEntity(ctx, r.db, srsCardsTable, userID, sq.Eq{"item_id": itemID})
}

func (r *localEntityRepository) UpsertSrsCard(ctx context.Context, userID int64, card models.SrsCard) error {
	return upsertEntity(ctx, r.db, srsCardsTable, userID, card)
}

func (r *localEntityRepository) ListVocabSrsCards(ctx context.Context, userID int64) ([]models.VocabSrsCard, error) {
	return listEntities(ctx, r.db, vocabSrsCardsTable, userID)
}

func (r *localEntityRepository) GetVocabSrsCard(ctx context.Context, userID int64, vocabID int64) (models.VocabSrsCard, error) {
	return getEntity(ctx, r.db, vocabSrsCardsTable, userID, sq.Eq{"vocab_id": vocabID})
}

func (r *localEntityRepository) UpsertVocabSrsCard(ctx context.Context, userID int64, card models.VocabSrsCard) error {
	return upsertEntity(ctx, r.db, vocabSrsCardsTable, userID, card)
}

func (r *localEntityRepository) GetUserProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	return getEntity(ctx, r.db, userProfilesTable, userID, sq.Eq{})
}

func (r *localEntityRepository) UpsertUserProfile(ctx context.Context, userID int64, profile models.UserProfile) error {
	return upsertEntity(ctx, r.db, userProfilesTable, userID, profile)
}

func (r *localEntityRepository) ListStudySessions(ctx context.Context, userID int64) ([]models.StudySession, error) {
	return listEntities(ctx, r.db, studySessionsTable, userID)
}

func (r *localEntityRepository) InsertStudySession(ctx context.Context, userID int64, session models.StudySession) (bool, error) {
	return insertEntityIfAbsent(ctx, r.db, studySessionsTable, userID, session)
}

func (r *localEntityRepository) ListDailyStats(ctx context.Context, userID int64) ([]models.DailyStats, error) {
	return listEntities(ctx, r.db, dailyStatsTable, userID)
}

func (r *localEntityRepository) GetDailyStats(ctx context.Context, userID int64, date string) (models.DailyStats, error) {
	return getEntity(ctx, r.db, dailyStatsTable, userID, sq.Eq{"date": date})
}

func (r *localEntityRepository) UpsertDailyStats(ctx context.Context, userID int64, stats models.DailyStats) error {
	return upsertEntity(ctx, r.db, dailyStatsTable, userID, stats)
}

func (r *localEntityRepository) ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error) {
	return listEntities(ctx, r.db, achievementsTable, userID)
}

func (r *localEntityRepository) GetAchievement(ctx context.Context, userID int64, id string) (models.Achievement, error) {
	return getEntity(ctx, r.db, achievementsTable, userID, sq.Eq{"achievement_id": id})
}

func (r *localEntityRepository) UpsertAchievement(ctx context.Context, userID int64, achievement models.Achievement) error {
	return upsertEntity(ctx, r.db, achievementsTable, userID, achievement)
}

func (r *localEntityRepository) ListModeStats(ctx context.Context, userID int64) ([]models.ModeStat, error) {
	return listEntities(ctx, r.db, modeStatsTable, userID)
}

func (r *localEntityRepository) GetModeStat(ctx context.Context, userID int64, itemID int, gameMode string) (models.ModeStat, error) {
	return getEntity(ctx, r.db, modeStatsTable, userID, sq.Eq{"item_id": itemID, "game_mode": gameMode})
}

// UpsertModeStat stores the counters as given. Callers pass values that were
// already merged; the counters are never added to the stored ones.
func (r *localEntityRepository) UpsertModeStat(ctx context.Context, userID int64, stat models.ModeStat) error {
	return upsertEntity(ctx, r.db, modeStatsTable, userID, stat)
}

func (r *localEntityRepository) ListCollectionItems(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	return listEntities(ctx, r.db, collectionItemsTable, userID)
}

func (r *localEntityRepository) GetCollectionItem(ctx context.Context, userID int64, itemID int, itemType string) (models.CollectionItem, error) {
	return getEntity(ctx, r.db, collectionItemsTable, userID, sq.Eq{"item_id": itemID, "item_type": itemType})
}

func (r *localEntityRepository) UpsertCollectionItem(ctx context.Context, userID int64, item models.CollectionItem) error {
	return upsertEntity(ctx, r.db, collectionItemsTable, userID, item)
}
