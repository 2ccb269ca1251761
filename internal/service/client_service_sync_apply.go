package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/merger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
)

// collect reads every locally known entity of the user.
func (s *clientSyncService) collect(ctx context.Context, userID int64) (models.ChangedDataSet, error) {
	var (
		data models.ChangedDataSet
		err  error
	)

	if data.SrsCards, err = s.entities.ListSrsCards(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindSrsCard, err)
	}
	if data.VocabSrsCards, err = s.entities.ListVocabSrsCards(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindVocabSrsCard, err)
	}

	profile, err := s.entities.GetUserProfile(ctx, userID)
	switch {
	case errors.Is(err, store.ErrEntityNotFound):
	case err != nil:
		return data, fmt.Errorf("get %s: %w", models.KindUserProfile, err)
	default:
		data.UserProfile = []models.UserProfile{profile}
	}

	if data.StudySessions, err = s.entities.ListStudySessions(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindStudySession, err)
	}
	if data.DailyStats, err = s.entities.ListDailyStats(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindDailyStats, err)
	}
	if data.Achievements, err = s.entities.ListAchievements(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindAchievement, err)
	}
	if data.ModeStats, err = s.entities.ListModeStats(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindModeStat, err)
	}
	if data.CollectionItems, err = s.entities.ListCollectionItems(ctx, userID); err != nil {
		return data, fmt.Errorf("list %s: %w", models.KindCollectionItem, err)
	}

	return data, nil
}

// apply merges remote entities into the local store. A remote entity without
// a local counterpart is stored as it is. Study sessions are append-only.
func (s *clientSyncService) apply(ctx context.Context, userID int64, data models.ChangedDataSet) error {
	repo := s.entities

	err := mergeInto(data.SrsCards,
		func(c models.SrsCard) (models.SrsCard, error) { return repo.GetSrsCard(ctx, userID, c.ItemID) },
		merger.MergeSrsCard,
		func(c models.SrsCard) error { return repo.UpsertSrsCard(ctx, userID, c) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindSrsCard, err)
	}

	err = mergeInto(data.VocabSrsCards,
		func(c models.VocabSrsCard) (models.VocabSrsCard, error) {
			return repo.GetVocabSrsCard(ctx, userID, c.VocabID)
		},
		merger.MergeVocabSrsCard,
		func(c models.VocabSrsCard) error { return repo.UpsertVocabSrsCard(ctx, userID, c) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindVocabSrsCard, err)
	}

	err = mergeInto(data.UserProfile,
		func(models.UserProfile) (models.UserProfile, error) { return repo.GetUserProfile(ctx, userID) },
		merger.MergeUserProfile,
		func(p models.UserProfile) error { return repo.UpsertUserProfile(ctx, userID, p) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindUserProfile, err)
	}

	for _, session := range data.StudySessions {
		if _, err = repo.InsertStudySession(ctx, userID, session); err != nil {
			return fmt.Errorf("%s: %w", models.KindStudySession, err)
		}
	}

	err = mergeInto(data.DailyStats,
		func(d models.DailyStats) (models.DailyStats, error) { return repo.GetDailyStats(ctx, userID, d.Date) },
		merger.MergeDailyStats,
		func(d models.DailyStats) error { return repo.UpsertDailyStats(ctx, userID, d) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindDailyStats, err)
	}

	err = mergeInto(data.Achievements,
		func(a models.Achievement) (models.Achievement, error) { return repo.GetAchievement(ctx, userID, a.ID) },
		merger.MergeAchievement,
		func(a models.Achievement) error { return repo.UpsertAchievement(ctx, userID, a) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindAchievement, err)
	}

	// mode stats are overwritten with the merged value, never incremented
	err = mergeInto(data.ModeStats,
		func(m models.ModeStat) (models.ModeStat, error) {
			return repo.GetModeStat(ctx, userID, m.ItemID, m.GameMode)
		},
		merger.MergeModeStat,
		func(m models.ModeStat) error { return repo.UpsertModeStat(ctx, userID, m) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindModeStat, err)
	}

	err = mergeInto(data.CollectionItems,
		func(c models.CollectionItem) (models.CollectionItem, error) {
			return repo.GetCollectionItem(ctx, userID, c.ItemID, c.ItemType)
		},
		merger.MergeCollectionItem,
		func(c models.CollectionItem) error { return repo.UpsertCollectionItem(ctx, userID, c) })
	if err != nil {
		return fmt.Errorf("%s: %w", models.KindCollectionItem, err)
	}

	return nil
}

// mergeInto merges each remote item with its local counterpart (local side
// first) and writes the result.
func mergeInto[T any](remotes []T, get func(T) (T, error), merge func(local, remote T) T, upsert func(T) error) error {
	for _, remote := range remotes {
		value := remote

		local, err := get(remote)
		switch {
		case errors.Is(err, store.ErrEntityNotFound):
		case err != nil:
			return err
		default:
			value = merge(local, remote)
		}

		if err = upsert(value); err != nil {
			return err
		}
	}

	return nil
}
