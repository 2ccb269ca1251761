// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/merger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

type syncService struct {
	repository store.SyncRepository
	locks      *userLocks
	deviceIDs  *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewSyncService(repository store.SyncRepository, logger *logger.Logger) SyncService {
	return &syncService{
		repository: repository,
		locks:      newUserLocks(),
		deviceIDs:  utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *syncService) RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error) {
	log := logger.FromContext(ctx)

	device := models.Device{
		ID:        s.deviceIDs.Generate(),
		UserID:    userID,
		Info:      info,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repository.SaveDevice(ctx, device); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("saving device failed")
		return "", fmt.Errorf("save device: %w", err)
	}

	log.Info().
		Int64("user_id", userID).
		Str("device_id", device.ID).
		Str("platform", info.Platform).
		Msg("device registered")

	return device.ID, nil
}

// Push merges every pushed entity (device value as local side) against the
// stored one (remote side), commits the rows whose merged value differs from
// what was stored and reports as merged_back the rows whose merged value
// differs from what was pushed.
func (s *syncService) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.lock(req.UserID)
	defer unlock()

	var (
		changed []models.StoredEntity
		back    models.ChangedDataSet
		kind    []models.StoredEntity
		err     error
	)

	if kind, back.SrsCards, err = mergePushed(ctx, s.repository, req.UserID, models.KindSrsCard,
		req.Data.SrsCards, models.SrsCard.Key, merger.MergeSrsCard); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.VocabSrsCards, err = mergePushed(ctx, s.repository, req.UserID, models.KindVocabSrsCard,
		req.Data.VocabSrsCards, models.VocabSrsCard.Key, merger.MergeVocabSrsCard); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.UserProfile, err = mergePushed(ctx, s.repository, req.UserID, models.KindUserProfile,
		req.Data.UserProfile, models.UserProfile.Key, merger.MergeUserProfile); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.StudySessions, err = mergePushed(ctx, s.repository, req.UserID, models.KindStudySession,
		req.Data.StudySessions, models.StudySession.Key, keepStored[models.StudySession]); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.DailyStats, err = mergePushed(ctx, s.repository, req.UserID, models.KindDailyStats,
		req.Data.DailyStats, models.DailyStats.Key, merger.MergeDailyStats); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.Achievements, err = mergePushed(ctx, s.repository, req.UserID, models.KindAchievement,
		req.Data.Achievements, models.Achievement.Key, merger.MergeAchievement); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.ModeStats, err = mergePushed(ctx, s.repository, req.UserID, models.KindModeStat,
		req.Data.ModeStats, models.ModeStat.Key, merger.MergeModeStat); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	if kind, back.CollectionItems, err = mergePushed(ctx, s.repository, req.UserID, models.KindCollectionItem,
		req.Data.CollectionItems, models.CollectionItem.Key, merger.MergeCollectionItem); err != nil {
		return models.PushResult{}, err
	}
	changed = append(changed, kind...)

	version, err := s.repository.CommitEntities(ctx, req.UserID, changed)
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Int("changed", len(changed)).Msg("commit of pushed entities failed")
		return models.PushResult{}, fmt.Errorf("commit pushed entities: %w", err)
	}

	log.Info().
		Int64("user_id", req.UserID).
		Str("device_id", req.DeviceID).
		Int64("client_version", req.ClientVersion).
		Int("pushed", req.Data.Len()).
		Int("changed", len(changed)).
		Int("merged_back", back.Len()).
		Int64("new_version", version).
		Msg("push merged")

	return models.PushResult{NewVersion: version, MergedBack: back}, nil
}

func (s *syncService) Pull(ctx context.Context, userID int64, sinceVersion int64) (models.PullDelta, error) {
	entities, version, err := s.repository.GetEntitiesSince(ctx, userID, sinceVersion)
	if err != nil {
		return models.PullDelta{}, fmt.Errorf("get entities since %d: %w", sinceVersion, err)
	}

	data, err := decodeEntities(entities)
	if err != nil {
		return models.PullDelta{}, err
	}

	return models.PullDelta{Data: data, ServerVersion: version}, nil
}

func (s *syncService) FullPull(ctx context.Context, userID int64) (models.PullDelta, error) {
	return s.Pull(ctx, userID, 0)
}

// userLocks serializes work per user id.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *userLocks) lock(userID int64) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
