package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/mock"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(repo store.SyncRepository) *syncService {
	return &syncService{
		repository: repo,
		locks:      newUserLocks(),
		deviceIDs:  utils.NewUUIDGenerator(),
		now:        func() time.Time { return fixedNow },
		logger:     logger.Nop(),
	}
}

func stored(t *testing.T, kind models.EntityKind, key string, value any, version int64) models.StoredEntity {
	t.Helper()
	payload, err := json.Marshal(value)
	require.NoError(t, err)
	return models.StoredEntity{Kind: kind, Key: key, Payload: payload, Version: version}
}

// ── RegisterDevice ───────────────────────────────────────────────────────────

func TestSyncService_RegisterDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	var saved models.Device
	repo.EXPECT().SaveDevice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, device models.Device) error {
			saved = device
			return nil
		})

	svc := newTestSyncService(repo)

	id, err := svc.RegisterDevice(context.Background(), testUserID, testDevice)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr, "device id must be a uuid")
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, testUserID, saved.UserID)
	assert.Equal(t, testDevice, saved.Info)
	assert.Equal(t, fixedNow.UTC(), saved.CreatedAt)
}

func TestSyncService_RegisterDevice_UniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)
	repo.EXPECT().SaveDevice(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := newTestSyncService(repo)

	first, err := svc.RegisterDevice(context.Background(), testUserID, testDevice)
	require.NoError(t, err)
	second, err := svc.RegisterDevice(context.Background(), testUserID, testDevice)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSyncService_RegisterDevice_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)
	repo.EXPECT().SaveDevice(gomock.Any(), gomock.Any()).Return(store.ErrDeviceNotSaved)

	svc := newTestSyncService(repo)

	id, err := svc.RegisterDevice(context.Background(), testUserID, testDevice)
	assert.Empty(t, id)
	assert.ErrorIs(t, err, store.ErrDeviceNotSaved)
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestSyncService_Push_StoresNewAndMergesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	storedStat := models.ModeStat{ItemID: 3, GameMode: "quiz", ReviewCount: 5, CorrectCount: 1}
	pushedStat := models.ModeStat{ItemID: 3, GameMode: "quiz", ReviewCount: 3, CorrectCount: 2}
	mergedStat := models.ModeStat{ItemID: 3, GameMode: "quiz", ReviewCount: 5, CorrectCount: 2}

	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, []string{"1"}).
		Return(map[string]models.StoredEntity{}, nil)
	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindModeStat, []string{"3|quiz"}).
		Return(map[string]models.StoredEntity{
			"3|quiz": stored(t, models.KindModeStat, "3|quiz", storedStat, 2),
		}, nil)
	repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, entities []models.StoredEntity) (int64, error) {
			require.Len(t, entities, 2)
			assert.Equal(t, models.KindSrsCard, entities[0].Kind)
			assert.Equal(t, "1", entities[0].Key)
			assert.Equal(t, models.KindModeStat, entities[1].Kind)

			var got models.ModeStat
			require.NoError(t, json.Unmarshal(entities[1].Payload, &got))
			assert.Equal(t, mergedStat, got)
			return 3, nil
		})

	svc := newTestSyncService(repo)

	result, err := svc.Push(context.Background(), models.PushRequest{
		UserID:        testUserID,
		ClientVersion: 2,
		MergeVersion:  1,
		Data: models.ChangedDataSet{
			SrsCards:  []models.SrsCard{card(1, 2)},
			ModeStats: []models.ModeStat{pushedStat},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.NewVersion)
	assert.Equal(t, []models.ModeStat{mergedStat}, result.MergedBack.ModeStats)
	assert.Empty(t, result.MergedBack.SrsCards, "new entities are stored as pushed")
}

func TestSyncService_Push_UnchangedDoesNotBumpVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, []string{"1"}).
		Return(map[string]models.StoredEntity{
			"1": stored(t, models.KindSrsCard, "1", card(1, 2), 4),
		}, nil)
	repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Len(0)).Return(int64(4), nil)

	svc := newTestSyncService(repo)

	result, err := svc.Push(context.Background(), models.PushRequest{
		UserID:       testUserID,
		MergeVersion: 1,
		Data:         models.ChangedDataSet{SrsCards: []models.SrsCard{card(1, 2)}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), result.NewVersion)
	assert.True(t, result.MergedBack.IsEmpty())
}

func TestSyncService_Push_OlderStateIsMergedBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, []string{"1"}).
		Return(map[string]models.StoredEntity{
			"1": stored(t, models.KindSrsCard, "1", card(1, 6), 4),
		}, nil)
	repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Len(0)).Return(int64(4), nil)

	svc := newTestSyncService(repo)

	result, err := svc.Push(context.Background(), models.PushRequest{
		UserID:       testUserID,
		MergeVersion: 1,
		Data:         models.ChangedDataSet{SrsCards: []models.SrsCard{card(1, 2)}},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.SrsCard{card(1, 6)}, result.MergedBack.SrsCards)
}

func TestSyncService_Push_StoredSessionWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	original := models.StudySession{GameMode: "quiz", StartedAt: 1000, CardsStudied: 10, XPEarned: 50}
	replay := models.StudySession{GameMode: "quiz", StartedAt: 1000, CardsStudied: 12, XPEarned: 70}
	fresh := models.StudySession{GameMode: "match", StartedAt: 2000, CardsStudied: 4}

	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindStudySession, []string{"quiz|1000", "match|2000"}).
		Return(map[string]models.StoredEntity{
			"quiz|1000": stored(t, models.KindStudySession, "quiz|1000", original, 1),
		}, nil)
	repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, entities []models.StoredEntity) (int64, error) {
			require.Len(t, entities, 1)
			assert.Equal(t, "match|2000", entities[0].Key)
			return 2, nil
		})

	svc := newTestSyncService(repo)

	result, err := svc.Push(context.Background(), models.PushRequest{
		UserID:       testUserID,
		MergeVersion: 1,
		Data:         models.ChangedDataSet{StudySessions: []models.StudySession{replay, fresh}},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.StudySession{original}, result.MergedBack.StudySessions)
}

func TestSyncService_Push_RepeatedKeysAreFolded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, []string{"1", "1"}).
		Return(map[string]models.StoredEntity{}, nil)
	repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, entities []models.StoredEntity) (int64, error) {
			require.Len(t, entities, 1)
			var got models.SrsCard
			require.NoError(t, json.Unmarshal(entities[0].Payload, &got))
			assert.Equal(t, card(1, 4), got)
			return 1, nil
		})

	svc := newTestSyncService(repo)

	result, err := svc.Push(context.Background(), models.PushRequest{
		UserID:       testUserID,
		MergeVersion: 1,
		Data:         models.ChangedDataSet{SrsCards: []models.SrsCard{card(1, 4), card(1, 2)}},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.SrsCard{card(1, 4)}, result.MergedBack.SrsCards)
}

func TestSyncService_Push_Errors(t *testing.T) {
	req := models.PushRequest{
		UserID:       testUserID,
		MergeVersion: 1,
		Data:         models.ChangedDataSet{SrsCards: []models.SrsCard{card(1, 2)}},
	}

	t.Run("get entities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSyncRepository(ctrl)
		repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, gomock.Any()).
			Return(nil, store.ErrExecutingQuery)

		_, err := newTestSyncService(repo).Push(context.Background(), req)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSyncRepository(ctrl)
		repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, gomock.Any()).
			Return(map[string]models.StoredEntity{
				"1": {Kind: models.KindSrsCard, Key: "1", Payload: []byte(`{"itemId":`)},
			}, nil)

		_, err := newTestSyncService(repo).Push(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode stored srs_cards")
	})

	t.Run("commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSyncRepository(ctrl)
		repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, gomock.Any()).
			Return(map[string]models.StoredEntity{}, nil)
		repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Any()).
			Return(int64(0), store.ErrCommitingTransaction)

		_, err := newTestSyncService(repo).Push(context.Background(), req)
		assert.ErrorIs(t, err, store.ErrCommitingTransaction)
	})
}

func TestSyncService_Push_SerializedPerUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	var active, maxSeen atomic.Int32
	repo.EXPECT().GetEntities(gomock.Any(), testUserID, models.KindSrsCard, gomock.Any()).
		DoAndReturn(func(context.Context, int64, models.EntityKind, []string) (map[string]models.StoredEntity, error) {
			n := active.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(5 * time.Millisecond)
			return map[string]models.StoredEntity{}, nil
		}).Times(4)
	repo.EXPECT().CommitEntities(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(context.Context, int64, []models.StoredEntity) (int64, error) {
			active.Add(-1)
			return 1, nil
		}).Times(4)

	svc := newTestSyncService(repo)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Push(context.Background(), models.PushRequest{
				UserID:       testUserID,
				MergeVersion: 1,
				Data:         models.ChangedDataSet{SrsCards: []models.SrsCard{card(1, 1)}},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

// ── Pull / FullPull ──────────────────────────────────────────────────────────

func TestSyncService_Pull_DecodesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	unlocked := int64(1234)
	achievement := models.Achievement{ID: "streak_7", Progress: 7, Target: 7, UnlockedAt: &unlocked}
	profile := models.UserProfile{TotalXP: 900, Level: 4, DailyGoal: 20}
	item := models.CollectionItem{ItemID: 5, ItemType: "kanji", Rarity: "rare", ItemLevel: 2}

	repo.EXPECT().GetEntitiesSince(gomock.Any(), testUserID, int64(3)).Return([]models.StoredEntity{
		stored(t, models.KindSrsCard, "1", card(1, 3), 4),
		stored(t, models.KindUserProfile, models.ProfileKey, profile, 4),
		stored(t, models.KindAchievement, "streak_7", achievement, 5),
		stored(t, models.KindCollectionItem, "5|kanji", item, 5),
	}, int64(5), nil)

	svc := newTestSyncService(repo)

	delta, err := svc.Pull(context.Background(), testUserID, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(5), delta.ServerVersion)
	assert.Equal(t, []models.SrsCard{card(1, 3)}, delta.Data.SrsCards)
	assert.Equal(t, []models.UserProfile{profile}, delta.Data.UserProfile)
	assert.Equal(t, []models.Achievement{achievement}, delta.Data.Achievements)
	assert.Equal(t, []models.CollectionItem{item}, delta.Data.CollectionItems)
	assert.Equal(t, 4, delta.Data.Len())
}

func TestSyncService_Pull_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)
	repo.EXPECT().GetEntitiesSince(gomock.Any(), testUserID, int64(8)).Return(nil, int64(8), nil)

	delta, err := newTestSyncService(repo).Pull(context.Background(), testUserID, 8)
	require.NoError(t, err)

	assert.True(t, delta.Data.IsEmpty())
	assert.Equal(t, int64(8), delta.ServerVersion)
}

func TestSyncService_Pull_Errors(t *testing.T) {
	t.Run("store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSyncRepository(ctrl)
		repo.EXPECT().GetEntitiesSince(gomock.Any(), testUserID, int64(0)).
			Return(nil, int64(0), store.ErrScanningRows)

		_, err := newTestSyncService(repo).Pull(context.Background(), testUserID, 0)
		assert.ErrorIs(t, err, store.ErrScanningRows)
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSyncRepository(ctrl)
		repo.EXPECT().GetEntitiesSince(gomock.Any(), testUserID, int64(0)).
			Return([]models.StoredEntity{{Kind: "flashcards", Key: "1", Payload: []byte(`{}`)}}, int64(1), nil)

		_, err := newTestSyncService(repo).Pull(context.Background(), testUserID, 0)
		assert.ErrorIs(t, err, store.ErrUnknownEntityKind)
	})

	t.Run("bad payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSyncRepository(ctrl)
		repo.EXPECT().GetEntitiesSince(gomock.Any(), testUserID, int64(0)).
			Return([]models.StoredEntity{{Kind: models.KindDailyStats, Key: "2026-01-01", Payload: []byte(`[]`)}}, int64(1), nil)

		_, err := newTestSyncService(repo).Pull(context.Background(), testUserID, 0)
		var typeErr *json.UnmarshalTypeError
		assert.True(t, errors.As(err, &typeErr))
	})
}

func TestSyncService_FullPull_StartsFromZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)
	repo.EXPECT().GetEntitiesSince(gomock.Any(), testUserID, int64(0)).Return([]models.StoredEntity{
		stored(t, models.KindModeStat, "3|quiz", models.ModeStat{ItemID: 3, GameMode: "quiz", ReviewCount: 1}, 1),
	}, int64(6), nil)

	delta, err := newTestSyncService(repo).FullPull(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, int64(6), delta.ServerVersion)
	assert.Len(t, delta.Data.ModeStats, 1)
}
