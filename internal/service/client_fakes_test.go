package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
	"golang.org/x/sync/semaphore"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newTestClientSyncService(entities store.LocalEntityRepository, versions store.SyncVersionRepository, channel adapter.SyncChannel) *clientSyncService {
	return &clientSyncService{
		entities: entities,
		versions: versions,
		channel:  channel,
		lock:     semaphore.NewWeighted(1),
		now:      func() time.Time { return fixedNow },
		logger:   logger.Nop(),
	}
}

// memEntities is an in-memory LocalEntityRepository for a single user.
type memEntities struct {
	mu sync.Mutex

	srsCards    map[string]models.SrsCard
	vocabCards  map[string]models.VocabSrsCard
	profile     *models.UserProfile
	sessions    map[string]models.StudySession
	dailyStats  map[string]models.DailyStats
	achievement map[string]models.Achievement
	modeStats   map[string]models.ModeStat
	collection  map[string]models.CollectionItem
}

func newMemEntities() *memEntities {
	return &memEntities{
		srsCards:    map[string]models.SrsCard{},
		vocabCards:  map[string]models.VocabSrsCard{},
		sessions:    map[string]models.StudySession{},
		dailyStats:  map[string]models.DailyStats{},
		achievement: map[string]models.Achievement{},
		modeStats:   map[string]models.ModeStat{},
		collection:  map[string]models.CollectionItem{},
	}
}

func sortedValues[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}

func lookup[T any](m map[string]T, key string) (T, error) {
	v, ok := m[key]
	if !ok {
		var zero T
		return zero, store.ErrEntityNotFound
	}
	return v, nil
}

func (m *memEntities) ListSrsCards(context.Context, int64) ([]models.SrsCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.srsCards), nil
}

func (m *memEntities) GetSrsCard(_ context.Context, _ int64, itemID int) (models.SrsCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.srsCards, models.SrsCard{ItemID: itemID}.Key())
}

func (m *memEntities) UpsertSrsCard(_ context.Context, _ int64, card models.SrsCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.srsCards[card.Key()] = card
	return nil
}

func (m *memEntities) ListVocabSrsCards(context.Context, int64) ([]models.VocabSrsCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.vocabCards), nil
}

func (m *memEntities) GetVocabSrsCard(_ context.Context, _ int64, vocabID int64) (models.VocabSrsCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.vocabCards, models.VocabSrsCard{VocabID: vocabID}.Key())
}

func (m *memEntities) UpsertVocabSrsCard(_ context.Context, _ int64, card models.VocabSrsCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vocabCards[card.Key()] = card
	return nil
}

func (m *memEntities) GetUserProfile(context.Context, int64) (models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return models.UserProfile{}, store.ErrEntityNotFound
	}
	return *m.profile, nil
}

func (m *memEntities) UpsertUserProfile(_ context.Context, _ int64, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = &profile
	return nil
}

func (m *memEntities) ListStudySessions(context.Context, int64) ([]models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.sessions), nil
}

func (m *memEntities) InsertStudySession(_ context.Context, _ int64, session models.StudySession) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.Key()]; ok {
		return false, nil
	}
	m.sessions[session.Key()] = session
	return true, nil
}

func (m *memEntities) ListDailyStats(context.Context, int64) ([]models.DailyStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.dailyStats), nil
}

func (m *memEntities) GetDailyStats(_ context.Context, _ int64, date string) (models.DailyStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.dailyStats, date)
}

func (m *memEntities) UpsertDailyStats(_ context.Context, _ int64, stats models.DailyStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dailyStats[stats.Key()] = stats
	return nil
}

func (m *memEntities) ListAchievements(context.Context, int64) ([]models.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.achievement), nil
}

func (m *memEntities) GetAchievement(_ context.Context, _ int64, id string) (models.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.achievement, id)
}

func (m *memEntities) UpsertAchievement(_ context.Context, _ int64, achievement models.Achievement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.achievement[achievement.Key()] = achievement
	return nil
}

func (m *memEntities) ListModeStats(context.Context, int64) ([]models.ModeStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.modeStats), nil
}

func (m *memEntities) GetModeStat(_ context.Context, _ int64, itemID int, gameMode string) (models.ModeStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.modeStats, models.ModeStat{ItemID: itemID, GameMode: gameMode}.Key())
}

func (m *memEntities) UpsertModeStat(_ context.Context, _ int64, stat models.ModeStat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modeStats[stat.Key()] = stat
	return nil
}

func (m *memEntities) ListCollectionItems(context.Context, int64) ([]models.CollectionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.collection), nil
}

func (m *memEntities) GetCollectionItem(_ context.Context, _ int64, itemID int, itemType string) (models.CollectionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.collection, models.CollectionItem{ItemID: itemID, ItemType: itemType}.Key())
}

func (m *memEntities) UpsertCollectionItem(_ context.Context, _ int64, item models.CollectionItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collection[item.Key()] = item
	return nil
}

// memVersions is an in-memory SyncVersionRepository.
type memVersions struct {
	mu   sync.Mutex
	rows map[int64]models.SyncVersion
}

func newMemVersions() *memVersions {
	return &memVersions{rows: map[int64]models.SyncVersion{}}
}

func (m *memVersions) get(userID int64) (models.SyncVersion, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[userID]
	return v, ok
}

func (m *memVersions) GetByUserID(_ context.Context, userID int64) (models.SyncVersion, error) {
	v, ok := m.get(userID)
	if !ok {
		return models.SyncVersion{}, store.ErrSyncVersionNotFound
	}
	return v, nil
}

func (m *memVersions) Upsert(_ context.Context, version models.SyncVersion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if version.DeviceID == nil {
		version.DeviceID = m.rows[version.UserID].DeviceID
	}
	m.rows[version.UserID] = version
	return nil
}

func (m *memVersions) UpdateDeviceID(_ context.Context, deviceID string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.rows[userID]
	v.UserID = userID
	v.DeviceID = &deviceID
	m.rows[userID] = v
	return nil
}

func (m *memVersions) UpdateAfterPush(_ context.Context, newVersion int64, pushedAt int64, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.rows[userID]
	v.UserID = userID
	v.ServerVersion = max(v.ServerVersion, newVersion)
	v.LastPushAt = pushedAt
	m.rows[userID] = v
	return nil
}

// memBackend is an in-memory store.SyncRepository.
type memBackend struct {
	mu       sync.Mutex
	versions map[int64]int64
	rows     map[int64]map[string]models.StoredEntity
	devices  []models.Device
}

func newMemBackend() *memBackend {
	return &memBackend{
		versions: map[int64]int64{},
		rows:     map[int64]map[string]models.StoredEntity{},
	}
}

func backendKey(kind models.EntityKind, key string) string {
	return string(kind) + "/" + key
}

func (b *memBackend) SaveDevice(_ context.Context, device models.Device) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.devices = append(b.devices, device)
	return nil
}

func (b *memBackend) GetEntities(_ context.Context, userID int64, kind models.EntityKind, keys []string) (map[string]models.StoredEntity, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	found := map[string]models.StoredEntity{}
	for _, key := range keys {
		if e, ok := b.rows[userID][backendKey(kind, key)]; ok {
			found[key] = e
		}
	}
	return found, nil
}

func (b *memBackend) CommitEntities(_ context.Context, userID int64, entities []models.StoredEntity) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(entities) == 0 {
		return b.versions[userID], nil
	}

	b.versions[userID]++
	version := b.versions[userID]
	if b.rows[userID] == nil {
		b.rows[userID] = map[string]models.StoredEntity{}
	}
	for _, e := range entities {
		e.Version = version
		b.rows[userID][backendKey(e.Kind, e.Key)] = e
	}
	return version, nil
}

func (b *memBackend) GetEntitiesSince(_ context.Context, userID int64, sinceVersion int64) ([]models.StoredEntity, int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []models.StoredEntity
	for _, e := range b.rows[userID] {
		if e.Version > sinceVersion {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return backendKey(out[i].Kind, out[i].Key) < backendKey(out[j].Kind, out[j].Key)
	})
	return out, b.versions[userID], nil
}

// loopbackChannel is an adapter.SyncChannel served directly by a backend
// SyncService.
type loopbackChannel struct {
	backend SyncService
}

func (c *loopbackChannel) Configured() bool { return true }
func (c *loopbackChannel) SetToken(string)  {}

func (c *loopbackChannel) RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error) {
	return c.backend.RegisterDevice(ctx, userID, info)
}

func (c *loopbackChannel) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	return c.backend.Push(ctx, req)
}

func (c *loopbackChannel) Pull(ctx context.Context, userID int64, sinceVersion int64) (models.PullDelta, error) {
	return c.backend.Pull(ctx, userID, sinceVersion)
}

func (c *loopbackChannel) FullPull(ctx context.Context, userID int64) (models.PullDelta, error) {
	return c.backend.FullPull(ctx, userID)
}

// eventLog records the order in which fakes are called from concurrent
// goroutines.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// loggedVersions records every persisted cycle into an eventLog.
type loggedVersions struct {
	*memVersions
	log *eventLog
}

func (v loggedVersions) Upsert(ctx context.Context, version models.SyncVersion) error {
	v.log.add("persist")
	return v.memVersions.Upsert(ctx, version)
}
