package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/merger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
	"golang.org/x/sync/semaphore"
)

type clientSyncService struct {
	entities store.LocalEntityRepository
	versions store.SyncVersionRepository
	channel  adapter.SyncChannel

	// lock admits one cycle at a time; waiters are served in arrival order.
	lock *semaphore.Weighted
	now  func() time.Time

	logger *logger.Logger
}

// NewClientSyncService builds the sync engine over the local storages and the
// remote channel. One instance must be used per synchronized user.
func NewClientSyncService(storages *store.ClientStorages, channel adapter.SyncChannel, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		entities: storages.Entities,
		versions: storages.Versions,
		channel:  channel,
		lock:     semaphore.NewWeighted(1),
		now:      time.Now,
		logger:   logger,
	}
}

// Sync implements ClientSyncService.
func (s *clientSyncService) Sync(ctx context.Context, userID int64, trigger models.SyncTrigger) models.SyncResult {
	log := s.logger.With().Int64("user_id", userID).Str("trigger", trigger.String()).Logger()

	return s.exclusive(ctx, func(ctx context.Context) models.SyncResult {
		result := s.syncCycle(ctx, userID)
		switch r := result.(type) {
		case models.SyncSuccess:
			log.Info().
				Int("pushed", r.Pushed).
				Int("pulled", r.Pulled).
				Int64("version", r.NewVersion).
				Msg("sync finished")
		case models.SyncError:
			log.Err(r.Err).Msg("sync failed")
		}
		return result
	})
}

// PushOnly implements ClientSyncService.
func (s *clientSyncService) PushOnly(ctx context.Context, userID int64) models.SyncResult {
	return s.exclusive(ctx, func(ctx context.Context) models.SyncResult {
		result := s.pushCycle(ctx, userID)
		if r, ok := result.(models.SyncError); ok {
			s.logger.Err(r.Err).Int64("user_id", userID).Msg("push failed")
		}
		return result
	})
}

// Status implements ClientSyncService.
func (s *clientSyncService) Status(ctx context.Context, userID int64) (models.SyncVersion, error) {
	version, err := s.baseVersion(ctx, userID)
	if err != nil {
		return models.SyncVersion{}, fmt.Errorf("get sync status: %w", err)
	}

	return version, nil
}

// exclusive runs cycle under the engine lock on a context detached from the
// caller's cancellation. The caller gets a SyncError if it stops waiting
// first; the cycle itself always runs to completion.
func (s *clientSyncService) exclusive(ctx context.Context, cycle func(ctx context.Context) models.SyncResult) models.SyncResult {
	if !s.channel.Configured() {
		return models.SyncNotLoggedIn{}
	}

	done := make(chan models.SyncResult, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		if err := s.lock.Acquire(detached, 1); err != nil {
			done <- models.NewSyncError(fmt.Errorf("acquire sync lock: %w", err))
			return
		}
		defer s.lock.Release(1)

		done <- cycle(detached)
	}()

	select {
	case result := <-done:
		return result
	case <-ctx.Done():
		return models.NewSyncError(fmt.Errorf("%w: %w", ErrSyncAbandoned, ctx.Err()))
	}
}

func (s *clientSyncService) syncCycle(ctx context.Context, userID int64) models.SyncResult {
	base, err := s.baseVersion(ctx, userID)
	if err != nil {
		return models.NewSyncError(fmt.Errorf("read sync version: %w", err))
	}

	newVersion := base.ServerVersion

	pushed, pushResult, err := s.push(ctx, base)
	if err != nil {
		return models.NewSyncError(err)
	}
	pushedAt := s.nowMillis()
	if pushed > 0 {
		newVersion = max(newVersion, pushResult.NewVersion)
	}

	fullPull := base.NeedsFullPull()
	var delta models.PullDelta
	if fullPull {
		delta, err = s.channel.FullPull(ctx, userID)
	} else {
		delta, err = s.channel.Pull(ctx, userID, base.ServerVersion)
	}
	if err != nil {
		return models.NewSyncError(fmt.Errorf("pull: %w", mapChannelError(err)))
	}

	if err = s.apply(ctx, userID, delta.Data); err != nil {
		return models.NewSyncError(fmt.Errorf("apply pull delta: %w", err))
	}
	pulledAt := s.nowMillis()
	newVersion = max(newVersion, delta.ServerVersion)

	meta := models.SyncVersion{
		UserID:         userID,
		ServerVersion:  newVersion,
		LastPushAt:     base.LastPushAt,
		LastPullAt:     pulledAt,
		LastFullPullAt: base.LastFullPullAt,
	}
	if pushed > 0 {
		meta.LastPushAt = pushedAt
	}
	if fullPull {
		meta.LastFullPullAt = pulledAt
	}

	// DeviceID stays nil: the stored id is owned by the device registrar.
	if err = s.versions.Upsert(ctx, meta); err != nil {
		return models.NewSyncError(fmt.Errorf("persist sync version: %w", err))
	}

	return models.SyncSuccess{
		Pushed:     pushed,
		Pulled:     delta.Data.Len(),
		NewVersion: newVersion,
	}
}

func (s *clientSyncService) pushCycle(ctx context.Context, userID int64) models.SyncResult {
	base, err := s.baseVersion(ctx, userID)
	if err != nil {
		return models.NewSyncError(fmt.Errorf("read sync version: %w", err))
	}

	pushed, _, err := s.push(ctx, base)
	if err != nil {
		return models.NewSyncError(err)
	}
	if pushed == 0 {
		return models.SyncSuccess{NewVersion: base.ServerVersion}
	}

	// The watermark only moves after a pull: the backend version may include
	// commits from other devices that this device has not seen yet.
	if err = s.versions.UpdateAfterPush(ctx, base.ServerVersion, s.nowMillis(), userID); err != nil {
		return models.NewSyncError(fmt.Errorf("persist sync version: %w", err))
	}

	return models.SyncSuccess{Pushed: pushed, NewVersion: base.ServerVersion}
}

// push sends the whole local state and applies merged_back. It returns the
// number of pushed entities; zero means nothing was sent.
func (s *clientSyncService) push(ctx context.Context, base models.SyncVersion) (int, models.PushResult, error) {
	data, err := s.collect(ctx, base.UserID)
	if err != nil {
		return 0, models.PushResult{}, fmt.Errorf("collect local state: %w", err)
	}
	if data.IsEmpty() {
		return 0, models.PushResult{}, nil
	}

	req := models.PushRequest{
		UserID:        base.UserID,
		ClientVersion: base.ServerVersion,
		MergeVersion:  merger.RulesVersion,
		Data:          data,
	}
	if base.HasDevice() {
		req.DeviceID = *base.DeviceID
	}

	result, err := s.channel.Push(ctx, req)
	if err != nil {
		return 0, models.PushResult{}, fmt.Errorf("push: %w", mapChannelError(err))
	}

	if err = s.apply(ctx, base.UserID, result.MergedBack); err != nil {
		return 0, models.PushResult{}, fmt.Errorf("apply merged back: %w", err)
	}

	return data.Len(), result, nil
}

func (s *clientSyncService) baseVersion(ctx context.Context, userID int64) (models.SyncVersion, error) {
	version, err := s.versions.GetByUserID(ctx, userID)
	if errors.Is(err, store.ErrSyncVersionNotFound) {
		return models.SyncVersion{UserID: userID}, nil
	}
	if err != nil {
		return models.SyncVersion{}, err
	}

	version.UserID = userID
	return version, nil
}

func (s *clientSyncService) nowMillis() int64 {
	return s.now().UnixMilli()
}

// mapChannelError adds service-level meaning to channel failures while
// keeping the transport error inspectable.
func mapChannelError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrNotConfigured):
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrUnauthorizedAccessToDifferentUserData, err)
	default:
		return err
	}
}
