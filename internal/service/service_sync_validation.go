package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/merger"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
)

// SyncValidationService checks arguments before they reach the wrapped
// SyncService.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncValidator(),
	}
}

func (v *SyncValidationService) RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, info); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterDevice(ctx, userID, info)
}

func (v *SyncValidationService) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	if req.UserID <= 0 {
		return models.PushResult{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}
	if req.ClientVersion < 0 {
		return models.PushResult{}, fmt.Errorf("%w: client version must not be negative", ErrInvalidDataProvided)
	}
	if req.MergeVersion < 1 || req.MergeVersion > merger.RulesVersion {
		return models.PushResult{}, fmt.Errorf("%w: got %d, supported up to %d",
			ErrUnsupportedMergeVersion, req.MergeVersion, merger.RulesVersion)
	}
	if err := v.validator.Validate(ctx, req.Data); err != nil {
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Push(ctx, req)
}

func (v *SyncValidationService) Pull(ctx context.Context, userID int64, sinceVersion int64) (models.PullDelta, error) {
	if userID <= 0 {
		return models.PullDelta{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}
	if sinceVersion < 0 {
		return models.PullDelta{}, fmt.Errorf("%w: since version must not be negative", ErrInvalidDataProvided)
	}

	return v.inner.Pull(ctx, userID, sinceVersion)
}

func (v *SyncValidationService) FullPull(ctx context.Context, userID int64) (models.PullDelta, error) {
	if userID <= 0 {
		return models.PullDelta{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.FullPull(ctx, userID)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}
