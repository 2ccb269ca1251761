package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
)

type clientDeviceService struct {
	versions store.SyncVersionRepository
	channel  adapter.SyncChannel

	logger *logger.Logger
}

func NewClientDeviceService(storages *store.ClientStorages, channel adapter.SyncChannel, logger *logger.Logger) ClientDeviceService {
	return &clientDeviceService{
		versions: storages.Versions,
		channel:  channel,
		logger:   logger,
	}
}

func (s *clientDeviceService) RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error) {
	if !s.channel.Configured() {
		return "", ErrNotLoggedIn
	}

	deviceID, err := s.channel.RegisterDevice(ctx, userID, info)
	if err != nil {
		return "", fmt.Errorf("register device: %w", mapChannelError(err))
	}
	if deviceID == "" {
		return "", ErrDeviceIDMissing
	}

	if err = s.versions.UpdateDeviceID(ctx, deviceID, userID); err != nil {
		return "", fmt.Errorf("store device id: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Str("device_id", deviceID).
		Str("platform", info.Platform).
		Msg("device registered")

	return deviceID, nil
}
