package service

import (
	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
)

type ClientServices struct {
	SyncService   ClientSyncService
	DeviceService ClientDeviceService
	SyncJob       ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, channel adapter.SyncChannel, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages, channel, logger)

	return &ClientServices{
		SyncService:   syncSvc,
		DeviceService: NewClientDeviceService(storages, channel, logger),
		SyncJob:       NewClientSyncJob(syncSvc, cfg.App.UserID, cfg.Workers.SyncInterval, logger),
	}
}
