// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

// ClientSyncService is the device-side sync engine. All methods of one
// instance are serialized by a first-come, first-served lock: a call made
// while another is running waits for it to finish.
type ClientSyncService interface {
	// Sync runs a full cycle: push of the complete local state, application
	// of the server corrections, pull (full on the first contact) and
	// persistence of the new watermark. trigger is recorded in logs only.
	//
	// If ctx ends before the cycle does, Sync returns a [models.SyncError]
	// while the cycle keeps running to completion in the background.
	Sync(ctx context.Context, userID int64, trigger models.SyncTrigger) models.SyncResult

	// PushOnly pushes the local state and applies the corrections without
	// pulling. Only the push time is recorded; the watermark is left for
	// the next full cycle.
	PushOnly(ctx context.Context, userID int64) models.SyncResult

	// Status returns the stored sync metadata; a user that never synced gets
	// a zero record.
	Status(ctx context.Context, userID int64) (models.SyncVersion, error)
}

// ClientDeviceService registers this device with the backend and keeps the
// assigned id in the local metadata.
type ClientDeviceService interface {
	// RegisterDevice may be called repeatedly; every call stores the latest
	// id returned by the backend.
	RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error)
}

// ClientSyncJob runs periodic background syncs. It satisfies workers.Worker.
type ClientSyncJob interface {
	// Start launches the ticker loop; a running loop is restarted.
	Start(ctx context.Context)

	// Stop cancels the loop and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
