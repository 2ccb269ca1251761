// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business logic of the sync client and the
// sync backend.
//
// Client side: [ClientSyncService] (the sync engine), [ClientDeviceService]
// and [ClientSyncJob]. Backend side: [SyncService], [AuthService] and
// [AppInfoService]. Both sides merge entities with the same field-level
// rules from the merger package.
package service

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the backend side of the four sync actions.
type SyncService interface {
	// RegisterDevice stores the device and returns its newly assigned id.
	RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error)

	// Push merges the pushed entities into the stored state. Pushes of one
	// user are serialized. The server version is bumped once if anything
	// changed.
	Push(ctx context.Context, req models.PushRequest) (models.PushResult, error)

	// Pull returns every entity changed after sinceVersion.
	Pull(ctx context.Context, userID int64, sinceVersion int64) (models.PullDelta, error)

	// FullPull returns the complete stored state of the user.
	FullPull(ctx context.Context, userID int64) (models.PullDelta, error)
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	IssueToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information of the backend.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncServiceWrapper decorates a SyncService with additional behavior.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
