// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the client to reach the
// sync backend.
//
// The primary abstraction is [SyncChannel], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPSyncChannel]) that sends every action through one JSON envelope
// ([models.SyncRequest]) to POST /api/sync.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Responses that cannot be
// decoded or fail schema validation are reported as [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_channel_mock.go -package=mock

// SyncChannel defines the four remote sync operations. Every call may fail
// with a network error, a mapped status error or [ErrMalformedResponse];
// callers treat any failure as terminal for the current attempt.
type SyncChannel interface {
	// Configured reports whether the channel has both a backend address and
	// a bearer token. The engine performs no I/O when it returns false.
	Configured() bool

	// SetToken replaces the bearer token attached to subsequent requests.
	SetToken(token string)

	// RegisterDevice announces this device for userID and returns the device
	// id assigned by the backend.
	RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error)

	// Push sends the full local state and returns the new server version
	// along with the corrections the backend merged differently.
	Push(ctx context.Context, req models.PushRequest) (models.PushResult, error)

	// Pull returns every entity changed after sinceVersion.
	Pull(ctx context.Context, userID int64, sinceVersion int64) (models.PullDelta, error)

	// FullPull returns the complete server-side snapshot of userID.
	FullPull(ctx context.Context, userID int64) (models.PullDelta, error)
}
