// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal console of the sync client. It shows
// the sync metadata of the configured user and lets the user trigger a sync,
// a quick push and a device registration by hand.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	syncService   service.ClientSyncService
	deviceService service.ClientDeviceService

	userID    int64
	device    models.DeviceInfo
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New creates the console for userID. device is sent to the backend when the
// user registers this device from the console.
func New(services *service.ClientServices, userID int64, device models.DeviceInfo, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		syncService:   services.SyncService,
		deviceService: services.DeviceService,
		userID:        userID,
		device:        device,
		buildInfo:     buildInfo,
		logger:        logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newConsoleModel(ctx, t.syncService, t.deviceService, t.userID, t.device, t.buildInfo)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Msg("console stopped by context")
			return nil
		}
		return fmt.Errorf("run console: %w", err)
	}

	return nil
}
