package tui

import "github.com/MKhiriev/go-study-sync/models"

type statusLoadedMsg struct {
	status models.SyncVersion
	err    error
}

type syncDoneMsg struct {
	result models.SyncResult
}

type deviceRegisteredMsg struct {
	deviceID string
	err      error
}

type clearNoticeMsg struct{}
