package models

import "time"

// DeviceInfo describes the device sent along with a registration request.
type DeviceInfo struct {
	Name       string `json:"name" validate:"required,max=128"`
	Platform   string `json:"platform" validate:"required,max=64"`
	AppVersion string `json:"app_version,omitempty" validate:"max=64"`
}

// Device is a registered device as stored by the sync backend.
type Device struct {
	ID        string
	UserID    int64
	Info      DeviceInfo
	CreatedAt time.Time
}
