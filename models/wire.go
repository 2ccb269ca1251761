// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SchemaVersion is the version of the sync envelope format.
const SchemaVersion = 1

// SyncAction selects the operation carried by a [SyncRequest].
type SyncAction string

const (
	ActionRegisterDevice SyncAction = "register_device"
	ActionPush           SyncAction = "push"
	ActionPull           SyncAction = "pull"
	ActionFullPull       SyncAction = "full_pull"
)

// SyncRequest is the single request envelope for every sync action.
// Optional fields are pointers so that an absent field is distinguishable from
// a zero value.
type SyncRequest struct {
	SchemaVersion int             `json:"schema_version" validate:"required,eq=1"`
	Action        SyncAction      `json:"action" validate:"required,oneof=register_device push pull full_pull"`
	UserID        int64           `json:"user_id" validate:"required,gt=0"`
	DeviceID      string          `json:"device_id,omitempty" validate:"omitempty,max=64"`
	ClientVersion *int64          `json:"client_version,omitempty" validate:"omitempty,gte=0"`
	MergeVersion  *int            `json:"merge_version,omitempty" validate:"omitempty,gte=1"`
	SinceVersion  *int64          `json:"since_version,omitempty" validate:"omitempty,gte=0"`
	Device        *DeviceInfo     `json:"device,omitempty"`
	Data          *ChangedDataSet `json:"data,omitempty"`
}

// RegisterDeviceResponse is returned for [ActionRegisterDevice].
type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// PushResponse is returned for [ActionPush].
type PushResponse struct {
	NewVersion *int64          `json:"new_version" validate:"required,gte=0"`
	MergedBack *ChangedDataSet `json:"merged_back"`
}

// PullResponse is returned for [ActionPull] and [ActionFullPull]. The entity
// arrays sit at the top level next to server_version.
type PullResponse struct {
	ChangedDataSet
	ServerVersion *int64 `json:"server_version" validate:"required,gte=0"`
}

// ErrorResponse is the body of a non-2xx reply from the sync backend.
type ErrorResponse struct {
	Error string `json:"error"`
}
