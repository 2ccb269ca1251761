package models

// SyncVersion is the per-user synchronization metadata of a device.
//
// ServerVersion is the watermark: the highest server version the device has
// fully incorporated. It never decreases. Timestamps are epoch milliseconds;
// zero means "never".
type SyncVersion struct {
	UserID         int64
	ServerVersion  int64
	DeviceID       *string
	LastPushAt     int64
	LastPullAt     int64
	LastFullPullAt int64
}

// HasDevice reports whether the device has been registered.
func (v SyncVersion) HasDevice() bool {
	return v.DeviceID != nil && *v.DeviceID != ""
}

// NeedsFullPull reports whether the next pull must fetch the entire
// server-side state.
func (v SyncVersion) NeedsFullPull() bool {
	return v.ServerVersion == 0 && v.LastFullPullAt == 0
}
