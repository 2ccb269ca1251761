// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// SyncResult is the outcome of one sync cycle. It is a closed set of variants:
// [SyncSuccess], [SyncError] and [SyncNotLoggedIn]. Callers distinguish them
// with a type switch.
type SyncResult interface {
	fmt.Stringer
	isSyncResult()
}

// SyncSuccess reports a completed cycle.
type SyncSuccess struct {
	// Pushed is the number of local entities sent to the server.
	Pushed int
	// Pulled is the number of entities received in the pull delta.
	Pulled int
	// NewVersion is the watermark persisted at the end of the cycle.
	NewVersion int64
}

// SyncError reports a cycle aborted by a remote or local failure. Metadata is
// left untouched; corrections already applied to the local store are kept.
type SyncError struct {
	Message string
	Err     error
}

// SyncNotLoggedIn reports that the remote channel is not configured and no
// sync step was attempted.
type SyncNotLoggedIn struct{}

func (SyncSuccess) isSyncResult()     {}
func (SyncError) isSyncResult()       {}
func (SyncNotLoggedIn) isSyncResult() {}

func (r SyncSuccess) String() string {
	return fmt.Sprintf("synced: pushed %d, pulled %d, version %d", r.Pushed, r.Pulled, r.NewVersion)
}

func (r SyncError) String() string {
	return "sync failed: " + r.Message
}

// Unwrap exposes the underlying failure to errors.Is / errors.As callers that
// convert the result into an error.
func (r SyncError) Unwrap() error {
	return r.Err
}

// Error lets a SyncError be returned where an error is expected.
func (r SyncError) Error() string {
	return r.Message
}

func (SyncNotLoggedIn) String() string {
	return "not logged in"
}

// NewSyncError builds a [SyncError] whose message is the error text.
func NewSyncError(err error) SyncError {
	return SyncError{Message: err.Error(), Err: err}
}
