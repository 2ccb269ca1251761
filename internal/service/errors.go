package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrVersionIsNotSpecified   = errors.New("version is not specified")
	ErrUnsupportedMergeVersion = errors.New("unsupported merge version")

	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSyncAbandoned   = errors.New("caller stopped waiting for sync")
	ErrDeviceIDMissing = errors.New("backend returned an empty device id")
)
