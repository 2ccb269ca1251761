package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRequest  = errors.New("invalid sync request")
	ErrInvalidResponse = errors.New("invalid sync response")
	ErrInvalidData     = errors.New("invalid entity data")
	ErrInvalidDevice   = errors.New("invalid device info")

	ErrMissingClientVersion = errors.New("client_version is required for push")
	ErrMissingMergeVersion  = errors.New("merge_version is required for push")
	ErrMissingData          = errors.New("data is required for push")
	ErrMissingSinceVersion  = errors.New("since_version is required for pull")
	ErrMissingDevice        = errors.New("device is required for register_device")
)
