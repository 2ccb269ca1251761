package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants restrict validation of a [models.SyncRequest] to a
// subset of checks.
const (
	// FieldEnvelope targets the tagged envelope fields: schema version,
	// action, user id and the version counters.
	FieldEnvelope = "envelope"

	// FieldAction targets the fields an action requires, e.g. data and
	// client_version for push.
	FieldAction = "action"

	// FieldData targets the entity arrays of a push.
	FieldData = "data"

	// FieldDevice targets the device description of a registration.
	FieldDevice = "device"
)

// SyncValidator validates sync envelopes, responses and entity sets using
// struct tags declared on the models, plus per-action rules that tags
// cannot express.
type SyncValidator struct {
	validate *validator.Validate
}

// NewSyncValidator constructs a SyncValidator and returns it as a Validator.
func NewSyncValidator() Validator {
	return &SyncValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted for:
//   - models.SyncRequest
//   - models.RegisterDeviceResponse, models.PushResponse, models.PullResponse
//   - models.ChangedDataSet
//   - models.DeviceInfo
//
// fields is honoured for SyncRequest only.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		if value == nil {
			return ErrInvalidRequest
		}
		return v.validateSyncRequest(ctx, *value, fields...)
	case models.RegisterDeviceResponse, *models.RegisterDeviceResponse,
		models.PushResponse, *models.PushResponse,
		models.PullResponse, *models.PullResponse:
		return v.validateResponse(ctx, value)
	case models.ChangedDataSet:
		return v.validateData(ctx, &value)
	case *models.ChangedDataSet:
		return v.validateData(ctx, value)
	case models.DeviceInfo:
		return v.validateDevice(ctx, &value)
	case *models.DeviceInfo:
		return v.validateDevice(ctx, value)
	default:
		return ErrUnsupportedType
	}
}

// validateSyncRequest validates an envelope.
//
// Default validated fields: Envelope, Action, Data, Device. Data and Device
// are only inspected when present.
func (v *SyncValidator) validateSyncRequest(ctx context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnvelope, FieldAction, FieldData, FieldDevice}
	}

	for _, f := range fields {
		switch f {
		case FieldEnvelope:
			err := v.validate.StructPartialCtx(ctx, request,
				"SchemaVersion", "Action", "UserID", "DeviceID",
				"ClientVersion", "MergeVersion", "SinceVersion")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
			}
		case FieldAction:
			if err := validateActionFields(request); err != nil {
				return err
			}
		case FieldData:
			if request.Data != nil {
				if err := v.validateData(ctx, request.Data); err != nil {
					return err
				}
			}
		case FieldDevice:
			if request.Device != nil {
				if err := v.validateDevice(ctx, request.Device); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateActionFields(request models.SyncRequest) error {
	switch request.Action {
	case models.ActionPush:
		if request.ClientVersion == nil {
			return ErrMissingClientVersion
		}
		if request.MergeVersion == nil {
			return ErrMissingMergeVersion
		}
		if request.Data == nil {
			return ErrMissingData
		}
	case models.ActionPull:
		if request.SinceVersion == nil {
			return ErrMissingSinceVersion
		}
	case models.ActionRegisterDevice:
		if request.Device == nil {
			return ErrMissingDevice
		}
	}

	return nil
}

func (v *SyncValidator) validateResponse(ctx context.Context, response any) error {
	if err := v.validate.StructCtx(ctx, response); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return nil
}

func (v *SyncValidator) validateData(ctx context.Context, data *models.ChangedDataSet) error {
	if data == nil {
		return nil
	}

	if err := v.validate.StructCtx(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return nil
}

func (v *SyncValidator) validateDevice(ctx context.Context, device *models.DeviceInfo) error {
	if err := v.validate.StructCtx(ctx, device); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDevice, err)
	}

	return nil
}
