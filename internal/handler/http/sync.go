package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// sync serves every sync action through one envelope. The envelope is
// validated as a whole, then dispatched on its action.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sync").Msg("no user ID was given")
		writeError(w, ErrNoUserInContext, http.StatusUnauthorized)
		return
	}

	var request models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("action", string(request.Action)).Msg("invalid sync request")
		writeError(w, err, statusFromError(err))
		return
	}

	if request.UserID != userID {
		log.Warn().
			Int64("token_user_id", userID).
			Int64("request_user_id", request.UserID).
			Msg("access to different user data")
		writeError(w, ErrUserMismatch, http.StatusForbidden)
		return
	}

	var (
		response any
		err      error
	)
	switch request.Action {
	case models.ActionRegisterDevice:
		response, err = h.registerDevice(r, request)
	case models.ActionPush:
		response, err = h.push(r, request)
	case models.ActionPull:
		response, err = h.pull(r, request)
	case models.ActionFullPull:
		response, err = h.fullPull(r, request)
	default:
		err = fmt.Errorf("unsupported action %q", request.Action)
		writeError(w, err, http.StatusBadRequest)
		return
	}

	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("action", string(request.Action)).Int("status", status).Msg("sync action failed")
		writeError(w, err, status)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) registerDevice(r *http.Request, request models.SyncRequest) (models.RegisterDeviceResponse, error) {
	deviceID, err := h.services.SyncService.RegisterDevice(r.Context(), request.UserID, *request.Device)
	if err != nil {
		return models.RegisterDeviceResponse{}, err
	}

	return models.RegisterDeviceResponse{DeviceID: deviceID}, nil
}

func (h *Handler) push(r *http.Request, request models.SyncRequest) (models.PushResponse, error) {
	result, err := h.services.SyncService.Push(r.Context(), models.PushRequest{
		UserID:        request.UserID,
		DeviceID:      request.DeviceID,
		ClientVersion: *request.ClientVersion,
		MergeVersion:  *request.MergeVersion,
		Data:          *request.Data,
	})
	if err != nil {
		return models.PushResponse{}, err
	}

	return models.PushResponse{
		NewVersion: &result.NewVersion,
		MergedBack: &result.MergedBack,
	}, nil
}

func (h *Handler) pull(r *http.Request, request models.SyncRequest) (models.PullResponse, error) {
	delta, err := h.services.SyncService.Pull(r.Context(), request.UserID, *request.SinceVersion)
	if err != nil {
		return models.PullResponse{}, err
	}

	return pullResponse(delta), nil
}

func (h *Handler) fullPull(r *http.Request, request models.SyncRequest) (models.PullResponse, error) {
	delta, err := h.services.SyncService.FullPull(r.Context(), request.UserID)
	if err != nil {
		return models.PullResponse{}, err
	}

	return pullResponse(delta), nil
}

func pullResponse(delta models.PullDelta) models.PullResponse {
	return models.PullResponse{
		ChangedDataSet: delta.Data,
		ServerVersion:  &delta.ServerVersion,
	}
}
