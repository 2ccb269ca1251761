package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	syncPath      = "/api/sync"
	traceIDHeader = "X-Trace-ID"
)

type httpSyncChannel struct {
	client    *utils.HTTPClient
	baseURL   string
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncChannel constructs an HTTP implementation of [SyncChannel].
// An empty adapterCfg.HTTPAddress yields a channel that reports itself as not
// configured, which keeps the client usable offline.
//
// Returns an error if a non-empty address cannot be parsed as a URL.
func NewHTTPSyncChannel(adapterCfg config.ClientAdapter, validator validators.Validator, logger *logger.Logger) (SyncChannel, error) {
	client := utils.NewHTTPClient()

	var baseURL string
	if strings.TrimSpace(adapterCfg.HTTPAddress) != "" {
		normalized, err := normalizeBaseURL(adapterCfg.HTTPAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid adapter http address: %w", err)
		}
		baseURL = normalized
		client.SetBaseURL(baseURL)
	}

	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpSyncChannel{
		client:    client,
		baseURL:   baseURL,
		validator: validator,
		traceIDs:  utils.NewUUIDGenerator(),
		token:     strings.TrimSpace(adapterCfg.Token),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Configured implements [SyncChannel].
func (h *httpSyncChannel) Configured() bool {
	return h.baseURL != "" && h.Token() != ""
}

// SetToken implements [SyncChannel]. The token is whitespace-trimmed.
func (h *httpSyncChannel) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the channel.
func (h *httpSyncChannel) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RegisterDevice implements [SyncChannel].
func (h *httpSyncChannel) RegisterDevice(ctx context.Context, userID int64, info models.DeviceInfo) (string, error) {
	req := models.SyncRequest{
		SchemaVersion: models.SchemaVersion,
		Action:        models.ActionRegisterDevice,
		UserID:        userID,
		Device:        &info,
	}

	var resp models.RegisterDeviceResponse
	if err := h.send(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("register device: %w", err)
	}

	return resp.DeviceID, nil
}

// Push implements [SyncChannel].
func (h *httpSyncChannel) Push(ctx context.Context, push models.PushRequest) (models.PushResult, error) {
	clientVersion := push.ClientVersion
	mergeVersion := push.MergeVersion
	data := push.Data

	req := models.SyncRequest{
		SchemaVersion: models.SchemaVersion,
		Action:        models.ActionPush,
		UserID:        push.UserID,
		DeviceID:      push.DeviceID,
		ClientVersion: &clientVersion,
		MergeVersion:  &mergeVersion,
		Data:          &data,
	}

	var resp models.PushResponse
	if err := h.send(ctx, req, &resp); err != nil {
		return models.PushResult{}, fmt.Errorf("push: %w", err)
	}

	result := models.PushResult{NewVersion: *resp.NewVersion}
	if resp.MergedBack != nil {
		result.MergedBack = *resp.MergedBack
	}

	return result, nil
}

// Pull implements [SyncChannel].
func (h *httpSyncChannel) Pull(ctx context.Context, userID int64, sinceVersion int64) (models.PullDelta, error) {
	req := models.SyncRequest{
		SchemaVersion: models.SchemaVersion,
		Action:        models.ActionPull,
		UserID:        userID,
		SinceVersion:  &sinceVersion,
	}

	var resp models.PullResponse
	if err := h.send(ctx, req, &resp); err != nil {
		return models.PullDelta{}, fmt.Errorf("pull: %w", err)
	}

	return models.PullDelta{Data: resp.ChangedDataSet, ServerVersion: *resp.ServerVersion}, nil
}

// FullPull implements [SyncChannel].
func (h *httpSyncChannel) FullPull(ctx context.Context, userID int64) (models.PullDelta, error) {
	req := models.SyncRequest{
		SchemaVersion: models.SchemaVersion,
		Action:        models.ActionFullPull,
		UserID:        userID,
	}

	var resp models.PullResponse
	if err := h.send(ctx, req, &resp); err != nil {
		return models.PullDelta{}, fmt.Errorf("full pull: %w", err)
	}

	return models.PullDelta{Data: resp.ChangedDataSet, ServerVersion: *resp.ServerVersion}, nil
}

// send posts req to the sync endpoint, maps the status code and decodes the
// body into out, which is then validated.
func (h *httpSyncChannel) send(ctx context.Context, req models.SyncRequest, out any) error {
	if !h.Configured() {
		return ErrNotConfigured
	}

	traceID := h.traceIDs.Generate()
	h.logger.Debug().
		Str("action", string(req.Action)).
		Str("trace_id", traceID).
		Int64("user_id", req.UserID).
		Msg("sending sync request")

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(traceIDHeader, traceID).
		SetBody(req).
		Post(syncPath)
	if err != nil {
		return fmt.Errorf("%s request: %w", req.Action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).
			Str("trace_id", traceID).
			Int("status", resp.StatusCode()).
			Msg("sync request rejected")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err = h.validator.Validate(ctx, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}

func (h *httpSyncChannel) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
