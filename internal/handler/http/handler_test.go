package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/mock"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID int64 = 7
	testToken        = "valid-token"
)

type testServer struct {
	router  http.Handler
	sync    *mock.MockSyncService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		sync:    mock.NewMockSyncService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    ts.auth,
		SyncService:    ts.sync,
		AppInfoService: ts.appInfo,
	}, logger.Nop())
	ts.router = h.Init()

	return ts
}

// authorized makes ParseToken accept testToken for testUserID.
func (ts *testServer) authorized() {
	ts.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil)
}

func (ts *testServer) post(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func ptr[T any](v T) *T { return &v }

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Error
}

func envelope(action models.SyncAction) models.SyncRequest {
	return models.SyncRequest{
		SchemaVersion: models.SchemaVersion,
		Action:        action,
		UserID:        testUserID,
	}
}

// ─────────────────────────────────────────────
// GET /api/version/
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	ts := newTestServer(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.2")

	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.4.2", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

func TestUnsupportedMethod_NotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sync", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestSync_Unauthorized(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		wantErr  string
	}{
		{name: "no header", wantErr: ErrEmptyAuthorizationHeader.Error()},
		{name: "no scheme", header: "valid-token", wantErr: ErrInvalidAuthorizationHeader.Error()},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader.Error()},
		{name: "empty token", header: "Bearer  ", wantErr: ErrInvalidAuthorizationHeader.Error()},
		{
			name:     "rejected token",
			header:   "Bearer expired",
			parseErr: service.ErrTokenIsExpiredOrInvalid,
			wantErr:  service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.parseErr != nil {
				ts.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, tt.parseErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewBufferString(`{}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			ts.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rr))
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Token abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/sync: envelope checks
// ─────────────────────────────────────────────

func TestSync_InvalidJSON(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()

	rr := ts.post(t, `{"action":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeError(t, rr))
}

func TestSync_InvalidEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SyncRequest)
	}{
		{name: "unknown schema version", mutate: func(r *models.SyncRequest) { r.SchemaVersion = 2 }},
		{name: "unknown action", mutate: func(r *models.SyncRequest) { r.Action = "delete_everything" }},
		{name: "push without client_version", mutate: func(r *models.SyncRequest) {
			r.Action = models.ActionPush
			r.MergeVersion = ptr(1)
			r.Data = &models.ChangedDataSet{}
		}},
		{name: "pull without since_version", mutate: func(r *models.SyncRequest) { r.Action = models.ActionPull }},
		{name: "register without device", mutate: func(r *models.SyncRequest) { r.Action = models.ActionRegisterDevice }},
		{name: "invalid entity", mutate: func(r *models.SyncRequest) {
			r.Action = models.ActionPush
			r.ClientVersion = ptr(int64(0))
			r.MergeVersion = ptr(1)
			r.Data = &models.ChangedDataSet{Achievements: []models.Achievement{{ID: ""}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.authorized()

			req := envelope(models.ActionFullPull)
			tt.mutate(&req)

			rr := ts.post(t, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}
}

func TestSync_OtherUsersData_Forbidden(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()

	req := envelope(models.ActionFullPull)
	req.UserID = testUserID + 1

	rr := ts.post(t, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, ErrUserMismatch.Error(), decodeError(t, rr))
}

// ─────────────────────────────────────────────
// POST /api/sync: actions
// ─────────────────────────────────────────────

func TestSync_RegisterDevice(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()

	device := models.DeviceInfo{Name: "iPad", Platform: "ios", AppVersion: "3.0.1"}
	ts.sync.EXPECT().RegisterDevice(gomock.Any(), testUserID, device).Return("dev-123", nil)

	req := envelope(models.ActionRegisterDevice)
	req.Device = &device

	rr := ts.post(t, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"device_id":"dev-123"}`, rr.Body.String())
}

func TestSync_Push(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()

	data := models.ChangedDataSet{
		ModeStats: []models.ModeStat{{ItemID: 1, GameMode: "quiz", ReviewCount: 2, CorrectCount: 1}},
	}
	merged := models.ModeStat{ItemID: 1, GameMode: "quiz", ReviewCount: 4, CorrectCount: 1}

	ts.sync.EXPECT().Push(gomock.Any(), models.PushRequest{
		UserID:        testUserID,
		DeviceID:      "dev-1",
		ClientVersion: 3,
		MergeVersion:  1,
		Data:          data,
	}).Return(models.PushResult{
		NewVersion: 4,
		MergedBack: models.ChangedDataSet{ModeStats: []models.ModeStat{merged}},
	}, nil)

	req := envelope(models.ActionPush)
	req.DeviceID = "dev-1"
	req.ClientVersion = ptr(int64(3))
	req.MergeVersion = ptr(1)
	req.Data = &data

	rr := ts.post(t, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{
		"new_version": 4,
		"merged_back": {"mode_stats": [{"itemId":1,"gameMode":"quiz","reviewCount":4,"correctCount":1}]}
	}`, rr.Body.String())
}

func TestSync_Pull(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()

	ts.sync.EXPECT().Pull(gomock.Any(), testUserID, int64(5)).Return(models.PullDelta{
		Data: models.ChangedDataSet{
			DailyStats: []models.DailyStats{{Date: "2026-10-17", CardsReviewed: 30, XPEarned: 120, StudyTimeSec: 900}},
		},
		ServerVersion: 9,
	}, nil)

	req := envelope(models.ActionPull)
	req.SinceVersion = ptr(int64(5))

	rr := ts.post(t, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{
		"daily_stats": [{"date":"2026-10-17","cardsReviewed":30,"xpEarned":120,"studyTimeSec":900}],
		"server_version": 9
	}`, rr.Body.String())
}

func TestSync_FullPull(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()

	ts.sync.EXPECT().FullPull(gomock.Any(), testUserID).Return(models.PullDelta{ServerVersion: 0}, nil)

	rr := ts.post(t, envelope(models.ActionFullPull))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"server_version": 0}`, rr.Body.String())
}

func TestSync_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "unsupported merge version",
			err:        service.ErrUnsupportedMergeVersion,
			wantStatus: http.StatusBadRequest,
			wantError:  service.ErrUnsupportedMergeVersion.Error(),
		},
		{
			name:       "database",
			err:        store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
		{
			name:       "unknown",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.authorized()
			ts.sync.EXPECT().FullPull(gomock.Any(), testUserID).Return(models.PullDelta{}, tt.err)

			rr := ts.post(t, envelope(models.ActionFullPull))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr))
		})
	}
}

// ─────────────────────────────────────────────
// trace id and compression
// ─────────────────────────────────────────────

func TestTraceID(t *testing.T) {
	t.Run("reused from request", func(t *testing.T) {
		ts := newTestServer(t)
		ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

		req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
		req.Header.Set(traceIDHeader, "trace-abc")
		rr := httptest.NewRecorder()
		ts.router.ServeHTTP(rr, req)

		assert.Equal(t, "trace-abc", rr.Header().Get(traceIDHeader))
	})

	t.Run("generated", func(t *testing.T) {
		ts := newTestServer(t)
		ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

		rr := httptest.NewRecorder()
		ts.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})
}

func TestGzipResponse(t *testing.T) {
	ts := newTestServer(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("2.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", string(body))
}

func TestGzipRequest(t *testing.T) {
	ts := newTestServer(t)
	ts.authorized()
	ts.sync.EXPECT().FullPull(gomock.Any(), testUserID).Return(models.PullDelta{ServerVersion: 2}, nil)

	raw, err := json.Marshal(envelope(models.ActionFullPull))
	require.NoError(t, err)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/sync", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"server_version": 2}`, rr.Body.String())
}
