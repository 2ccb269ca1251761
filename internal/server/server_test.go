package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/handler"
	myHTTP "github.com/MKhiriev/go-study-sync/internal/handler/http"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}

	t.Run("http address", func(t *testing.T) {
		s, err := NewServer(handlers, config.ServerHTTP{HTTPAddress: ":0"}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("no address", func(t *testing.T) {
		s, err := NewServer(handlers, config.ServerHTTP{}, logger.Nop())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("no handler", func(t *testing.T) {
		_, err := NewServer(&handler.Handlers{}, config.ServerHTTP{HTTPAddress: ":0"}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})
}

func TestHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	s := newHTTPServer(slow, config.ServerHTTP{HTTPAddress: ":0", RequestTimeout: 10 * time.Millisecond}, logger.Nop())

	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.ServerHTTP{HTTPAddress: ":0"}, logger.Nop())

	assert.NotPanics(t, s.Shutdown)
}
