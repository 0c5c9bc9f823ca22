package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/handler"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "9.9.9"}, logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(
		&service.Services{AppInfoService: appInfo},
		&config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}},
		logger.Nop(),
	)
	require.NoError(t, err)
	return handlers
}

func newTestServer(t *testing.T) *server {
	t.Helper()

	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.httpServer.listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	client := utils.NewHTTPClient("http://"+s.httpServer.Addr(), time.Second)
	resp, err := client.R().Get("/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "9.9.9", resp.String())

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop after cancel")
	}

	_, err = client.R().Get("/version")
	assert.Error(t, err)
}

func TestServer_RunAddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: occupied.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

func TestHTTPServer_AddrBeforeListen(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), "localhost:1234", logger.Nop())

	assert.Equal(t, "localhost:1234", h.Addr())
}

func TestHTTPServer_ListenIsIdempotent(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", logger.Nop())
	require.NoError(t, h.listen())
	addr := h.Addr()

	require.NoError(t, h.listen())
	assert.Equal(t, addr, h.Addr())
	require.NoError(t, h.listener.Close())
}
