package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/form-demo/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := zerolog.Nop()

	t.Run("requires config", func(t *testing.T) {
		_, err := New(nil, &log, nil)
		assert.Error(t, err)
	})

	t.Run("requires logger", func(t *testing.T) {
		_, err := New(config.DefaultConfig(), nil, nil)
		assert.Error(t, err)
	})

	t.Run("builds metrics", func(t *testing.T) {
		s, err := New(config.DefaultConfig(), &log, nil)
		require.NoError(t, err)
		assert.NotNil(t, s.Metrics)
	})
}

func TestServer_Lifecycle(t *testing.T) {
	log := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Server.Port = "0"

	s, err := New(cfg, &log, nil)
	require.NoError(t, err)

	assert.Error(t, s.Start(), "start before setup")
	assert.NoError(t, s.Shutdown(context.Background()), "shutdown before setup")

	s.SetupHTTPServer(http.NotFoundHandler())
	assert.Equal(t, 30*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
