package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/socialfeed-server/internal/mocks"
)

func TestHTTPServer_StartStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	security := mocks.NewSecurityLayer(t)
	security.On("Listen", "tcp", "127.0.0.1:0").Return(listener, nil)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := NewHTTPServer(handler, "127.0.0.1:0", time.Second, time.Second)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(security) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String())
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "ok"
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, <-errCh)
}

func TestHTTPServer_ListenError(t *testing.T) {
	security := mocks.NewSecurityLayer(t)
	security.On("Listen", "tcp", ":1").Return(nil, assert.AnError)

	s := NewHTTPServer(http.NotFoundHandler(), ":1", time.Second, time.Second)

	err := s.Start(security)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHTTPServer_Metadata(t *testing.T) {
	s := NewHTTPServer(http.NotFoundHandler(), ":3000", time.Second, time.Second)

	assert.Equal(t, ":3000", s.Address())
	assert.Equal(t, "http", s.Name())
}
