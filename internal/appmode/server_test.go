package appmode_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunServerGracefulStop(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() {
		done <- appmode.RunServer(ctx, stop, srv, zap.NewNop(), time.Second)
	}()

	stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestRunServerListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	srv := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}

	err = appmode.RunServer(ctx, stop, srv, zap.NewNop(), time.Second)
	require.ErrorContains(t, err, "search node stopped")
}
