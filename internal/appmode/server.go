// Package appmode runs the search node until its context is cancelled and shuts it down gracefully
package appmode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RunServer blocks until ctx is done or the server fails to listen.
// stop is called on a listen failure so that the rest of the app sees the cancellation.
func RunServer(ctx context.Context, stop context.CancelFunc, srv *http.Server, log *zap.Logger, shutdownTimeout time.Duration) error {
	listenErr := make(chan error, 1)

	// запуск сервера
	go func() {
		log.Info("search node running", zap.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
			stop()
			return
		}
		log.Info("server gracefully stopping...")
	}()

	<-ctx.Done()

	select {
	case err := <-listenErr:
		return fmt.Errorf("search node stopped: %w", err)
	default:
	}

	// закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown search node %q correctly: %w", srv.Addr, err)
	}

	log.Info("search node server is closed", zap.String("address", srv.Addr))
	return nil
}
