package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run maps the handlers, starts the websocket hub and Redis subscriber,
// serves HTTP, and blocks until a shutdown signal arrives.
func (srv *HTTPServer) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.mapHandlers(); err != nil {
		return err
	}

	go srv.hub.Run(ctx)

	if err := srv.subscriber.Start(ctx); err != nil {
		return err
	}

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.l.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.l.Infof(ctx, "HTTP server started on port %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	srv.l.Infof(ctx, "received signal %s, shutting down", sig)

	if err := srv.subscriber.Shutdown(ctx); err != nil {
		srv.l.Errorf(ctx, "subscriber shutdown error: %v", err)
	}
	cancel()

	return nil
}
