package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
	"github.com/orgball2608/socialhub/pkg/retry"
	"go.uber.org/fx"
)

func NewServer(lc fx.Lifecycle, cfg *config.Config, router *mux.Router, log logger.Logger) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The previous process may still hold the port during a restart.
			var ln net.Listener
			err := retry.Do(ctx, log, "listen", func() error {
				var err error
				ln, err = net.Listen("tcp", srv.Addr)
				return err
			}, retry.DefaultConfig())
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}
