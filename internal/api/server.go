// Package api runs the liveness HTTP listener. It exists so a free
// hosting tier keeps the process awake; it shares nothing with the
// Telegram loop and must never block it.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/docuchat/bot/internal/config"
)

// Server is the liveness HTTP server.
type Server struct {
	echo *echo.Echo
	cfg  config.ServerConfig
	log  *zap.Logger
}

// NewServer builds the echo instance with its routes registered.
func NewServer(cfg config.ServerConfig, version string, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	RegisterRoutes(e, NewHealthHandler(version))

	return &Server{
		echo: e,
		cfg:  cfg,
		log:  log,
	}
}

// Start runs the listener until the context is cancelled, then shuts it
// down cleanly. It blocks.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("liveness server listening", zap.String("addr", srv.Addr))
		if err := s.echo.StartServer(srv); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("liveness server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
