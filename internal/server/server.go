package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/skinnp91/karmamari/internal/config"
)

// storePinger is the minimal interface for counter store health checks
type storePinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	store     storePinger
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, store storePinger, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		config:    cfg,
		store:     store,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
