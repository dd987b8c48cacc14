// Package api hosts the admin delivery: store inspection and repair over
// a separate H2C listener.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"directory/config"
	"directory/internal/delivery"
	"directory/internal/delivery/api/router"
	httpmiddleware "directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/validator"
	"directory/internal/delivery/middleware"
	"directory/internal/domain/lifecycle"
	"directory/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the admin server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.Admin.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.Admin.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.Admin.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.Admin.Timeouts.IdleTimeout

	// Recover first, request ID before any logging, then the logger.
	echoServer.Use(echomiddleware.Recover())
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.Admin.MaxRequestBodySize))

	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Admin.Port))
	s.logger.Info("Starting admin API server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.Admin.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down admin API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
