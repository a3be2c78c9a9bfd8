package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"directory/config"
	"directory/internal/delivery"
	apimiddleware "directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/router"
	"directory/internal/delivery/api/validator"
	"directory/internal/delivery/middleware"
	"directory/internal/domain/lifecycle"
	"directory/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const fallbackBodyLimit = "100KB"

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds the dependencies of the API server.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams)),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// newEcho assembles the echo instance: server timeouts, the middleware chain,
// the error handler, the validator and the routes.
func newEcho(cfg *config.Config, logger *slog.Logger, routes routeRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Order matters: the request id must exist before anything logs, and the
	// metrics middleware wraps the logger so it sees the rendered status.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.Metrics,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(bodyLimit(cfg)),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	routes.RegisterRoutes(e)

	return e
}

func bodyLimit(cfg *config.Config) string {
	if limit := strings.TrimSpace(cfg.HTTP.MaxRequestBodySize); limit != "" {
		return limit
	}

	return fallbackBodyLimit
}

func (s *apiServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Directory API listening", slog.String("addr", addr))

	// h2c serves HTTP/2 without TLS for clients behind a terminating proxy.
	h2 := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.server.StartH2CServer(addr, h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Directory API shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
