package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const slowRequestThreshold = time.Second

// LoggerMiddleware writes one access line per request it considers worth
// logging: every request in debug mode, otherwise server errors and slow requests.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug}
}

// Handle renders a handler error through the echo error handler before
// logging, so the status it logs (and the metrics middleware reads) is final.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		latency := time.Since(start)
		status := c.Response().Status
		if m.debug || status >= http.StatusInternalServerError || latency >= slowRequestThreshold {
			m.logRequest(c, status, latency, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest, latency >= slowRequestThreshold:
		level = slog.LevelWarn
	}

	// Method, path and request id come with the request-scoped logger.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
