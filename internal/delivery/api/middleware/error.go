package middleware

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/api/response"
	deliverycontext "directory/internal/delivery/context"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the echo HTTPErrorHandler of the API.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError maps err onto the error envelope:
// domain errors keep their status and code, echo errors become HTTP_ERROR,
// anything else is an opaque 500 logged with its stack.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err)
		}
		_ = response.HandleAppError(c, appErr)
	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	default:
		m.logFailure(c, "Unhandled error", err)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	attrs := []any{slog.Any("error", err)}
	if stack := errors.StackOf(err); stack != "" {
		attrs = append(attrs, slog.String("stack", stack))
	}

	logger.Error(msg, attrs...)
}
