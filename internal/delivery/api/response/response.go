// Package response writes the JSON envelopes of the directory API.
//
//	{"data": ..., "meta": {"request_id": "..."}}
//	{"error": {"code": "...", "message": "...", "details": ...}, "meta": {...}}
package response

import (
	"net/http"

	deliverycontext "directory/internal/delivery/context"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/errors"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// hidesDetails reports statuses whose details never leave the server.
func hidesDetails(status int) bool {
	return status >= http.StatusInternalServerError ||
		status == http.StatusUnauthorized ||
		status == http.StatusForbidden
}

func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{Data: data, Meta: meta(c)})
}

func Error(c echo.Context, status int, code, message string, details any) error {
	if hidesDetails(status) {
		details = nil
	}

	return c.JSON(status, ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, code, message string) error {
	return BadRequest(c, code, message)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func Forbidden(c echo.Context, code, message string) error {
	return Error(c, http.StatusForbidden, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// ValidationError answers 400 VALIDATION_FAILED with a field to message map.
func ValidationError(c echo.Context, fields map[string]string) error {
	failed := domainerrors.ErrValidationFailed

	return Error(c, failed.HTTPCode(), failed.ErrorCode(), failed.Message(), fields)
}

// HandleAppError writes domain errors. Any other error is returned with a
// stack for the echo error handler to report as a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
