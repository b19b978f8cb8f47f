package http

import (
	"errors"
	"net/http"

	"forwarding/internal/adapters/in/http/openapi"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps application errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict), errors.Is(err, errs.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoHostAvailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their text is
// not exposed to the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, openapi.Error{Code: status, Message: message})
}

// ErrorHandler renders errors that escape the handlers (binding, validation,
// routing) in the same Error shape the handlers use.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, openapi.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}
