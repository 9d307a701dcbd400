package http

import (
	"errors"
	"net/http"

	"orderdispatch/internal/generated/servers"
	"orderdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, servers.Error{Code: code, Message: message})
}

// statusOf maps the error taxonomy to HTTP status codes. Conflicts are
// reported as 400 like validation failures.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the response for a use case error. Internal errors are logged
// and their text is not exposed.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return errorJSON(c, code, "Internal server error")
	}
	return errorJSON(c, code, err.Error())
}

func (s *Server) handleEchoError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		_ = errorJSON(c, he.Code, message)
		return
	}
	_ = s.fail(c, err)
}
