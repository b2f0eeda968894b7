package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Envelope is the minimal success/failure response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK writes a bare success envelope with the given message.
func OK(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

// ErrorHandler returns a custom echo HTTPErrorHandler that converts every
// error into the {success:false, message} shape. Taxonomy errors map to
// their own status; echo.HTTPError keeps its status; anything else becomes a
// 500 whose message is suppressed unless the server runs in development.
func ErrorHandler(logger zerolog.Logger, dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Something went wrong!"

		if apiErr, ok := AsError(err); ok {
			status = apiErr.StatusCode()
			if apiErr.Kind == KindInternal && !dev {
				// keep the generic message
			} else {
				message = apiErr.Message
			}
			if apiErr.Err != nil {
				logger.Error().Err(apiErr.Err).Int("status", status).
					Str("path", c.Request().URL.Path).Msg(apiErr.Message)
			}
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if httpErr == echo.ErrNotFound {
				message = "Route not found"
			} else if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
			if dev {
				message = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, Envelope{Success: false, Message: message})
	}
}
