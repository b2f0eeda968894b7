package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/heartwise/heartwise/internal/platform/httpx"
)

// Recovery turns a handler panic into a logged 500 rendered through the
// standard error envelope. http.ErrAbortHandler keeps its net/http meaning
// and is re-raised.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				rid, _ := c.Get("request_id").(string)
				logger.Error().
					Str("request_id", rid).
					Str("method", c.Request().Method).
					Str("uri", c.Request().RequestURI).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				err = httpx.Internal(fmt.Errorf("panic: %v", r))
			}()
			return next(c)
		}
	}
}
