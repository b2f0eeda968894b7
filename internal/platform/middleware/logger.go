package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one access-log line per request. The level follows the
// outcome: 5xx and handler errors log at error, 4xx at warn, the rest at
// info. Handler errors are logged here with the id the request carried, then
// passed on for the global error handler to render.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()
			rid, _ := c.Get("request_id").(string)

			var evt *zerolog.Event
			switch {
			case err != nil:
				evt = logger.Error().Err(err)
			case res.Status >= http.StatusInternalServerError:
				evt = logger.Error()
			case res.Status >= http.StatusBadRequest:
				evt = logger.Warn()
			default:
				evt = logger.Info()
			}

			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("ip", c.RealIP()).
				Int("status", res.Status).
				Int64("bytes", res.Size).
				Dur("elapsed", time.Since(start)).
				Msg("request handled")

			return err
		}
	}
}
