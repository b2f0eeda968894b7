package auth

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/heartwise/heartwise/internal/platform/httpx"
)

const userIDContextKey = "user_id"

// UserID returns the authenticated user's id set by RequireSession, or ""
// on an unguarded route.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

// RequireSession guards a route group behind the session cookie. The three
// verification failure modes get distinct client messages, but all of them
// mean the same thing to the SPA: redirect to login.
func RequireSession(tokens *Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return httpx.Unauthorized("Authentication required. Please login.")
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				switch {
				case errors.Is(err, ErrTokenExpired):
					return httpx.Unauthorized("Session expired. Please login again.")
				case errors.Is(err, ErrTokenInvalid):
					return httpx.Unauthorized("Invalid token. Please login again.")
				default:
					return httpx.Unauthorized("Authentication error. Please try again.")
				}
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}
