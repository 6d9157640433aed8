package middleware

import (
	"net/http"
	"strings"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/auth"
	"github.com/labstack/echo/v4"
)

// RequireIdentity authenticates the request from its bearer token and gates
// access on the verifier's email allow-list. The resulting identity is
// stored on the context for the handler.
func RequireIdentity(verifier *auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			ident, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !verifier.Allowed(ident.Email) {
				return echo.NewHTTPError(http.StatusForbidden, "access restricted to approved club emails")
			}

			auth.Store(c, ident)
			return next(c)
		}
	}
}
