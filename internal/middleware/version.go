package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// VersionMiddleware stamps responses with the API version and rejects
// unsupported version prefixes.
type VersionMiddleware struct {
	supported      map[string]bool
	defaultVersion string
}

func NewVersionMiddleware() *VersionMiddleware {
	return &VersionMiddleware{
		supported:      map[string]bool{"v1": true},
		defaultVersion: "v1",
	}
}

// VersionHeader adds the version header to every response in a group.
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-API-Version", version)
			return next(c)
		}
	}
}

// APIVersionResolver resolves the requested version from the path and
// rejects versions this server does not serve.
func (vm *VersionMiddleware) APIVersionResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/v") {
				version := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
				if !vm.supported[version] {
					return c.JSON(http.StatusNotFound, map[string]string{
						"error": "Unsupported API version",
					})
				}
				c.Set("api_version", version)
			} else {
				c.Set("api_version", vm.defaultVersion)
			}
			return next(c)
		}
	}
}
