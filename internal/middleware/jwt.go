package middleware

import (
	"net/http"

	"bizsetu/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// NewHMACKeyfunc verifies tokens signed with a shared secret.
func NewHMACKeyfunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}
}

// NewJWKSKeyfunc verifies tokens against a remote JWKS endpoint, for
// deployments where the identity provider rotates signing keys.
func NewJWKSKeyfunc(jwksURL string) (jwt.Keyfunc, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{})
	if err != nil {
		return nil, err
	}
	return jwks.Keyfunc, nil
}

// JWTConfig builds the echo-jwt configuration: a verified token's
// subject becomes the owner id in the request context. The identity
// provider itself is opaque to the rest of the service.
func JWTConfig(keyfn jwt.Keyfunc) echojwt.Config {
	return echojwt.Config{
		KeyFunc: keyfn,
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			sub, err := token.Claims.GetSubject()
			if err != nil {
				return
			}
			ownerID, err := uuid.Parse(sub)
			if err != nil {
				return
			}
			ctx := common.WithOwnerID(c.Request().Context(), ownerID)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}
}
