package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"ecommerce-backend/internal/auth"
	"ecommerce-backend/internal/entity"
)

// JWTMiddleware verifies the Bearer token and stores the parsed claims in the
// request context. Fails closed with 401 before any handler runs.
func JWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: secret,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			message := "Invalid token provided."
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				message = "Token is missing or invalid"
			case errors.Is(err, jwt.ErrTokenExpired):
				message = "Token has expired. Please refresh."
			}
			return codeError(c, http.StatusUnauthorized, message)
		},
	})
}

// RequireRole gates the wrapped handlers to callers whose verified role is in
// the allowed set. Runs after JWTMiddleware.
func RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return codeError(c, http.StatusUnauthorized, "Token is missing or invalid")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return codeError(c, http.StatusUnauthorized, "Invalid token provided.")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return codeError(c, http.StatusForbidden, "Access denied. Insufficient permissions.")
		}
	}
}

// identity returns the authenticated user's id from the verified claims.
func identity(c echo.Context) (int, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, errors.New("no token in context")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return 0, errors.New("unexpected claims type")
	}
	return strconv.Atoi(claims.Identity)
}
