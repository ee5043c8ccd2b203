package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// ContextKeyPrincipal is the echo context key the verified principal is
// stored under.
const ContextKeyPrincipal = "principal"

// Auth validates the JWT and injects the Principal into the context.
// The principal is built once here and is immutable for the request.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			p, ok := principalFromClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity claims")
			}

			c.Set(ContextKeyPrincipal, p)
			return next(c)
		}
	}
}

// principalFromClaims maps the token claims onto a Principal. JSON numbers
// decode as float64, so the role claim is narrowed here.
func principalFromClaims(claims jwt.MapClaims) (domain.Principal, bool) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.Principal{}, false
	}

	role, ok := claims["role"].(float64)
	if !ok {
		return domain.Principal{}, false
	}

	isClient, _ := claims["is_client"].(bool)
	partnerID, _ := claims["partner_id"].(string)

	return domain.Principal{
		ID:        sub,
		Role:      domain.Role(int(role)),
		IsClient:  isClient,
		PartnerID: partnerID,
	}, true
}
