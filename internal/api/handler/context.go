package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/api/middleware"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Its presence proves the middleware ran; handlers fail fast with 401
// when it is missing rather than proceeding unscoped.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.ContextKeyPrincipal).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// scopeLabel names the visibility scope kind for metrics.
func scopeLabel(p domain.Principal) string {
	switch {
	case p.Unrestricted():
		return "unrestricted"
	case p.PartnerID != "":
		return "partner"
	default:
		return "self"
	}
}
