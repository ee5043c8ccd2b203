package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

// PartnerHandler exposes the partner catalog used by the admin filter forms.
type PartnerHandler struct {
	service    ports.PartnerService
	logger     zerolog.Logger
	production bool
}

func NewPartnerHandler(service ports.PartnerService, logger zerolog.Logger, production bool) *PartnerHandler {
	return &PartnerHandler{
		service:    service,
		logger:     logger,
		production: production,
	}
}

type partnerResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPartnersResponse(partners []domain.Partner) []partnerResponse {
	out := make([]partnerResponse, len(partners))
	for i, p := range partners {
		out[i] = partnerResponse{
			ID:          p.ID,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}
	return out
}

// List handles partner listing
// @Summary      List partners
// @Description  Lists all partner organizations.
// @Tags         partners
// @Produce      json
// @Success      200  {array}   partnerResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/partners [get]
func (h *PartnerHandler) List(c echo.Context) error {
	partners, err := h.service.ListPartners(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing partners failed")
		resp := errorResponse{Error: "An internal server error occurred."}
		if !h.production {
			resp.Details = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}

	return c.JSON(http.StatusOK, toPartnersResponse(partners))
}
