package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/api/metrics"
	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

// TicketHandler exposes the support ticket endpoints.
type TicketHandler struct {
	service    ports.TicketService
	logger     zerolog.Logger
	production bool
}

func NewTicketHandler(service ports.TicketService, logger zerolog.Logger, production bool) *TicketHandler {
	return &TicketHandler{
		service:    service,
		logger:     logger,
		production: production,
	}
}

// List handles ticket listing
// @Summary      List tickets
// @Description  Lists tickets visible to the authenticated principal, newest first.
// @Tags         tickets
// @Produce      json
// @Param        external_id       query  int     false  "Exact human-facing ticket number"
// @Param        title             query  string  false  "Case-insensitive substring on title"
// @Param        description       query  string  false  "Case-insensitive substring on description"
// @Param        category_id       query  string  false  "Exact category id"
// @Param        type_id           query  string  false  "Exact type id"
// @Param        module_id         query  string  false  "Exact module id"
// @Param        status_id         query  string  false  "Exact status id"
// @Param        priority_id       query  string  false  "Exact priority id"
// @Param        partner_id        query  string  false  "Exact partner id"
// @Param        project_id        query  string  false  "Exact project id"
// @Param        created_by        query  string  false  "Exact creator user id"
// @Param        is_closed         query  bool    false  "Closed flag; only literal true/false are applied"
// @Param        is_private        query  bool    false  "Private flag; only literal true/false are applied"
// @Param        created_at        query  string  false  "Calendar day the ticket was created"
// @Param        planned_end_date  query  string  false  "Calendar day of the planned end"
// @Param        actual_end_date   query  string  false  "Calendar day of the actual end"
// @Success      200  {array}   ticketResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	filter, err := parseTicketFilter(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	metrics.ListQueriesTotal.WithLabelValues("tickets", scopeLabel(p)).Inc()

	tickets, err := h.service.ListTickets(c.Request().Context(), ports.ListTicketsInput{
		Principal: p,
		Filter:    filter,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("principal", p.ID).Msg("listing tickets failed")
		return c.JSON(http.StatusInternalServerError, h.internalError(err))
	}

	return c.JSON(http.StatusOK, toTicketsResponse(tickets))
}

// Create handles ticket creation
// @Summary      Open a ticket
// @Description  Opens a new support ticket on behalf of the authenticated principal.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body  createTicketRequest  true  "Ticket to open"
// @Success      201  {object}  createTicketResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ticket, err := h.service.CreateTicket(c.Request().Context(), ports.CreateTicketInput{
		Principal:   p,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TypeID:      req.TypeID,
		ModuleID:    req.ModuleID,
		StatusID:    req.StatusID,
		PriorityID:  req.PriorityID,
		PartnerID:   req.PartnerID,
		ProjectID:   req.ProjectID,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid reference in ticket fields."})
		default:
			h.logger.Error().Err(err).Str("principal", p.ID).Msg("creating ticket failed")
			return c.JSON(http.StatusInternalServerError, h.internalError(err))
		}
	}

	return c.JSON(http.StatusCreated, createTicketResponse{Ticket: toTicketResponse(*ticket)})
}

func (h *TicketHandler) internalError(err error) errorResponse {
	resp := errorResponse{Error: "An internal server error occurred."}
	if !h.production {
		resp.Details = err.Error()
	}
	return resp
}

// parseTicketFilter translates the raw query string into a TicketFilter.
// Boolean parameters accept only the literals "true" and "false"; date
// parameters match the whole calendar day they name.
func parseTicketFilter(q url.Values) (ports.TicketFilter, error) {
	var f ports.TicketFilter

	if v := q.Get("external_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, errors.New("external_id must be a number")
		}
		f.ExternalID = &n
	}

	f.Title = q.Get("title")
	f.Description = q.Get("description")
	f.CategoryID = q.Get("category_id")
	f.TypeID = q.Get("type_id")
	f.ModuleID = q.Get("module_id")
	f.StatusID = q.Get("status_id")
	f.PriorityID = q.Get("priority_id")
	f.PartnerID = q.Get("partner_id")
	f.ProjectID = q.Get("project_id")
	f.CreatedBy = q.Get("created_by")

	if b := parseBoolLiteral(q.Get("is_closed")); b != nil {
		f.IsClosed = b
	}
	if b := parseBoolLiteral(q.Get("is_private")); b != nil {
		f.IsPrivate = b
	}

	for _, d := range []struct {
		param string
		dst   *time.Time
	}{
		{"created_at", &f.CreatedOn},
		{"planned_end_date", &f.PlannedEnd},
		{"actual_end_date", &f.ActualEnd},
	} {
		v := q.Get(d.param)
		if v == "" {
			continue
		}
		t, err := parseDate(v)
		if err != nil {
			return f, errors.New(d.param + " must be a valid date")
		}
		*d.dst = t
	}

	return f, nil
}

func parseBoolLiteral(s string) *bool {
	switch s {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	}
	return nil
}
