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

// UserHandler exposes the administrative user endpoints.
type UserHandler struct {
	service    ports.UserService
	logger     zerolog.Logger
	production bool
}

func NewUserHandler(service ports.UserService, logger zerolog.Logger, production bool) *UserHandler {
	return &UserHandler{
		service:    service,
		logger:     logger,
		production: production,
	}
}

// List handles user listing
// @Summary      List users
// @Description  Lists users visible to the authenticated principal, newest first.
// @Tags         users
// @Produce      json
// @Param        search            query  string  false  "Case-insensitive substring on first name"
// @Param        first_name        query  string  false  "Case-insensitive substring on first name (overrides search)"
// @Param        last_name         query  string  false  "Case-insensitive substring on last name"
// @Param        email             query  string  false  "Case-insensitive substring on email"
// @Param        tel_contact       query  string  false  "Case-insensitive substring on telephone"
// @Param        partner_desc      query  string  false  "Case-insensitive substring on partner description"
// @Param        role              query  int     false  "Exact role id"
// @Param        is_client         query  bool    false  "Client flag; only literal true/false are applied"
// @Param        active            query  bool    false  "Active flag; presence of the parameter applies it"
// @Param        created_at_start  query  string  false  "Inclusive lower bound on creation date"
// @Param        created_at_end    query  string  false  "Inclusive upper bound on creation date"
// @Param        partner_id        query  string  false  "Exact partner id"
// @Success      200  {array}   userRowResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	filter, err := parseUserFilter(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	metrics.ListQueriesTotal.WithLabelValues("users", scopeLabel(p)).Inc()

	rows, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Principal: p,
		Filter:    filter,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("principal", p.ID).Msg("listing users failed")
		return c.JSON(http.StatusInternalServerError, h.internalError(err))
	}

	return c.JSON(http.StatusOK, toUserRowsResponse(rows))
}

// Create handles user creation
// @Summary      Create a user
// @Description  Creates an invited user account and queues the activation mail.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body  createUserRequest  true  "User to create"
// @Success      201  {object}  createUserResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Principal: p,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
		IsClient:  req.IsClient,
		Role:      domain.Role(req.Role),
		PartnerID: req.PartnerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "You are not allowed to create users for another partner."})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "A user with this email already exists."})
		case errors.Is(err, domain.ErrInvalidReference):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid role or partner ID provided."})
		case errors.Is(err, domain.ErrInvalidPartnerID):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid partner ID format."})
		default:
			h.logger.Error().Err(err).Str("email", req.Email).Msg("creating user failed")
			return c.JSON(http.StatusInternalServerError, h.internalError(err))
		}
	}

	metrics.UsersCreatedTotal.WithLabelValues(strconv.Itoa(int(user.Role))).Inc()

	return c.JSON(http.StatusCreated, createUserResponse{User: toUserResponse(*user)})
}

// internalError builds the 500 envelope. The underlying error text is
// attached outside production only.
func (h *UserHandler) internalError(err error) errorResponse {
	resp := errorResponse{Error: "An internal server error occurred."}
	if !h.production {
		resp.Details = err.Error()
	}
	return resp
}

// parseUserFilter translates the raw query string into a UserFilter.
//
// search and first_name both target the first name; when both are present
// the explicit first_name wins. is_client accepts only the literals
// "true" and "false", anything else is ignored. active applies as soon
// as the parameter is present, comparing its value against "true".
func parseUserFilter(q url.Values) (ports.UserFilter, error) {
	var f ports.UserFilter

	if v := q.Get("search"); v != "" {
		f.FirstName = v
	}
	if v := q.Get("first_name"); v != "" {
		f.FirstName = v
	}
	f.LastName = q.Get("last_name")
	f.Email = q.Get("email")
	f.TelContact = q.Get("tel_contact")
	f.PartnerDesc = q.Get("partner_desc")
	f.PartnerID = q.Get("partner_id")

	if v := q.Get("role"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, errors.New("role must be a number")
		}
		role := domain.Role(n)
		f.Role = &role
	}

	switch q.Get("is_client") {
	case "true":
		t := true
		f.IsClient = &t
	case "false":
		fl := false
		f.IsClient = &fl
	}

	if q.Has("active") {
		active := q.Get("active") == "true"
		f.IsActive = &active
	}

	if v := q.Get("created_at_start"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, errors.New("created_at_start must be a valid date")
		}
		f.CreatedFrom = t
	}
	if v := q.Get("created_at_end"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, errors.New("created_at_end must be a valid date")
		}
		// A bare calendar date as upper bound covers that whole day.
		if len(v) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.CreatedTo = t
	}

	return f, nil
}

// parseDate accepts RFC 3339 timestamps and plain calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
