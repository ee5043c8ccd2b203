package handler

import (
	"time"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details carries the underlying cause and is only populated
// outside production.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type createUserRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=32"`
	LastName  string `json:"lastName"  validate:"required,max=32"`
	Telephone string `json:"telephone"`
	IsClient  bool   `json:"isClient"`
	Role      int    `json:"role"      validate:"required"`
	PartnerID string `json:"partnerId"`
}

type createUserResponse struct {
	User userResponse `json:"user"`
}

type userResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	TelContact string    `json:"tel_contact,omitempty"`
	Role       int       `json:"role"`
	IsClient   bool      `json:"is_client"`
	PartnerID  string    `json:"partner_id,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// userRowResponse is a listing row with the flattened partner description.
// PartnerDesc is always present in the payload, null for partnerless users.
type userRowResponse struct {
	userResponse
	PartnerDesc *string `json:"partner_desc"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		TelContact: u.TelContact,
		Role:       int(u.Role),
		IsClient:   u.IsClient,
		PartnerID:  u.PartnerID,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

func toUserRowsResponse(rows []domain.UserRow) []userRowResponse {
	out := make([]userRowResponse, len(rows))
	for i, r := range rows {
		out[i] = userRowResponse{
			userResponse: toUserResponse(r.User),
			PartnerDesc:  r.PartnerDesc,
		}
	}
	return out
}
