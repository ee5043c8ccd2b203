package handler

import (
	"time"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

type createTicketRequest struct {
	Title       string `json:"title"       validate:"required,max=128"`
	Description string `json:"description" validate:"required"`
	CategoryID  string `json:"categoryId"  validate:"required"`
	TypeID      string `json:"typeId"      validate:"required"`
	ModuleID    string `json:"moduleId"`
	StatusID    string `json:"statusId"    validate:"required"`
	PriorityID  string `json:"priorityId"  validate:"required"`
	PartnerID   string `json:"partnerId"`
	ProjectID   string `json:"projectId"`
	IsPrivate   bool   `json:"isPrivate"`
}

type createTicketResponse struct {
	Ticket ticketResponse `json:"ticket"`
}

type ticketResponse struct {
	ID             string     `json:"id"`
	ExternalID     int        `json:"external_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	CategoryID     string     `json:"category_id"`
	TypeID         string     `json:"type_id"`
	ModuleID       string     `json:"module_id,omitempty"`
	StatusID       string     `json:"status_id"`
	PriorityID     string     `json:"priority_id"`
	PartnerID      string     `json:"partner_id,omitempty"`
	ProjectID      string     `json:"project_id,omitempty"`
	CreatedBy      string     `json:"created_by"`
	IsClosed       bool       `json:"is_closed"`
	IsPrivate      bool       `json:"is_private"`
	CreatedAt      time.Time  `json:"created_at"`
	PlannedEndDate *time.Time `json:"planned_end_date,omitempty"`
	ActualEndDate  *time.Time `json:"actual_end_date,omitempty"`
}

func toTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:             t.ID,
		ExternalID:     t.ExternalID,
		Title:          t.Title,
		Description:    t.Description,
		CategoryID:     t.CategoryID,
		TypeID:         t.TypeID,
		ModuleID:       t.ModuleID,
		StatusID:       t.StatusID,
		PriorityID:     t.PriorityID,
		PartnerID:      t.PartnerID,
		ProjectID:      t.ProjectID,
		CreatedBy:      t.CreatedBy,
		IsClosed:       t.IsClosed,
		IsPrivate:      t.IsPrivate,
		CreatedAt:      t.CreatedAt,
		PlannedEndDate: t.PlannedEndDate,
		ActualEndDate:  t.ActualEndDate,
	}
}

func toTicketsResponse(tickets []domain.Ticket) []ticketResponse {
	out := make([]ticketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = toTicketResponse(t)
	}
	return out
}
