package domain

import "time"

// Ticket is a support request ("chamado") raised against a partner project.
// Category/type/module/status/priority are references into small lookup
// tables owned by the store; the API treats them as opaque identifiers.
type Ticket struct {
	ID             string     `json:"id"`
	ExternalID     int        `json:"external_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	CategoryID     string     `json:"category_id,omitempty"`
	TypeID         string     `json:"type_id,omitempty"`
	ModuleID       string     `json:"module_id,omitempty"`
	StatusID       string     `json:"status_id,omitempty"`
	PriorityID     string     `json:"priority_id,omitempty"`
	PartnerID      string     `json:"partner_id,omitempty"`
	ProjectID      string     `json:"project_id,omitempty"`
	CreatedBy      string     `json:"created_by"`
	IsClosed       bool       `json:"is_closed"`
	IsPrivate      bool       `json:"is_private"`
	CreatedAt      time.Time  `json:"created_at"`
	PlannedEndDate *time.Time `json:"planned_end_date,omitempty"`
	ActualEndDate  *time.Time `json:"actual_end_date,omitempty"`
}
