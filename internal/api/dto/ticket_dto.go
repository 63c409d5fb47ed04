package dto

import (
	"time"

	"github.com/campus-kit/triage-service/internal/domain"
)

// FileTicketRequest payload.
type FileTicketRequest struct {
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// TransitionRequest payload for operator status changes.
type TransitionRequest struct {
	Status domain.TicketStatus `json:"status"`
	Remark string              `json:"remark"`
}

// TicketResponse mirrors the persisted ticket record.
type TicketResponse struct {
	ID                  string              `json:"id"`
	SubmitterID         string              `json:"submitterId"`
	Submitter           domain.Submitter    `json:"submitter"`
	Description         string              `json:"description"`
	Category            string              `json:"category"`
	Priority            domain.Priority     `json:"priority"`
	Status              domain.TicketStatus `json:"status"`
	SuggestedDepartment string              `json:"suggestedDepartment"`
	OperatorRemark      string              `json:"operatorRemark"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// StatsResponse carries dashboard aggregates.
type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// FromTicket maps a domain ticket to its response shape.
func FromTicket(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:                  ticket.ID,
		SubmitterID:         ticket.SubmitterID,
		Submitter:           ticket.Submitter,
		Description:         ticket.Description,
		Category:            ticket.Category,
		Priority:            ticket.Priority,
		Status:              ticket.Status,
		SuggestedDepartment: ticket.SuggestedDepartment,
		OperatorRemark:      ticket.OperatorRemark,
		CreatedAt:           ticket.CreatedAt,
		UpdatedAt:           ticket.UpdatedAt,
	}
}

// FromTickets maps a slice of domain tickets.
func FromTickets(tickets []domain.Ticket) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, FromTicket(&tickets[i]))
	}
	return items
}
