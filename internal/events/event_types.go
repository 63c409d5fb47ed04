package events

import (
	"time"

	"github.com/campus-kit/triage-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketFiled         EventType = "ticket_filed"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role       domain.Role `json:"role"`
	RollNumber *string     `json:"roll_number,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketFiledPayload payload.
type TicketFiledPayload struct {
	SubmitterID         string          `json:"submitter_id"`
	Category            string          `json:"category"`
	Priority            domain.Priority `json:"priority"`
	SuggestedDepartment string          `json:"suggested_department"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Remark    string              `json:"remark,omitempty"`
}
