package domain

import "time"

// TicketStatus enumerates lifecycle states for complaint tickets. The
// string values are persisted verbatim and must stay compatible with
// previously stored records.
type TicketStatus string

const (
	TicketStatusSubmitted   TicketStatus = "Submitted"
	TicketStatusUnderReview TicketStatus = "Under Review"
	TicketStatusResolved    TicketStatus = "Resolved"
)

// Valid reports whether the status belongs to the closed set.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusSubmitted, TicketStatusUnderReview, TicketStatusResolved:
		return true
	}
	return false
}

// Priority enumerates triage urgency, totally ordered Low < Medium < High < Urgent.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var priorityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Valid reports whether the priority belongs to the closed set.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// Less orders priorities by urgency.
func (p Priority) Less(other Priority) bool {
	return priorityRank[p] < priorityRank[other]
}

// Submitter is the profile snapshot captured when a ticket is filed.
// RollNumber doubles as the submitter identity.
type Submitter struct {
	Name       string `json:"name"`
	Class      string `json:"class"`
	Division   string `json:"division"`
	RollNumber string `json:"rollNumber"`
}

// Ticket is the aggregate for complaint reports. JSON field names match
// the persisted record format and must round-trip exactly.
type Ticket struct {
	ID                  string       `json:"id"`
	SubmitterID         string       `json:"submitterId"`
	Submitter           Submitter    `json:"submitter"`
	Description         string       `json:"description"`
	Category            string       `json:"category"`
	Priority            Priority     `json:"priority"`
	Status              TicketStatus `json:"status"`
	SuggestedDepartment string       `json:"suggestedDepartment"`
	OperatorRemark      string       `json:"operatorRemark"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// TicketCounts aggregates dashboard numbers over the full ticket set.
type TicketCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}
