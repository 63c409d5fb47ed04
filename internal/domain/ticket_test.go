package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPriorityOrdering(t *testing.T) {
	ordered := []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	for i := 0; i < len(ordered)-1; i++ {
		if !ordered[i].Less(ordered[i+1]) {
			t.Errorf("expected %s < %s", ordered[i], ordered[i+1])
		}
		if ordered[i+1].Less(ordered[i]) {
			t.Errorf("did not expect %s < %s", ordered[i+1], ordered[i])
		}
	}
}

func TestPriorityValid(t *testing.T) {
	tests := []struct {
		priority Priority
		want     bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{PriorityUrgent, true},
		{Priority("Critical"), false},
		{Priority("medium"), false},
		{Priority(""), false},
	}
	for _, tt := range tests {
		if got := tt.priority.Valid(); got != tt.want {
			t.Errorf("Priority(%q).Valid() = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestTicketStatusValid(t *testing.T) {
	tests := []struct {
		status TicketStatus
		want   bool
	}{
		{TicketStatusSubmitted, true},
		{TicketStatusUnderReview, true},
		{TicketStatusResolved, true},
		{TicketStatus("Closed"), false},
		{TicketStatus("submitted"), false},
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("TicketStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// The persisted record format is fixed; renaming a JSON key or enum value
// would orphan existing data.
func TestTicketRecordFormat(t *testing.T) {
	ticket := Ticket{
		ID:          "TKT-ABC123DEF",
		SubmitterID: "42",
		Submitter: Submitter{
			Name:       "Asha Rao",
			Class:      "TE",
			Division:   "B",
			RollNumber: "42",
		},
		Description:         "Projector in room 204 is broken",
		Category:            "Infrastructure",
		Priority:            PriorityHigh,
		Status:              TicketStatusUnderReview,
		SuggestedDepartment: "Maintenance",
		OperatorRemark:      "technician assigned",
		CreatedAt:           time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(ticket)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}

	wantKeys := []string{
		"id", "submitterId", "submitter", "description", "category",
		"priority", "status", "suggestedDepartment", "operatorRemark",
		"createdAt", "updatedAt",
	}
	for _, key := range wantKeys {
		if _, ok := record[key]; !ok {
			t.Errorf("record missing key %q", key)
		}
	}
	if got := record["status"]; got != "Under Review" {
		t.Errorf("status serialized as %v, want %q", got, "Under Review")
	}
	if got := record["priority"]; got != "High" {
		t.Errorf("priority serialized as %v, want %q", got, "High")
	}

	var decoded Ticket
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded.ID != ticket.ID || decoded.Submitter != ticket.Submitter ||
		decoded.Status != ticket.Status || decoded.Priority != ticket.Priority ||
		decoded.OperatorRemark != ticket.OperatorRemark {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, ticket)
	}
	if !decoded.CreatedAt.Equal(ticket.CreatedAt) || !decoded.UpdatedAt.Equal(ticket.UpdatedAt) {
		t.Errorf("timestamps did not round trip: got %v/%v", decoded.CreatedAt, decoded.UpdatedAt)
	}
}
