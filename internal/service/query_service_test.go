package service

import (
	"context"
	"testing"
	"time"

	"github.com/campus-kit/triage-service/internal/domain"
	"github.com/campus-kit/triage-service/internal/repository"
)

func seedStore(t *testing.T, tickets ...domain.Ticket) repository.TicketStore {
	t.Helper()
	store := repository.NewMemoryStore()
	for i := range tickets {
		if err := store.Put(context.Background(), &tickets[i]); err != nil {
			t.Fatalf("seed Put: %v", err)
		}
	}
	return store
}

func ticketAt(id, description, submitterName, roll string, status domain.TicketStatus, createdAt time.Time) domain.Ticket {
	return domain.Ticket{
		ID:          id,
		SubmitterID: roll,
		Submitter:   domain.Submitter{Name: submitterName, RollNumber: roll},
		Description: description,
		Category:    "General",
		Priority:    domain.PriorityMedium,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

var baseTime = time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

func TestFilterByStatus(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-1", "leaky tap", "Asha", "1", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-2", "slow wifi", "Dev", "2", domain.TicketStatusResolved, baseTime),
		ticketAt("TKT-3", "dirty hall", "Mira", "3", domain.TicketStatusSubmitted, baseTime),
	)
	svc := NewQueryService(store, nil)

	submitted, err := svc.FilterByStatus(context.Background(), string(domain.TicketStatusSubmitted))
	if err != nil {
		t.Fatalf("FilterByStatus: %v", err)
	}
	if len(submitted) != 2 {
		t.Errorf("submitted count = %d, want 2", len(submitted))
	}

	all, err := svc.FilterByStatus(context.Background(), StatusFilterAll)
	if err != nil {
		t.Fatalf("FilterByStatus(All): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("All count = %d, want 3", len(all))
	}
}

func TestSearch(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-ALPHA", "Projector not working", "Asha Rao", "1", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-BRAVO", "canteen food quality", "Dev Patel", "2", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-CHARLIE", "ac broken", "Mira Prasad", "3", domain.TicketStatusSubmitted, baseTime),
	)
	svc := NewQueryService(store, nil)

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"empty term matches everything", "", []string{"TKT-ALPHA", "TKT-BRAVO", "TKT-CHARLIE"}},
		{"case-insensitive description", "PROJECTOR", []string{"TKT-ALPHA"}},
		{"submitter name", "patel", []string{"TKT-BRAVO"}},
		{"ticket id fragment", "charlie", []string{"TKT-CHARLIE"}},
		{"name substring across tickets", "ra", []string{"TKT-ALPHA", "TKT-BRAVO", "TKT-CHARLIE"}},
		{"no match", "elevator", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tt.term)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d tickets, want %d", tt.term, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Search(%q)[%d].ID = %s, want %s", tt.term, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestForSubmitter(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-1", "leaky tap", "Asha", "42", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-2", "slow wifi", "Dev", "7", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-3", "dirty hall", "Asha", "42", domain.TicketStatusResolved, baseTime),
	)
	svc := NewQueryService(store, nil)

	got, err := svc.ForSubmitter(context.Background(), "42")
	if err != nil {
		t.Fatalf("ForSubmitter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ForSubmitter returned %d tickets, want 2", len(got))
	}
	for _, ticket := range got {
		if ticket.SubmitterID != "42" {
			t.Errorf("ticket %s belongs to %s", ticket.ID, ticket.SubmitterID)
		}
	}
}

func TestAggregateCounts(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-1", "a", "Asha", "1", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-2", "b", "Dev", "2", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-3", "c", "Mira", "3", domain.TicketStatusResolved, baseTime),
	)
	svc := NewQueryService(store, nil)

	counts, err := svc.AggregateCounts(context.Background())
	if err != nil {
		t.Fatalf("AggregateCounts: %v", err)
	}
	want := domain.TicketCounts{Total: 3, Pending: 2, Resolved: 1}
	if counts != want {
		t.Errorf("AggregateCounts = %+v, want %+v", counts, want)
	}
}

// fakeCountsCache counts lookups and stores the last written value.
type fakeCountsCache struct {
	stored *domain.TicketCounts
	gets   int
	sets   int
}

func (f *fakeCountsCache) GetCounts(_ context.Context) (*domain.TicketCounts, error) {
	f.gets++
	return f.stored, nil
}

func (f *fakeCountsCache) SetCounts(_ context.Context, counts domain.TicketCounts) {
	f.sets++
	f.stored = &counts
}

func TestAggregateCountsUsesCache(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-1", "a", "Asha", "1", domain.TicketStatusSubmitted, baseTime),
	)
	fake := &fakeCountsCache{}
	svc := NewQueryService(store, fake)

	first, err := svc.AggregateCounts(context.Background())
	if err != nil {
		t.Fatalf("AggregateCounts: %v", err)
	}
	if fake.sets != 1 {
		t.Errorf("cache sets = %d, want 1", fake.sets)
	}

	// Second read must come from the cache even if the store changed
	// behind it.
	if err := store.Put(context.Background(), &domain.Ticket{ID: "TKT-2", Status: domain.TicketStatusSubmitted}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	second, err := svc.AggregateCounts(context.Background())
	if err != nil {
		t.Fatalf("AggregateCounts: %v", err)
	}
	if second != first {
		t.Errorf("cached read = %+v, want %+v", second, first)
	}
	if fake.sets != 1 {
		t.Errorf("cache sets after hit = %d, want 1", fake.sets)
	}
}

func TestSortedByRecency(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-OLD", "a", "Asha", "1", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-TIE1", "b", "Dev", "2", domain.TicketStatusSubmitted, baseTime.Add(time.Hour)),
		ticketAt("TKT-TIE2", "c", "Mira", "3", domain.TicketStatusSubmitted, baseTime.Add(time.Hour)),
		ticketAt("TKT-NEW", "d", "Ravi", "4", domain.TicketStatusSubmitted, baseTime.Add(2*time.Hour)),
	)
	svc := NewQueryService(store, nil)

	got, err := svc.SortedByRecency(context.Background())
	if err != nil {
		t.Fatalf("SortedByRecency: %v", err)
	}
	wantOrder := []string{"TKT-NEW", "TKT-TIE1", "TKT-TIE2", "TKT-OLD"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
	for i := 0; i < len(got)-1; i++ {
		if got[i].CreatedAt.Before(got[i+1].CreatedAt) {
			t.Errorf("ordering not non-increasing at %d", i)
		}
	}
}

func TestDashboardCombinesFilters(t *testing.T) {
	store := seedStore(t,
		ticketAt("TKT-1", "projector broken", "Asha", "1", domain.TicketStatusSubmitted, baseTime),
		ticketAt("TKT-2", "projector flickers", "Dev", "2", domain.TicketStatusResolved, baseTime.Add(time.Hour)),
		ticketAt("TKT-3", "wifi down", "Mira", "3", domain.TicketStatusSubmitted, baseTime.Add(2*time.Hour)),
		ticketAt("TKT-4", "projector cable missing", "Ravi", "4", domain.TicketStatusSubmitted, baseTime.Add(3*time.Hour)),
	)
	svc := NewQueryService(store, nil)

	got, err := svc.Dashboard(context.Background(), string(domain.TicketStatusSubmitted), "projector")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	wantOrder := []string{"TKT-4", "TKT-1"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Dashboard returned %d tickets, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}
