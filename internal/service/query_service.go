package service

import (
	"context"
	"sort"
	"strings"

	"github.com/campus-kit/triage-service/internal/domain"
	"github.com/campus-kit/triage-service/internal/repository"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "All"

// CountsCache caches aggregate counts between reads. Implementations
// treat failures as misses; the cache never becomes a hard dependency.
type CountsCache interface {
	GetCounts(ctx context.Context) (*domain.TicketCounts, error)
	SetCounts(ctx context.Context, counts domain.TicketCounts)
}

// QueryService provides read-only projections over the ticket store for
// dashboards. All operations work on the store's current snapshot and
// never mutate tickets.
type QueryService struct {
	store repository.TicketStore
	cache CountsCache
}

// NewQueryService constructs the service. cache may be nil.
func NewQueryService(store repository.TicketStore, cache CountsCache) *QueryService {
	return &QueryService{store: store, cache: cache}
}

// Get fetches one ticket by id.
func (s *QueryService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.store.Get(ctx, id)
}

// FilterByStatus returns tickets with an exact status match, or every
// ticket when status is StatusFilterAll.
func (s *QueryService) FilterByStatus(ctx context.Context, status string) ([]domain.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByStatus(tickets, status), nil
}

// Search returns tickets whose description, submitter name or id contain
// the term, case-insensitively. An empty term matches everything.
func (s *QueryService) Search(ctx context.Context, term string) ([]domain.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return searchTickets(tickets, term), nil
}

// ForSubmitter scopes the view to tickets filed under the roll number.
func (s *QueryService) ForSubmitter(ctx context.Context, rollNumber string) ([]domain.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if ticket.SubmitterID == rollNumber {
			result = append(result, ticket)
		}
	}
	return result, nil
}

// AggregateCounts computes dashboard counts over the full ticket set,
// consulting the cache first.
func (s *QueryService) AggregateCounts(ctx context.Context) (domain.TicketCounts, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCounts(ctx); err == nil && cached != nil {
			return *cached, nil
		}
	}

	tickets, err := s.store.List(ctx)
	if err != nil {
		return domain.TicketCounts{}, err
	}
	counts := domain.TicketCounts{Total: len(tickets)}
	for _, ticket := range tickets {
		switch ticket.Status {
		case domain.TicketStatusSubmitted:
			counts.Pending++
		case domain.TicketStatusResolved:
			counts.Resolved++
		}
	}

	if s.cache != nil {
		s.cache.SetCounts(ctx, counts)
	}
	return counts, nil
}

// SortedByRecency orders tickets by createdAt descending. The sort is
// stable so equal timestamps keep the store's insertion order.
func (s *QueryService) SortedByRecency(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByRecency(tickets)
	return tickets, nil
}

// Dashboard combines recency ordering with status and search filtering
// for the operator view.
func (s *QueryService) Dashboard(ctx context.Context, status, term string) ([]domain.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByRecency(tickets)
	return searchTickets(filterByStatus(tickets, status), term), nil
}

func filterByStatus(tickets []domain.Ticket, status string) []domain.Ticket {
	if status == "" || status == StatusFilterAll {
		return tickets
	}
	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if ticket.Status == domain.TicketStatus(status) {
			result = append(result, ticket)
		}
	}
	return result
}

func searchTickets(tickets []domain.Ticket, term string) []domain.Ticket {
	term = strings.ToLower(term)
	if term == "" {
		return tickets
	}
	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if strings.Contains(strings.ToLower(ticket.Description), term) ||
			strings.Contains(strings.ToLower(ticket.Submitter.Name), term) ||
			strings.Contains(strings.ToLower(ticket.ID), term) {
			result = append(result, ticket)
		}
	}
	return result
}

func sortByRecency(tickets []domain.Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
}
