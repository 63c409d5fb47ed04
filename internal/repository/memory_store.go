package repository

import (
	"context"
	"sync"

	"github.com/campus-kit/triage-service/internal/domain"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// memoryStore keeps tickets in process memory. It backs deployments
// without a Postgres DSN and the test suite. A single mutex serializes
// writes, which is enough for the store's no-lost-update guarantee since
// operations never touch more than one ticket.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.Ticket
	order   []string
}

// NewMemoryStore returns an empty in-memory ticket store.
func NewMemoryStore() TicketStore {
	return &memoryStore{records: make(map[string]domain.Ticket)}
}

func (m *memoryStore) Get(_ context.Context, id string) (*domain.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ticket, ok := m.records[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return &ticket, nil
}

// List returns tickets in insertion order. The store itself promises no
// particular order; insertion order keeps query-engine tie-breaking
// deterministic.
func (m *memoryStore) List(_ context.Context) ([]domain.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]domain.Ticket, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.records[id])
	}
	return result, nil
}

func (m *memoryStore) Put(_ context.Context, ticket *domain.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[ticket.ID]; !exists {
		m.order = append(m.order, ticket.ID)
	}
	m.records[ticket.ID] = *ticket
	return nil
}
