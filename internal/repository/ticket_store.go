package repository

import (
	"context"

	"github.com/campus-kit/triage-service/internal/domain"
)

// TicketStore is a keyed collection of ticket records. Put is
// insert-or-replace by id and must be atomic with respect to concurrent
// Get/Put calls so a reader never observes a partially written ticket.
// Get on an unknown id returns a NOT_FOUND domain error.
type TicketStore interface {
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	Put(ctx context.Context, ticket *domain.Ticket) error
}
