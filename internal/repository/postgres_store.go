package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-kit/triage-service/internal/domain"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// postgresStore persists whole-record JSON tickets keyed by id. The
// record column is the canonical serialization; created_at/updated_at are
// duplicated into columns for indexing only.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore instantiates the store over a pgx pool.
func NewPostgresStore(pool *pgxpool.Pool) TicketStore {
	return &postgresStore{pool: pool}
}

func (r *postgresStore) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `SELECT record FROM tickets WHERE id=$1`
	var record []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(&record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, err
	}
	return decodeTicket(record)
}

// List returns tickets in insertion order (seq ascending) so the query
// engine's stable sort breaks createdAt ties deterministically.
func (r *postgresStore) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `SELECT record FROM tickets ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		ticket, err := decodeTicket(record)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *postgresStore) Put(ctx context.Context, ticket *domain.Ticket) error {
	record, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("encode ticket %s: %w", ticket.ID, err)
	}
	const query = `
        INSERT INTO tickets (id, record, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE
            SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(ctx, query, ticket.ID, record, ticket.CreatedAt, ticket.UpdatedAt)
	return err
}

func decodeTicket(record []byte) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := json.Unmarshal(record, &ticket); err != nil {
		return nil, fmt.Errorf("decode ticket record: %w", err)
	}
	return &ticket, nil
}
