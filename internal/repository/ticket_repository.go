package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/litreview/internal/domain"
)

// ticketColumns selects a ticket with its author. The viewer id must be bound
// to $1 so reviewed_by_viewer can be computed.
const ticketColumns = `
        t.id, t.title, t.description, t.image_ref, t.author_id, tu.username, t.created_at,
        EXISTS (SELECT 1 FROM reviews v WHERE v.ticket_id = t.id AND v.author_id = $1)`

const ticketFrom = `
        FROM tickets t
        JOIN users tu ON tu.id = t.author_id`

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id, viewerID string) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, image_ref, author_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return conn(ctx, r.pool).QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.ImageRef,
		ticket.Author.ID,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, image_ref=$3
        WHERE id=$4`
	cmd, err := conn(ctx, r.pool).Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.ImageRef,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the ticket; reviews attached to it go with it (ON DELETE CASCADE).
func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	cmd, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id, viewerID string) (*domain.Ticket, error) {
	query := `SELECT` + ticketColumns + ticketFrom + ` WHERE t.id = $2`
	ticket, err := scanTicket(conn(ctx, r.pool).QueryRow(ctx, query, viewerID, id))
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.ImageRef,
		&ticket.Author.ID,
		&ticket.Author.Username,
		&ticket.CreatedAt,
		&ticket.ReviewedByViewer,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	result := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}
