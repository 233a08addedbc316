package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/litreview/internal/domain"
)

// reviewColumns selects a review with its author and its ticket. The viewer id
// must be bound to $1.
const reviewColumns = `
        r.id, r.rating, r.headline, r.body, r.author_id, ru.username, r.created_at,` + ticketColumns

const reviewFrom = `
        FROM reviews r
        JOIN users ru ON ru.id = r.author_id
        JOIN tickets t ON t.id = r.ticket_id
        JOIN users tu ON tu.id = t.author_id`

// ReviewRepository encapsulates review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id, viewerID string) (*domain.Review, error)
	ExistsForTicketAndAuthor(ctx context.Context, ticketID, authorID string) (bool, error)
	ListByTicket(ctx context.Context, ticketID, viewerID string) ([]domain.Review, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository instantiates repository.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

// Create inserts the review. A second review by the same author on the same
// ticket fails with ErrDuplicate.
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (ticket_id, rating, headline, body, author_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	err := conn(ctx, r.pool).QueryRow(ctx, query,
		review.Ticket.ID,
		review.Rating,
		review.Headline,
		review.Body,
		review.Author.ID,
	).Scan(&review.ID, &review.CreatedAt)
	return translateConstraint(err)
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	const query = `
        UPDATE reviews SET rating=$1, headline=$2, body=$3
        WHERE id=$4`
	cmd, err := conn(ctx, r.pool).Exec(ctx, query,
		review.Rating,
		review.Headline,
		review.Body,
		review.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	cmd, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id, viewerID string) (*domain.Review, error) {
	query := `SELECT` + reviewColumns + reviewFrom + ` WHERE r.id = $2`
	return scanReview(conn(ctx, r.pool).QueryRow(ctx, query, viewerID, id))
}

func (r *reviewRepository) ExistsForTicketAndAuthor(ctx context.Context, ticketID, authorID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE ticket_id=$1 AND author_id=$2)`
	var exists bool
	if err := conn(ctx, r.pool).QueryRow(ctx, query, ticketID, authorID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reviewRepository) ListByTicket(ctx context.Context, ticketID, viewerID string) ([]domain.Review, error) {
	query := `SELECT` + reviewColumns + reviewFrom + ` WHERE r.ticket_id = $2 ORDER BY r.created_at DESC`
	rows, err := conn(ctx, r.pool).Query(ctx, query, viewerID, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var review domain.Review
	t := &review.Ticket
	if err := row.Scan(
		&review.ID,
		&review.Rating,
		&review.Headline,
		&review.Body,
		&review.Author.ID,
		&review.Author.Username,
		&review.CreatedAt,
		&t.ID,
		&t.Title,
		&t.Description,
		&t.ImageRef,
		&t.Author.ID,
		&t.Author.Username,
		&t.CreatedAt,
		&t.ReviewedByViewer,
	); err != nil {
		return nil, err
	}
	return &review, nil
}

func scanReviews(rows pgx.Rows) ([]domain.Review, error) {
	result := []domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *review)
	}
	return result, rows.Err()
}
