package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/litreview/internal/domain"
)

const followedBy = `(SELECT followed_id FROM user_follows WHERE follower_id = $1)`

// FeedRepository answers the visibility queries behind the feed and the
// "my posts" page. Results are newest first; merging is left to the caller.
type FeedRepository interface {
	// VisibleTickets returns tickets written by the viewer or anyone they follow.
	VisibleTickets(ctx context.Context, viewerID string) ([]domain.Ticket, error)
	// VisibleReviews returns reviews written by the viewer or anyone they
	// follow, plus any review left on one of the viewer's tickets.
	VisibleReviews(ctx context.Context, viewerID string) ([]domain.Review, error)
	AuthoredTickets(ctx context.Context, authorID string) ([]domain.Ticket, error)
	AuthoredReviews(ctx context.Context, authorID string) ([]domain.Review, error)
}

type feedRepository struct {
	pool *pgxpool.Pool
}

// NewFeedRepository instantiates repository.
func NewFeedRepository(pool *pgxpool.Pool) FeedRepository {
	return &feedRepository{pool: pool}
}

func (r *feedRepository) VisibleTickets(ctx context.Context, viewerID string) ([]domain.Ticket, error) {
	query := `SELECT` + ticketColumns + ticketFrom + `
        WHERE t.author_id = $1 OR t.author_id IN ` + followedBy + `
        ORDER BY t.created_at DESC`
	return r.tickets(ctx, query, viewerID)
}

func (r *feedRepository) VisibleReviews(ctx context.Context, viewerID string) ([]domain.Review, error) {
	query := `SELECT` + reviewColumns + reviewFrom + `
        WHERE r.author_id = $1 OR r.author_id IN ` + followedBy + ` OR t.author_id = $1
        ORDER BY r.created_at DESC`
	return r.reviews(ctx, query, viewerID)
}

func (r *feedRepository) AuthoredTickets(ctx context.Context, authorID string) ([]domain.Ticket, error) {
	query := `SELECT` + ticketColumns + ticketFrom + ` WHERE t.author_id = $1 ORDER BY t.created_at DESC`
	return r.tickets(ctx, query, authorID)
}

func (r *feedRepository) AuthoredReviews(ctx context.Context, authorID string) ([]domain.Review, error) {
	query := `SELECT` + reviewColumns + reviewFrom + ` WHERE r.author_id = $1 ORDER BY r.created_at DESC`
	return r.reviews(ctx, query, authorID)
}

func (r *feedRepository) tickets(ctx context.Context, query string, viewerID string) ([]domain.Ticket, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *feedRepository) reviews(ctx context.Context, query string, viewerID string) ([]domain.Review, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}
