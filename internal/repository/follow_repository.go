package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/litreview/internal/domain"
)

// FollowRepository manages directed follow edges.
type FollowRepository interface {
	// Create ensures the edge exists; an existing edge is left untouched.
	Create(ctx context.Context, followerID, followedID string) error
	// Delete removes the edge if present.
	Delete(ctx context.Context, followerID, followedID string) error
	ListFollowing(ctx context.Context, userID string) ([]domain.UserSummary, error)
	ListFollowers(ctx context.Context, userID string) ([]domain.UserSummary, error)
}

type followRepository struct {
	pool *pgxpool.Pool
}

// NewFollowRepository instantiates repository.
func NewFollowRepository(pool *pgxpool.Pool) FollowRepository {
	return &followRepository{pool: pool}
}

func (r *followRepository) Create(ctx context.Context, followerID, followedID string) error {
	const query = `
        INSERT INTO user_follows (follower_id, followed_id)
        VALUES ($1,$2)
        ON CONFLICT (follower_id, followed_id) DO NOTHING`
	_, err := conn(ctx, r.pool).Exec(ctx, query, followerID, followedID)
	return translateConstraint(err)
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID string) error {
	const query = `DELETE FROM user_follows WHERE follower_id=$1 AND followed_id=$2`
	_, err := conn(ctx, r.pool).Exec(ctx, query, followerID, followedID)
	return err
}

func (r *followRepository) ListFollowing(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	const query = `
        SELECT u.id, u.username
        FROM user_follows f JOIN users u ON u.id = f.followed_id
        WHERE f.follower_id=$1
        ORDER BY u.username`
	rows, err := conn(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUserSummaries(rows)
}

func (r *followRepository) ListFollowers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	const query = `
        SELECT u.id, u.username
        FROM user_follows f JOIN users u ON u.id = f.follower_id
        WHERE f.followed_id=$1
        ORDER BY u.username`
	rows, err := conn(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUserSummaries(rows)
}
