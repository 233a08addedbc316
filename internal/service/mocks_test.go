package service

import (
	"context"

	"github.com/spec-kit/litreview/internal/domain"
)

type mockFeedRepository struct {
	VisibleTicketsFunc  func(ctx context.Context, viewerID string) ([]domain.Ticket, error)
	VisibleReviewsFunc  func(ctx context.Context, viewerID string) ([]domain.Review, error)
	AuthoredTicketsFunc func(ctx context.Context, authorID string) ([]domain.Ticket, error)
	AuthoredReviewsFunc func(ctx context.Context, authorID string) ([]domain.Review, error)
}

func (m *mockFeedRepository) VisibleTickets(ctx context.Context, viewerID string) ([]domain.Ticket, error) {
	if m.VisibleTicketsFunc != nil {
		return m.VisibleTicketsFunc(ctx, viewerID)
	}
	return nil, nil
}

func (m *mockFeedRepository) VisibleReviews(ctx context.Context, viewerID string) ([]domain.Review, error) {
	if m.VisibleReviewsFunc != nil {
		return m.VisibleReviewsFunc(ctx, viewerID)
	}
	return nil, nil
}

func (m *mockFeedRepository) AuthoredTickets(ctx context.Context, authorID string) ([]domain.Ticket, error) {
	if m.AuthoredTicketsFunc != nil {
		return m.AuthoredTicketsFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *mockFeedRepository) AuthoredReviews(ctx context.Context, authorID string) ([]domain.Review, error) {
	if m.AuthoredReviewsFunc != nil {
		return m.AuthoredReviewsFunc(ctx, authorID)
	}
	return nil, nil
}

type mockFollowRepository struct {
	CreateFunc        func(ctx context.Context, followerID, followedID string) error
	DeleteFunc        func(ctx context.Context, followerID, followedID string) error
	ListFollowingFunc func(ctx context.Context, userID string) ([]domain.UserSummary, error)
	ListFollowersFunc func(ctx context.Context, userID string) ([]domain.UserSummary, error)
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followedID string) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, followerID, followedID)
	}
	return nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followedID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, followerID, followedID)
	}
	return nil
}

func (m *mockFollowRepository) ListFollowing(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	if m.ListFollowingFunc != nil {
		return m.ListFollowingFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowRepository) ListFollowers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	if m.ListFollowersFunc != nil {
		return m.ListFollowersFunc(ctx, userID)
	}
	return nil, nil
}
