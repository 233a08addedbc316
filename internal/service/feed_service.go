package service

import (
	"context"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/repository"
)

// FeedService assembles the merged ticket/review timelines.
type FeedService struct {
	feed repository.FeedRepository
}

// NewFeedService constructs the service.
func NewFeedService(feed repository.FeedRepository) *FeedService {
	return &FeedService{feed: feed}
}

// Feed returns everything visible to the viewer: their own posts, posts by
// users they follow, and reviews left on their tickets.
func (s *FeedService) Feed(ctx context.Context, viewer domain.UserSummary) ([]domain.FeedItem, error) {
	tickets, err := s.feed.VisibleTickets(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.feed.VisibleReviews(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	return domain.MergeFeed(tickets, reviews), nil
}

// Posts returns only what the viewer authored.
func (s *FeedService) Posts(ctx context.Context, viewer domain.UserSummary) ([]domain.FeedItem, error) {
	tickets, err := s.feed.AuthoredTickets(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.feed.AuthoredReviews(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	return domain.MergeFeed(tickets, reviews), nil
}
