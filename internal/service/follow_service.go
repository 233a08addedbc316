package service

import (
	"context"
	"errors"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/events"
	"github.com/spec-kit/litreview/internal/repository"
	"github.com/spec-kit/litreview/internal/validation"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

// FollowService manages the follow graph.
type FollowService struct {
	users      repository.UserRepository
	follows    repository.FollowRepository
	dispatcher events.Dispatcher
}

// FollowDependencies bundles repositories for follow service.
type FollowDependencies struct {
	UserRepo   repository.UserRepository
	FollowRepo repository.FollowRepository
	Dispatcher events.Dispatcher
}

// NewFollowService constructs the service.
func NewFollowService(deps FollowDependencies) *FollowService {
	return &FollowService{
		users:      deps.UserRepo,
		follows:    deps.FollowRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Follow subscribes actor to the named user. Following someone twice is a no-op.
func (s *FollowService) Follow(ctx context.Context, actor domain.UserSummary, input domain.FollowInput) (*domain.UserSummary, error) {
	input, err := validation.Follow(input)
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errorutil.IsNoRows(err) {
			return nil, errorutil.NewUserNotFound(input.Username)
		}
		return nil, err
	}
	if target.ID == actor.ID {
		return nil, errorutil.NewSelfFollow()
	}

	if err := s.follows.Create(ctx, actor.ID, target.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSelfReference):
			return nil, errorutil.NewSelfFollow()
		case errors.Is(err, repository.ErrReferenceMissing):
			return nil, errorutil.NewUserNotFound(input.Username)
		}
		return nil, err
	}

	summary := target.Summary()
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventUserFollowed,
		ActorID: actor.ID,
		Payload: events.UserFollowedPayload{FollowedID: summary.ID, FollowedUsername: summary.Username},
	})
	return &summary, nil
}

// Unfollow removes the edge from actor to the given user. Removing an edge
// that does not exist succeeds.
func (s *FollowService) Unfollow(ctx context.Context, actor domain.UserSummary, followedID string) error {
	if checkID(followedID, "user") != nil {
		return nil
	}
	return s.follows.Delete(ctx, actor.ID, followedID)
}

// Subscriptions lists who actor follows and who follows actor.
func (s *FollowService) Subscriptions(ctx context.Context, actor domain.UserSummary) (*domain.Subscriptions, error) {
	following, err := s.follows.ListFollowing(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.ListFollowers(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Subscriptions{Following: following, Followers: followers}, nil
}
