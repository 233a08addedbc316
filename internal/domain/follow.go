package domain

import "time"

// Follow is a directed edge: Follower sees Followed's activity in their feed.
type Follow struct {
	FollowerID string
	FollowedID string
	CreatedAt  time.Time
}

// FollowInput names the user to follow.
type FollowInput struct {
	Username string `json:"username" validate:"required,max=150"`
}

// Subscriptions lists both directions of the follow graph around one user.
type Subscriptions struct {
	Following []UserSummary
	Followers []UserSummary
}
