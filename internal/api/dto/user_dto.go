package dto

import "time"

// CredentialsRequest payload for signup and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse pairs the signed-in user with their token.
type SessionResponse struct {
	User UserResponse `json:"user"`
	Auth AuthResponse `json:"auth"`
}

// FollowRequest names the user to follow.
type FollowRequest struct {
	Username string `json:"username"`
}

// SubscriptionsResponse lists both directions of the follow graph.
type SubscriptionsResponse struct {
	Following []UserResponse `json:"following"`
	Followers []UserResponse `json:"followers"`
}
