package domain

import "time"

// User is an account that can post tickets and reviews and follow other users.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}

// UserSummary is the public projection of a user embedded in other records.
type UserSummary struct {
	ID       string
	Username string
}

// Credentials carries a username/password pair from signup or login.
type Credentials struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
