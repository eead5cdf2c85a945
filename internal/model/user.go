package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// User represents a stored user with its password credential.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public view of a user. It never carries the credential.
type Profile struct {
	ID        uuid.UUID
	Email     string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Author is the denormalized user summary attached to posts.
type Author struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// Profile strips the credential from u.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email    string
	Username string
	Password string
}

// Session is the outcome of a successful register or login.
type Session struct {
	User  Profile
	Token string
}

// Viewer is the authenticated caller resolved from a session token.
type Viewer struct {
	UserID uuid.UUID
	Email  string
}
