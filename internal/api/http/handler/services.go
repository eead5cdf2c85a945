package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/socialfeed-server/internal/model"
)

// AuthService defines registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.Session, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	TokenTTL() time.Duration
}

// UserService defines public profile lookups.
type UserService interface {
	FindByUsername(ctx context.Context, username string) (model.Profile, error)
	FindByEmail(ctx context.Context, email string) (model.Profile, error)
}

// FollowService defines follow graph operations.
type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.Profile, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Profile, error)
}

// PostService defines post creation and per-author listing.
type PostService interface {
	CreatePost(ctx context.Context, params model.CreatePostParams) (model.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, req model.PageRequest) (model.PostPage, error)
}

// FeedService defines timeline composition.
type FeedService interface {
	GetFeed(ctx context.Context, viewerID uuid.UUID, req model.PageRequest) (model.PostPage, error)
}
