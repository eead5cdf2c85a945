package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FollowStore defines persistence operations for the follow graph.
type FollowStore interface {
	Create(ctx context.Context, followerID, followingID uuid.UUID) (Follow, error)
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	Get(ctx context.Context, followerID, followingID uuid.UUID) (Follow, error)
	// ListFollowers returns users with an edge pointing at userID, newest edge first.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]Profile, error)
	// ListFollowing returns users userID has an edge to, newest edge first.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]Profile, error)
	ListFollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Follow is a directed edge from FollowerID to FollowingID.
type Follow struct {
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
	CreatedAt   time.Time
}
