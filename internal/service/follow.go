package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Follow manages the directed follow graph.
//
// The follower is the authenticated caller and is trusted as is. The target is
// caller supplied and must reference an existing user before an edge is created.
type Follow struct {
	userStore   model.UserStore
	followStore model.FollowStore
	metrics     model.MetricsRecorder
	logger      *logger.Logger
}

func NewFollow(
	userStore model.UserStore,
	followStore model.FollowStore,
	metrics model.MetricsRecorder,
	logger *logger.Logger,
) *Follow {
	return &Follow{
		userStore:   userStore,
		followStore: followStore,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *Follow) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return apiErrors.NewErrCannotFollowSelf()
	}

	if err := s.ensureUserExists(ctx, followingID); err != nil {
		return err
	}

	_, err := s.followStore.Create(ctx, followerID, followingID)
	switch {
	case errors.Is(err, model.ErrAlreadyExists):
		return apiErrors.NewErrAlreadyFollowing()
	case errors.Is(err, model.ErrReferenceMissing):
		// The target was removed between the existence check and the insert.
		return apiErrors.NewErrUserNotFound(followingID.String())
	case err != nil:
		s.logger.Error("Follow service: failed to create follow",
			"follower_id", followerID.String(),
			"following_id", followingID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to create follow: %w", err)
	}

	s.metrics.RecordFollow()
	s.logger.Info("Follow service: user followed",
		"follower_id", followerID.String(),
		"following_id", followingID.String())

	return nil
}

func (s *Follow) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	err := s.followStore.Delete(ctx, followerID, followingID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrNotFollowing()
	}
	if err != nil {
		s.logger.Error("Follow service: failed to delete follow",
			"follower_id", followerID.String(),
			"following_id", followingID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	s.metrics.RecordUnfollow()
	s.logger.Info("Follow service: user unfollowed",
		"follower_id", followerID.String(),
		"following_id", followingID.String())

	return nil
}

// ListFollowers returns the users following userID, newest edge first.
func (s *Follow) ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.Profile, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	followers, err := s.followStore.ListFollowers(ctx, userID)
	if err != nil {
		s.logger.Error("Follow service: failed to list followers",
			"user_id", userID.String(),
			"error", err.Error())
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return followers, nil
}

// ListFollowing returns the users userID follows, newest edge first.
func (s *Follow) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Profile, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	following, err := s.followStore.ListFollowing(ctx, userID)
	if err != nil {
		s.logger.Error("Follow service: failed to list following",
			"user_id", userID.String(),
			"error", err.Error())
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return following, nil
}

func (s *Follow) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userStore.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("Follow service: failed to check user existence",
			"user_id", userID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return apiErrors.NewErrUserNotFound(userID.String())
	}
	return nil
}
