package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/mocks"
	"github.com/dtroode/socialfeed-server/internal/model"
	"github.com/dtroode/socialfeed-server/internal/testutil"
)

func newFollowUnderTest(t *testing.T) (*Follow, *mocks.UserStore, *mocks.FollowStore, *mocks.MetricsRecorder) {
	users := mocks.NewUserStore(t)
	follows := mocks.NewFollowStore(t)
	metrics := mocks.NewMetricsRecorder(t)
	return NewFollow(users, follows, metrics, testutil.MakeNoopLogger()), users, follows, metrics
}

func TestFollow_Follow(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		setup    func(users *mocks.UserStore, follows *mocks.FollowStore, metrics *mocks.MetricsRecorder)
		follower uuid.UUID
		target   uuid.UUID
		wantCode string
		wantErr  error
	}{
		{
			name: "success",
			setup: func(users *mocks.UserStore, follows *mocks.FollowStore, metrics *mocks.MetricsRecorder) {
				users.On("Exists", mock.Anything, b).Return(true, nil)
				follows.On("Create", mock.Anything, a, b).Return(model.Follow{FollowerID: a, FollowingID: b}, nil)
				metrics.On("RecordFollow").Once()
			},
			follower: a,
			target:   b,
		},
		{
			name:     "self follow",
			setup:    func(*mocks.UserStore, *mocks.FollowStore, *mocks.MetricsRecorder) {},
			follower: a,
			target:   a,
			wantCode: apiErrors.CodeCannotFollowSelf,
		},
		{
			name: "target missing",
			setup: func(users *mocks.UserStore, _ *mocks.FollowStore, _ *mocks.MetricsRecorder) {
				users.On("Exists", mock.Anything, b).Return(false, nil)
			},
			follower: a,
			target:   b,
			wantCode: apiErrors.CodeUserNotFound,
		},
		{
			name: "already following",
			setup: func(users *mocks.UserStore, follows *mocks.FollowStore, _ *mocks.MetricsRecorder) {
				users.On("Exists", mock.Anything, b).Return(true, nil)
				follows.On("Create", mock.Anything, a, b).Return(model.Follow{}, model.ErrAlreadyExists)
			},
			follower: a,
			target:   b,
			wantCode: apiErrors.CodeAlreadyFollowing,
		},
		{
			name: "target removed concurrently",
			setup: func(users *mocks.UserStore, follows *mocks.FollowStore, _ *mocks.MetricsRecorder) {
				users.On("Exists", mock.Anything, b).Return(true, nil)
				follows.On("Create", mock.Anything, a, b).Return(model.Follow{}, model.ErrReferenceMissing)
			},
			follower: a,
			target:   b,
			wantCode: apiErrors.CodeUserNotFound,
		},
		{
			name: "store failure",
			setup: func(users *mocks.UserStore, _ *mocks.FollowStore, _ *mocks.MetricsRecorder) {
				users.On("Exists", mock.Anything, b).Return(false, assert.AnError)
			},
			follower: a,
			target:   b,
			wantErr:  assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, users, follows, metrics := newFollowUnderTest(t)
			tt.setup(users, follows, metrics)

			err := s.Follow(context.Background(), tt.follower, tt.target)
			switch {
			case tt.wantCode != "":
				apiErr, ok := apiErrors.As(err)
				require.True(t, ok, "expected api error, got %v", err)
				assert.Equal(t, tt.wantCode, apiErr.Code)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestFollow_Unfollow(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	s, _, follows, metrics := newFollowUnderTest(t)

	follows.On("Delete", mock.Anything, a, b).Return(nil).Once()
	follows.On("Delete", mock.Anything, a, b).Return(model.ErrNotFound).Once()
	metrics.On("RecordUnfollow").Once()

	require.NoError(t, s.Unfollow(context.Background(), a, b))

	err := s.Unfollow(context.Background(), a, b)
	apiErr, ok := apiErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apiErrors.CodeNotFollowing, apiErr.Code)
	assert.Equal(t, apiErrors.KindNotFound, apiErr.Kind)
}

func TestFollow_ListFollowers(t *testing.T) {
	b := uuid.New()
	s, users, follows, _ := newFollowUnderTest(t)
	profiles := []model.Profile{{ID: uuid.New(), Username: "c"}, {ID: uuid.New(), Username: "a"}}

	users.On("Exists", mock.Anything, b).Return(true, nil)
	follows.On("ListFollowers", mock.Anything, b).Return(profiles, nil)

	got, err := s.ListFollowers(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, profiles, got)
}

func TestFollow_ListFollowing_UserNotFound(t *testing.T) {
	missing := uuid.New()
	s, users, _, _ := newFollowUnderTest(t)

	users.On("Exists", mock.Anything, missing).Return(false, nil)

	_, err := s.ListFollowing(context.Background(), missing)
	assert.Equal(t, apiErrors.KindNotFound, apiErrors.KindOf(err))
}

func TestFollow_ListFollowing_StoreFailure(t *testing.T) {
	a := uuid.New()
	s, users, follows, _ := newFollowUnderTest(t)

	users.On("Exists", mock.Anything, a).Return(true, nil)
	follows.On("ListFollowing", mock.Anything, a).Return(nil, assert.AnError)

	_, err := s.ListFollowing(context.Background(), a)
	require.ErrorIs(t, err, assert.AnError)
}
